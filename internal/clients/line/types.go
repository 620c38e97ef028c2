package line

import "github.com/DIMO-Network/line-shop-bot/internal/messages"

// PushRequest is the body of POST /v2/bot/message/push.
type PushRequest struct {
	To       string             `json:"to"`
	Messages []messages.Message `json:"messages"`
}

// Profile is the response of GET /v2/bot/profile/{userId}.
type Profile struct {
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	PictureURL    string `json:"pictureUrl"`
	StatusMessage string `json:"statusMessage"`
	Language      string `json:"language"`
}
