// Package replies holds the canned replies the bot sends and the rules that pick them.
package replies

import (
	"fmt"
	"strings"

	"github.com/DIMO-Network/line-shop-bot/internal/config"
	"github.com/DIMO-Network/line-shop-bot/internal/messages"
)

const (
	accentColor = "#B5835A"
	mutedColor  = "#8C8C8C"
)

var (
	greetingKeywords = []string{"こんにちは", "こんばんは", "おはよう", "はじめまして"}
	menuKeywords     = []string{"メニュー", "menu", "Menu", "MENU"}
)

// TextIntent is what a free text message asks for.
type TextIntent int

const (
	IntentFallback TextIntent = iota
	IntentGreeting
	IntentMenu
)

// ClassifyText picks the intent for a text message. Greeting keywords win over menu keywords.
func ClassifyText(text string) TextIntent {
	if containsAny(text, greetingKeywords) {
		return IntentGreeting
	}
	if containsAny(text, menuKeywords) {
		return IntentMenu
	}
	return IntentFallback
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Catalog builds the reply payloads for one shop.
type Catalog struct {
	shop config.Shop
}

// NewCatalog creates a Catalog for shop.
func NewCatalog(shop config.Shop) *Catalog {
	return &Catalog{shop: shop}
}

// ForIntent returns the reply to a text message.
func (c *Catalog) ForIntent(intent TextIntent) messages.Message {
	switch intent {
	case IntentGreeting:
		return c.Greeting()
	case IntentMenu:
		return c.Menu()
	case IntentFallback:
		return c.Fallback()
	}
	return c.Fallback()
}

// ForAction returns the reply to a postback action. ok is false for ActionUnknown.
func (c *Catalog) ForAction(a Action) (msg messages.Message, ok bool) {
	switch a {
	case ActionCoupon:
		return c.Coupon(), true
	case ActionReservation:
		return c.Reservation(), true
	case ActionStaffA:
		return c.StaffForm(c.shop.StaffAName, c.shop.StaffAForm), true
	case ActionStaffB:
		return c.StaffForm(c.shop.StaffBName, c.shop.StaffBForm), true
	case ActionShopInfo:
		return c.ShopInfo(), true
	case ActionContact:
		return c.Contact(), true
	case ActionChatRequest:
		return c.ChatRequestAck(), true
	case ActionUnknown:
		return nil, false
	}
	return nil, false
}

// Welcome is sent to users who just followed the bot.
func (c *Catalog) Welcome() messages.Message {
	return messages.NewFlex(c.shop.Name+"へようこそ", messages.Bubble{
		Hero: &messages.Image{URL: c.shop.ImageURL, Size: "full", AspectRatio: "20:13", AspectMode: "cover"},
		Body: &messages.Box{Layout: "vertical", Spacing: "md", Contents: []messages.Component{
			messages.Text{Text: "友だち追加ありがとうございます!", Weight: "bold", Size: "lg", Wrap: true},
			messages.Text{Text: c.shop.Name + "公式LINEです。ご予約やクーポンはこちらからどうぞ。", Size: "sm", Color: mutedColor, Wrap: true},
		}},
		Footer: &messages.Box{Layout: "vertical", Spacing: "sm", Contents: []messages.Component{
			messages.Button{Style: "primary", Color: accentColor, Action: messages.PostbackAction("ご予約", CodeReservation, "予約したい")},
			messages.Button{Style: "secondary", Action: messages.PostbackAction("クーポンを受け取る", CodeCoupon, "クーポン")},
			messages.Button{Style: "link", Action: messages.MessageAction("メニューを見る", "メニュー")},
		}},
	})
}

// Greeting answers a greeting keyword.
func (c *Catalog) Greeting() messages.Message {
	return messages.NewText(fmt.Sprintf("こんにちは!%sです😊\n「メニュー」と送っていただくと、ご予約・クーポン・店舗情報をご案内します。", c.shop.Name))
}

// Fallback answers any text that matches no keyword.
func (c *Catalog) Fallback() messages.Message {
	return messages.NewText("メッセージありがとうございます。\n「メニュー」と送っていただくと、ご利用いただける機能をご案内します。")
}

// Menu is the main menu card.
func (c *Catalog) Menu() messages.Message {
	return messages.NewFlex("メニュー", messages.Bubble{
		Body: &messages.Box{Layout: "vertical", Spacing: "md", Contents: []messages.Component{
			messages.Text{Text: "メニュー", Weight: "bold", Size: "xl", Color: accentColor},
			messages.Text{Text: "ご希望の項目を選んでください。", Size: "sm", Color: mutedColor, Wrap: true},
			messages.Separator{Margin: "md"},
		}},
		Footer: &messages.Box{Layout: "vertical", Spacing: "sm", Contents: []messages.Component{
			menuButton("ご予約", CodeReservation, "予約したい"),
			menuButton("クーポン", CodeCoupon, "クーポン"),
			menuButton("店舗情報", CodeShopInfo, "店舗情報"),
			menuButton("お問い合わせ", CodeContact, "問い合わせ"),
		}},
	})
}

func menuButton(label, code, displayText string) messages.Button {
	return messages.Button{Style: "secondary", Height: "sm", Action: messages.PostbackAction(label, code, displayText)}
}

// Coupon is the fixed coupon text.
func (c *Catalog) Coupon() messages.Message {
	return messages.NewText(c.shop.CouponText)
}

// Reservation asks which staff member to book with.
func (c *Catalog) Reservation() messages.Message {
	return messages.NewFlex("ご予約 スタッフ選択", messages.Bubble{
		Body: &messages.Box{Layout: "vertical", Spacing: "md", Contents: []messages.Component{
			messages.Text{Text: "ご予約", Weight: "bold", Size: "xl", Color: accentColor},
			messages.Text{Text: "担当スタッフを選んでください。", Size: "sm", Color: mutedColor, Wrap: true},
		}},
		Footer: &messages.Box{Layout: "vertical", Spacing: "sm", Contents: []messages.Component{
			messages.Button{Style: "primary", Color: accentColor, Action: messages.PostbackAction(c.shop.StaffAName, CodeStaffA, c.shop.StaffAName+"で予約")},
			messages.Button{Style: "primary", Color: accentColor, Action: messages.PostbackAction(c.shop.StaffBName, CodeStaffB, c.shop.StaffBName+"で予約")},
		}},
	})
}

// StaffForm links to the reservation form of one staff member.
func (c *Catalog) StaffForm(staffName, formURL string) messages.Message {
	return messages.NewFlex(staffName+" ご予約フォーム", messages.Bubble{
		Body: &messages.Box{Layout: "vertical", Spacing: "md", Contents: []messages.Component{
			messages.Text{Text: "担当: " + staffName, Weight: "bold", Size: "lg"},
			messages.Text{Text: "下のボタンから予約フォームを開いて、ご希望の日時を入力してください。", Size: "sm", Color: mutedColor, Wrap: true},
		}},
		Footer: &messages.Box{Layout: "vertical", Contents: []messages.Component{
			messages.Button{Style: "primary", Color: accentColor, Action: messages.URIAction("予約フォームを開く", formURL)},
		}},
	})
}

// ShopInfo shows address, opening hours and a map link.
func (c *Catalog) ShopInfo() messages.Message {
	return messages.NewFlex(c.shop.Name+" 店舗情報", messages.Bubble{
		Hero: &messages.Image{URL: c.shop.ImageURL, Size: "full", AspectRatio: "20:13", AspectMode: "cover"},
		Body: &messages.Box{Layout: "vertical", Spacing: "sm", Contents: []messages.Component{
			messages.Text{Text: c.shop.Name, Weight: "bold", Size: "xl"},
			infoRow("住所", c.shop.Address),
			infoRow("営業時間", c.shop.Hours),
			infoRow("電話", c.shop.Phone),
		}},
		Footer: &messages.Box{Layout: "vertical", Contents: []messages.Component{
			messages.Button{Style: "link", Action: messages.URIAction("地図を開く", c.shop.MapURL)},
		}},
	})
}

func infoRow(label, value string) messages.Box {
	labelFlex, valueFlex := 2, 5
	return messages.Box{Layout: "baseline", Spacing: "sm", Contents: []messages.Component{
		messages.Text{Text: label, Size: "sm", Color: mutedColor, Flex: &labelFlex},
		messages.Text{Text: value, Size: "sm", Wrap: true, Flex: &valueFlex},
	}}
}

// Contact offers a phone call or a chat with a staff member.
func (c *Catalog) Contact() messages.Message {
	return messages.NewFlex("お問い合わせ", messages.Bubble{
		Body: &messages.Box{Layout: "vertical", Spacing: "md", Contents: []messages.Component{
			messages.Text{Text: "お問い合わせ", Weight: "bold", Size: "xl", Color: accentColor},
			messages.Text{Text: "お電話またはチャットでお気軽にご連絡ください。", Size: "sm", Color: mutedColor, Wrap: true},
		}},
		Footer: &messages.Box{Layout: "vertical", Spacing: "sm", Contents: []messages.Component{
			messages.Button{Style: "primary", Color: accentColor, Action: messages.URIAction("電話する", "tel:"+strings.ReplaceAll(c.shop.Phone, "-", ""))},
			messages.Button{Style: "secondary", Action: messages.PostbackAction("チャットで相談する", CodeChatRequest, "チャットで相談したい")},
		}},
	})
}

// ChatRequestAck tells the user a staff member will answer in the chat.
func (c *Catalog) ChatRequestAck() messages.Message {
	return messages.NewText("チャットでのご相談を受け付けました。\nスタッフより順次ご返信いたしますので、このままお待ちください。")
}

// OperatorNotice is pushed to the operator when a user asks for a chat.
// displayName may be empty when the profile could not be fetched.
func (c *Catalog) OperatorNotice(userID, displayName string) messages.Message {
	who := userID
	if displayName != "" {
		who = fmt.Sprintf("%s (%s)", displayName, userID)
	}
	return messages.NewText(fmt.Sprintf("【チャット希望】\n%s さんからチャットでの相談希望がありました。LINE公式アカウントの管理画面から返信してください。", who))
}
