package replies

import "fmt"

// Action is a postback button action. Postback codes map onto exactly one Action.
type Action int

const (
	// ActionUnknown is the zero value; ParseAction never returns it with ok=true.
	ActionUnknown Action = iota
	ActionCoupon
	ActionReservation
	ActionStaffA
	ActionStaffB
	ActionShopInfo
	ActionContact
	ActionChatRequest
)

// Postback codes carried by the buttons of the cards in this package.
const (
	CodeCoupon      = "action=coupon"
	CodeReservation = "action=reservation"
	CodeStaffA      = "action=staff_a"
	CodeStaffB      = "action=staff_b"
	CodeShopInfo    = "action=shop_info"
	CodeContact     = "action=contact"
	CodeChatRequest = "action=chat_request"
)

var actionsByCode = map[string]Action{
	CodeCoupon:      ActionCoupon,
	CodeReservation: ActionReservation,
	CodeStaffA:      ActionStaffA,
	CodeStaffB:      ActionStaffB,
	CodeShopInfo:    ActionShopInfo,
	CodeContact:     ActionContact,
	CodeChatRequest: ActionChatRequest,
}

// ParseAction maps a postback code to its Action. Matching is exact.
func ParseAction(code string) (Action, bool) {
	a, ok := actionsByCode[code]
	return a, ok
}

// Code returns the postback code for a.
func (a Action) Code() string {
	switch a {
	case ActionCoupon:
		return CodeCoupon
	case ActionReservation:
		return CodeReservation
	case ActionStaffA:
		return CodeStaffA
	case ActionStaffB:
		return CodeStaffB
	case ActionShopInfo:
		return CodeShopInfo
	case ActionContact:
		return CodeContact
	case ActionChatRequest:
		return CodeChatRequest
	case ActionUnknown:
		return ""
	}
	return ""
}

func (a Action) String() string {
	switch a {
	case ActionCoupon:
		return "coupon"
	case ActionReservation:
		return "reservation"
	case ActionStaffA:
		return "staff_a"
	case ActionStaffB:
		return "staff_b"
	case ActionShopInfo:
		return "shop_info"
	case ActionContact:
		return "contact"
	case ActionChatRequest:
		return "chat_request"
	case ActionUnknown:
		return "unknown"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
