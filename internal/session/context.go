package session

import "fmt"

// TurnContext identifies one conversation turn. It is constructed once at the
// boundary and passed explicitly to every pipeline stage, so stages never have
// to probe an ambient context object for identity fields.
type TurnContext struct {
	ConversationID string
	UserID         string
	AppName        string
}

// NewTurnContext validates all identity fields up front.
func NewTurnContext(conversationID, userID, appName string) (TurnContext, error) {
	if conversationID == "" {
		return TurnContext{}, fmt.Errorf("turn context: conversation id is required")
	}
	if userID == "" {
		return TurnContext{}, fmt.Errorf("turn context: user id is required")
	}
	if appName == "" {
		return TurnContext{}, fmt.Errorf("turn context: app name is required")
	}
	return TurnContext{ConversationID: conversationID, UserID: userID, AppName: appName}, nil
}
