package model

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// ConversationRepository persists the message history of a support
// conversation. Implementations must keep messages in insertion order;
// windowing to the configured turn limit happens in the messages manager,
// not here.
type ConversationRepository interface {
	// AddMessage appends a message to the conversation.
	AddMessage(ctx context.Context, conversationID string, message *schema.Message) error

	// LoadHistory returns every stored message for the conversation,
	// oldest first. A conversation with no messages is not an error.
	LoadHistory(ctx context.Context, conversationID string) (*ConversationHistory, error)

	// ClearHistory drops the conversation's stored messages.
	ClearHistory(ctx context.Context, conversationID string) error

	// GetMessageCount returns how many messages the conversation holds.
	GetMessageCount(ctx context.Context, conversationID string) (int, error)
}

// ConversationHistory is the loaded message log for one conversation.
type ConversationHistory struct {
	ConversationID string
	Messages       []*schema.Message
}

// Len returns the number of stored messages.
func (h *ConversationHistory) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Messages)
}
