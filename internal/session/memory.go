package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a conversation has no stored product memory.
var ErrNotFound = errors.New("session: product memory not found")

// ProductMemory is the small per-conversation state written by every search
// and read by follow-up tools ("tell me more", "all of them"). Each search
// overwrites it wholesale and resets the detailed-ids tracking list.
type ProductMemory struct {
	LastProductID   string   `json:"last_product_id"`
	LastProductName string   `json:"last_product_name"`
	LastQuery       string   `json:"last_query"`
	ProductIDs      []string `json:"product_ids"`
	DetailedIDs     []string `json:"detailed_ids"`
}

// MemoryStore persists ProductMemory per conversation for the lifetime of the
// session. Implementations expire entries after a TTL.
type MemoryStore interface {
	// Save overwrites the memory for a conversation and refreshes its TTL.
	Save(ctx context.Context, conversationID string, mem ProductMemory) error

	// Load returns the memory for a conversation, or ErrNotFound when the
	// conversation has none (or it expired).
	Load(ctx context.Context, conversationID string) (ProductMemory, error)

	// Clear removes the memory for a conversation.
	Clear(ctx context.Context, conversationID string) error
}
