package conversations

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-support/server/internal/agent/model"
)

type fakeRepo struct {
	messages map[string][]*schema.Message
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{messages: make(map[string][]*schema.Message)}
}

func (r *fakeRepo) AddMessage(ctx context.Context, conversationID string, message *schema.Message) error {
	r.messages[conversationID] = append(r.messages[conversationID], message)
	return nil
}

func (r *fakeRepo) LoadHistory(ctx context.Context, conversationID string) (*model.ConversationHistory, error) {
	return &model.ConversationHistory{
		ConversationID: conversationID,
		Messages:       r.messages[conversationID],
	}, nil
}

func (r *fakeRepo) ClearHistory(ctx context.Context, conversationID string) error {
	delete(r.messages, conversationID)
	return nil
}

func (r *fakeRepo) GetMessageCount(ctx context.Context, conversationID string) (int, error) {
	return len(r.messages[conversationID]), nil
}

func managerWithMaxTurns(repo model.ConversationRepository, maxTurns int) *MessagesManager {
	var cfg model.ConversationConfig
	cfg.History.MaxTurns = maxTurns
	return NewMessagesManager(repo, cfg)
}

func TestBuildResponseContextPrependsSystemPrompt(t *testing.T) {
	repo := newFakeRepo()
	mm := managerWithMaxTurns(repo, 10)
	ctx := context.Background()

	require.NoError(t, mm.SaveUserMessage(ctx, "conv-1", "hello"))
	require.NoError(t, mm.SaveResponse(ctx, "conv-1", "hi, how can I help?"))

	messages, err := mm.BuildResponseContext(ctx, "conv-1", "you are a support agent")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, schema.System, messages[0].Role)
	assert.Equal(t, "you are a support agent", messages[0].Content)
	assert.Equal(t, schema.User, messages[1].Role)
	assert.Equal(t, schema.Assistant, messages[2].Role)
}

func TestBuildResponseContextTrimsToWindow(t *testing.T) {
	repo := newFakeRepo()
	mm := managerWithMaxTurns(repo, 2)
	ctx := context.Background()

	require.NoError(t, mm.SaveUserMessage(ctx, "conv-1", "first"))
	require.NoError(t, mm.SaveUserMessage(ctx, "conv-1", "second"))
	require.NoError(t, mm.SaveUserMessage(ctx, "conv-1", "third"))

	messages, err := mm.BuildResponseContext(ctx, "conv-1", "prompt")
	require.NoError(t, err)
	// system prompt plus the two newest messages
	require.Len(t, messages, 3)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestBuildResponseContextSkipsEmptyMessages(t *testing.T) {
	repo := newFakeRepo()
	repo.messages["conv-1"] = []*schema.Message{
		nil,
		schema.UserMessage(""),
		schema.UserMessage("real question"),
	}
	mm := managerWithMaxTurns(repo, 10)

	messages, err := mm.BuildResponseContext(context.Background(), "conv-1", "prompt")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "real question", messages[1].Content)
}

func TestTrimTail(t *testing.T) {
	msgs := []*schema.Message{
		schema.UserMessage("a"),
		schema.UserMessage("b"),
		schema.UserMessage("c"),
	}

	assert.Len(t, trimTail(msgs, 0), 3)
	assert.Len(t, trimTail(msgs, 5), 3)

	tail := trimTail(msgs, 2)
	require.Len(t, tail, 2)
	assert.Equal(t, "b", tail[0].Content)
	assert.Equal(t, "c", tail[1].Content)
}
