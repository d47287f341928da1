package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTurnContext(t *testing.T) {
	turn, err := NewTurnContext("conv-1", "CUST-001", "storefront")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", turn.ConversationID)
	assert.Equal(t, "CUST-001", turn.UserID)
	assert.Equal(t, "storefront", turn.AppName)
}

func TestNewTurnContextRejectsEmptyFields(t *testing.T) {
	_, err := NewTurnContext("", "CUST-001", "storefront")
	assert.Error(t, err)

	_, err = NewTurnContext("conv-1", "", "storefront")
	assert.Error(t, err)

	_, err = NewTurnContext("conv-1", "CUST-001", "")
	assert.Error(t, err)
}
