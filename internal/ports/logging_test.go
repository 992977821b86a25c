package ports

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc")
	assert.Equal(t, "abc", GetCorrelationID(ctx))
	assert.Equal(t, "", GetCorrelationID(context.Background()))
	//nolint:staticcheck // nil context is part of the contract
	assert.Equal(t, "", GetCorrelationID(nil))
}

func TestGenerateCorrelationIDIsUUIDv4(t *testing.T) {
	id := GenerateCorrelationID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, id, GenerateCorrelationID())
}
