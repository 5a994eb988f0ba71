package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "emit")
	assert.Equal(t, "emit", GetCommand(ctx))
}

func TestWithHost(t *testing.T) {
	ctx := WithHost(context.Background(), "tui")
	assert.Equal(t, "tui", GetHost(ctx))
}

func TestContextValues_NotPresent(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCommand(ctx))
	assert.Empty(t, GetHost(ctx))
}
