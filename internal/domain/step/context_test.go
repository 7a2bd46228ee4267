package step

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunContext_WithUsername(t *testing.T) {
	t.Parallel()

	base := NewRunContext(context.Background())
	assert.Empty(t, base.Username())

	withUser := base.WithUsername("alice")
	assert.Equal(t, "alice", withUser.Username())
	// The original is unchanged.
	assert.Empty(t, base.Username())
}

func TestRunContext_Context(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	rc := NewRunContext(ctx)
	assert.Equal(t, "v", rc.Context().Value(key{}))
}
