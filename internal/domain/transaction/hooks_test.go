//go:build unit
// +build unit

package transaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAfterCommit_OutsideTransactionRunsImmediately(t *testing.T) {
	ran := false
	AfterCommit(context.Background(), func() { ran = true })
	assert.True(t, ran)
}

func TestAfterCommit_WaitsForRun(t *testing.T) {
	ctx, hooks, owner := WithCommitHooks(context.Background())
	assert.True(t, owner)

	var order []string
	AfterCommit(ctx, func() { order = append(order, "first") })
	AfterCommit(ctx, func() { order = append(order, "second") })
	assert.Empty(t, order)

	hooks.Run()
	assert.Equal(t, []string{"first", "second"}, order)

	hooks.Run()
	assert.Len(t, order, 2)
}

func TestWithCommitHooks_JoinsOuterHooks(t *testing.T) {
	ctx, outer, _ := WithCommitHooks(context.Background())
	inner, joined, owner := WithCommitHooks(ctx)

	assert.False(t, owner)
	assert.Same(t, outer, joined)
	assert.Equal(t, ctx, inner)
}
