package transaction

import (
	"context"
	"sync"
)

type hooksKey struct{}

// CommitHooks collects functions to run once a transaction has committed.
type CommitHooks struct {
	mu  sync.Mutex
	fns []func()
}

// WithCommitHooks returns a context collecting AfterCommit functions into
// the returned hooks. A context that already collects keeps its hooks, so
// joined transactions run theirs when the outermost one commits.
func WithCommitHooks(ctx context.Context) (context.Context, *CommitHooks, bool) {
	if hooks, ok := ctx.Value(hooksKey{}).(*CommitHooks); ok {
		return ctx, hooks, false
	}
	hooks := &CommitHooks{}
	return context.WithValue(ctx, hooksKey{}, hooks), hooks, true
}

// AfterCommit defers fn until the transaction of ctx commits. Outside a
// transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(hooksKey{}).(*CommitHooks)
	if !ok {
		fn()
		return
	}
	hooks.mu.Lock()
	hooks.fns = append(hooks.fns, fn)
	hooks.mu.Unlock()
}

// Run calls the collected functions in registration order.
func (h *CommitHooks) Run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
