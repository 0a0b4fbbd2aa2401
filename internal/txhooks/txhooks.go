// Package txhooks defers side effects until the request transaction is
// finished. Writes that touch files or caches register callbacks here so they
// only happen once the database outcome is known.
package txhooks

import (
	"context"
	"sync"
)

// Hooks collects the callbacks of one transaction.
type Hooks struct {
	mu       sync.Mutex
	commit   []func(ctx context.Context)
	rollback []func(ctx context.Context)
}

type hooksKey struct{}

// WithHooks attaches a fresh Hooks to ctx.
func WithHooks(ctx context.Context) (context.Context, *Hooks) {
	h := &Hooks{}
	return context.WithValue(ctx, hooksKey{}, h), h
}

func fromContext(ctx context.Context) *Hooks {
	h, _ := ctx.Value(hooksKey{}).(*Hooks)
	return h
}

// AfterCommit runs fn once the transaction of ctx commits. Without a
// transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	h := fromContext(ctx)
	if h == nil {
		fn(ctx)
		return
	}
	h.mu.Lock()
	h.commit = append(h.commit, fn)
	h.mu.Unlock()
}

// AfterRollback runs fn if the transaction of ctx rolls back, including a
// failed commit. Without a transaction fn is dropped.
func AfterRollback(ctx context.Context, fn func(ctx context.Context)) {
	h := fromContext(ctx)
	if h == nil {
		return
	}
	h.mu.Lock()
	h.rollback = append(h.rollback, fn)
	h.mu.Unlock()
}

// Committed runs the commit callbacks in registration order.
func (h *Hooks) Committed(ctx context.Context) {
	run(ctx, h.take(true))
}

// RolledBack runs the rollback callbacks in registration order.
func (h *Hooks) RolledBack(ctx context.Context) {
	run(ctx, h.take(false))
}

func (h *Hooks) take(committed bool) []func(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fns := h.rollback
	if committed {
		fns = h.commit
	}
	h.commit, h.rollback = nil, nil
	return fns
}

func run(ctx context.Context, fns []func(ctx context.Context)) {
	ctx = context.WithoutCancel(ctx)
	for _, fn := range fns {
		fn(ctx)
	}
}
