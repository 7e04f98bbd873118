// Package optimistic implements snapshot → tentative → request →
// reconcile-or-revert updates.
package optimistic

import (
	"context"

	"bookstore-storefront/pkg/logger"
)

// Update describes one optimistic change of a piece of state
type Update[T any] struct {
	Snapshot  T
	Tentative T

	// Apply makes a state visible (store write, event). Optional.
	Apply func(ctx context.Context, state T) error

	// Commit performs the backend request and returns the confirmed state
	Commit func(ctx context.Context) (T, error)
}

// Run shows Tentative, commits, then shows the confirmed state.
// When Commit fails the snapshot is shown again and returned with the error.
func Run[T any](ctx context.Context, u Update[T]) (T, error) {
	show(ctx, u.Apply, u.Tentative)

	confirmed, err := u.Commit(ctx)
	if err != nil {
		// revert outlives a cancelled request
		show(context.WithoutCancel(ctx), u.Apply, u.Snapshot)
		return u.Snapshot, err
	}

	show(ctx, u.Apply, confirmed)
	return confirmed, nil
}

func show[T any](ctx context.Context, apply func(context.Context, T) error, state T) {
	if apply == nil {
		return
	}
	if err := apply(ctx, state); err != nil {
		logger.Error("Failed to apply optimistic state", err)
	}
}
