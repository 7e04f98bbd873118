package service

import (
	"context"

	ordermodel "bookstore-storefront/internal/domains/order/model"
	"bookstore-storefront/internal/domains/payment/model"
)

// Observer receives every status transition of a reconciliation
type Observer func(model.StatusView)

// OrderFetcher is the slice of the order service the poll loop needs
type OrderFetcher interface {
	GetByCode(ctx context.Context, code string) (*ordermodel.Order, error)
}

// SettleScheduler defers a final status check after a soft timeout
type SettleScheduler interface {
	ScheduleSettleCheck(ctx context.Context, sessionID, orderCode string) error
}

type ReconcilerInterface interface {
	// Run drives one payment return to a terminal state, or until ctx is done.
	// It returns the last view reported to observe.
	Run(ctx context.Context, rawQuery string, observe Observer) model.StatusView

	// Outcome returns the recorded result for orderCode in the current session
	Outcome(ctx context.Context, orderCode string) (*model.Outcome, error)

	// Record stores a terminal result and notifies subscribers of the session
	Record(ctx context.Context, sessionID string, outcome model.Outcome) error
}
