package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookstore-storefront/internal/domains/payment/model"
	"bookstore-storefront/internal/domains/payment/repository"
	"bookstore-storefront/internal/events"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/logger"
)

const (
	DefaultPollInterval = 3 * time.Second
	DefaultPollTimeout  = 60 * time.Second
)

type Options struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
}

type reconciler struct {
	repo      repository.RepositoryInterface
	orders    OrderFetcher
	sessions  *session.Opener
	publisher events.Publisher
	scheduler SettleScheduler // optional
	interval  time.Duration
	timeout   time.Duration
	now       func() time.Time
}

// NewReconciler creates the payment-return state machine.
// scheduler may be nil, in which case a soft timeout is not re-checked.
func NewReconciler(
	repo repository.RepositoryInterface,
	orders OrderFetcher,
	sessions *session.Opener,
	publisher events.Publisher,
	scheduler SettleScheduler,
	opts Options,
) ReconcilerInterface {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = DefaultPollTimeout
	}
	return &reconciler{
		repo:      repo,
		orders:    orders,
		sessions:  sessions,
		publisher: publisher,
		scheduler: scheduler,
		interval:  opts.PollInterval,
		timeout:   opts.PollTimeout,
		now:       time.Now,
	}
}

// ===================================
// RUN
// ===================================

func (r *reconciler) Run(ctx context.Context, rawQuery string, observe Observer) model.StatusView {
	if observe == nil {
		observe = func(model.StatusView) {}
	}

	// Step 1: verifying
	view := model.VerifyingView()
	observe(view)

	// Step 2: parse (backend validates the gateway signature)
	desc, err := r.repo.ParseReturn(ctx, rawQuery)
	if err != nil {
		if ctx.Err() != nil {
			return view
		}
		logger.ErrorWithFields("Failed to parse payment return", err, map[string]interface{}{
			"session_id": session.IDFromContext(ctx),
		})
		view = model.ErrorView(apiclient.Message(err))
		observe(view)
		return view
	}

	// Step 3: gateway verdict
	if !desc.GatewaySucceeded() {
		logger.Info("Payment gateway reported failure", map[string]interface{}{
			"order_code":    desc.OrderCode,
			"response_code": desc.ResponseCode,
		})
		view = model.GatewayFailedView(*desc)
		r.finish(ctx, view, "")
		observe(view)
		return view
	}

	// Step 4: wait for the authoritative payment status
	return r.poll(ctx, *desc, observe)
}

// poll fetches the order every interval until its payment status settles
// or the cumulative timeout is reached. The next tick is armed only after
// the previous result has been inspected.
func (r *reconciler) poll(ctx context.Context, desc model.ReturnDescriptor, observe Observer) model.StatusView {
	var (
		polls   int
		elapsed time.Duration
	)

	view := model.WaitingView(desc, polls, elapsed)
	observe(view)

	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Payment reconciliation stopped", map[string]interface{}{
				"order_code": desc.OrderCode,
				"polls":      polls,
			})
			return view
		case <-timer.C:
		}

		polls++
		elapsed += r.interval

		order, err := r.orders.GetByCode(ctx, desc.OrderCode)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return view
			}
			// counted as still pending
			logger.ErrorWithFields("Payment status poll failed", err, map[string]interface{}{
				"order_code": desc.OrderCode,
				"poll":       polls,
			})

		case order.PaymentStatus.IsPaid():
			view = model.SuccessView(desc, polls, elapsed)
			r.finish(ctx, view, string(order.PaymentStatus))
			observe(view)
			return view

		case order.PaymentStatus.IsFailed():
			view = model.SettledFailedView(desc, strings.ReplaceAll(string(order.PaymentStatus), "_", " "), polls, elapsed)
			r.finish(ctx, view, string(order.PaymentStatus))
			observe(view)
			return view
		}

		if elapsed >= r.timeout {
			view = model.TimedOutView(desc, polls, elapsed)
			r.finish(ctx, view, "")
			r.scheduleRecheck(ctx, desc.OrderCode)
			observe(view)
			return view
		}

		view = model.WaitingView(desc, polls, elapsed)
		observe(view)
		timer.Reset(r.interval)
	}
}

// ===================================
// OUTCOMES
// ===================================

// finish records a terminal view for the session bound to ctx, if any.
// The write outlives ctx so a disconnect right after settling is not lost.
func (r *reconciler) finish(ctx context.Context, view model.StatusView, paymentStatus string) {
	sessionID := session.IDFromContext(ctx)
	if sessionID == "" || view.OrderCode == "" {
		return
	}

	outcome := model.Outcome{
		OrderCode:     view.OrderCode,
		State:         view.State,
		PaymentStatus: paymentStatus,
		Source:        model.SourceReturnPage,
	}
	if err := r.Record(context.WithoutCancel(ctx), sessionID, outcome); err != nil {
		logger.Error("Failed to record payment outcome", err)
	}
}

func (r *reconciler) scheduleRecheck(ctx context.Context, orderCode string) {
	sessionID := session.IDFromContext(ctx)
	if r.scheduler == nil || sessionID == "" {
		return
	}
	if err := r.scheduler.ScheduleSettleCheck(context.WithoutCancel(ctx), sessionID, orderCode); err != nil {
		logger.ErrorWithFields("Failed to schedule settle check", err, map[string]interface{}{
			"order_code": orderCode,
		})
	}
}

func (r *reconciler) Record(ctx context.Context, sessionID string, outcome model.Outcome) error {
	if outcome.RecordedAt.IsZero() {
		outcome.RecordedAt = r.now()
	}

	store := r.sessions.Open(sessionID)
	if err := store.Set(ctx, session.PaymentOutcomeKey(outcome.OrderCode), outcome, 0); err != nil {
		return fmt.Errorf("failed to store payment outcome: %w", err)
	}

	if r.publisher != nil {
		r.publisher.Publish(events.PaymentSettled{
			SessionID: sessionID,
			OrderCode: outcome.OrderCode,
			State:     string(outcome.State),
		})
	}
	return nil
}

func (r *reconciler) Outcome(ctx context.Context, orderCode string) (*model.Outcome, error) {
	store, _, err := r.sessions.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var outcome model.Outcome
	found, err := store.Get(ctx, session.PaymentOutcomeKey(orderCode), &outcome)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment outcome: %w", err)
	}
	if !found {
		return nil, model.ErrOutcomeUnknown
	}
	return &outcome, nil
}
