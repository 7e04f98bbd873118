package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	ordermodel "bookstore-storefront/internal/domains/order/model"
	"bookstore-storefront/internal/domains/payment/model"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/internal/shared"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/logger"
)

// ErrStillPending makes asynq retry the task with backoff
var ErrStillPending = errors.New("payment still pending")

type OrderFetcher interface {
	GetByCode(ctx context.Context, code string) (*ordermodel.Order, error)
}

type OutcomeRecorder interface {
	Record(ctx context.Context, sessionID string, outcome model.Outcome) error
}

// SettleCheckHandler re-reads an order after the return page timed out
// and records the settled payment for the session.
type SettleCheckHandler struct {
	orders   OrderFetcher
	sessions *session.Opener
	recorder OutcomeRecorder
}

func NewSettleCheckHandler(orders OrderFetcher, sessions *session.Opener, recorder OutcomeRecorder) *SettleCheckHandler {
	return &SettleCheckHandler{
		orders:   orders,
		sessions: sessions,
		recorder: recorder,
	}
}

func (h *SettleCheckHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.SettleCheckPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	logger.Info("Processing settle check task", map[string]interface{}{
		"session_id": payload.SessionID,
		"order_code": payload.OrderCode,
	})

	store := h.sessions.Open(payload.SessionID)

	// 1. Đã có kết quả cuối cùng thì bỏ qua
	var existing model.Outcome
	found, err := store.Get(ctx, session.PaymentOutcomeKey(payload.OrderCode), &existing)
	if err != nil {
		return fmt.Errorf("load outcome: %w", err)
	}
	if found && (existing.State == model.StateSuccess || existing.State == model.StateFailed) {
		logger.Info("Payment already settled, skip", map[string]interface{}{
			"order_code": payload.OrderCode,
			"state":      string(existing.State),
		})
		return nil
	}

	// 2. Lấy token của session (người dùng đã logout thì không thể đọc order)
	var token string
	if _, err := store.Get(ctx, session.KeyAuthToken, &token); err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	if token == "" {
		logger.Warn("Session has no token, skip settle check", map[string]interface{}{
			"session_id": payload.SessionID,
			"order_code": payload.OrderCode,
		})
		return fmt.Errorf("no session token: %w", asynq.SkipRetry)
	}

	// 3. Đọc trạng thái thanh toán
	order, err := h.orders.GetByCode(apiclient.WithToken(ctx, token), payload.OrderCode)
	if err != nil {
		if apiclient.IsNotFound(err) || apiclient.IsUnauthorized(err) {
			return fmt.Errorf("get order: %v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("get order: %w", err)
	}

	var state model.State
	switch {
	case order.PaymentStatus.IsPaid():
		state = model.StateSuccess
	case order.PaymentStatus.IsFailed():
		state = model.StateFailed
	default:
		return fmt.Errorf("%w: order %s is %s", ErrStillPending, payload.OrderCode, order.PaymentStatus)
	}

	// 4. Ghi kết quả
	outcome := model.Outcome{
		OrderCode:     payload.OrderCode,
		State:         state,
		PaymentStatus: string(order.PaymentStatus),
		Source:        model.SourceSettleCheck,
	}
	if err := h.recorder.Record(ctx, payload.SessionID, outcome); err != nil {
		return err
	}

	logger.Info("Payment settled by settle check", map[string]interface{}{
		"order_code":     payload.OrderCode,
		"payment_status": string(order.PaymentStatus),
	})
	return nil
}
