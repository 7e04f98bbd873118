package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"bookstore-storefront/internal/config"
	"bookstore-storefront/internal/shared"
	"bookstore-storefront/pkg/logger"
)

// TaskClient is the part of *asynq.Client the enqueuer uses
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer schedules one-shot background tasks for the worker
type Enqueuer struct {
	client  TaskClient
	payment config.PaymentConfig
}

func NewEnqueuer(client TaskClient, payment config.PaymentConfig) *Enqueuer {
	return &Enqueuer{client: client, payment: payment}
}

// NewClient connects an asynq client to the shared Redis
func NewClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Host,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// ================================================
// PAYMENT SETTLE CHECK
// ================================================

// ScheduleSettleCheck re-reads the order after RecheckDelay, retrying
// with asynq backoff while the payment is still pending.
// One task per order: a second schedule for the same order is a no-op.
func (e *Enqueuer) ScheduleSettleCheck(ctx context.Context, sessionID, orderCode string) error {
	payload, err := json.Marshal(shared.SettleCheckPayload{
		SessionID: sessionID,
		OrderCode: orderCode,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePaymentSettleCheck, payload)
	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueDefault),
		asynq.TaskID(SettleCheckTaskID(orderCode)),
		asynq.ProcessIn(e.payment.RecheckDelay),
		asynq.MaxRetry(e.payment.RecheckMaxTry),
		asynq.Timeout(30*time.Second),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		logger.Debug("Settle check already scheduled", map[string]interface{}{
			"order_code": orderCode,
		})
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue settle check: %w", err)
	}

	logger.Info("Settle check scheduled", map[string]interface{}{
		"task_id":    info.ID,
		"order_code": orderCode,
		"process_in": e.payment.RecheckDelay.String(),
	})
	return nil
}

func SettleCheckTaskID(orderCode string) string {
	return "settle:" + orderCode
}
