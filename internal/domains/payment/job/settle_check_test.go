package job

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ordermodel "bookstore-storefront/internal/domains/order/model"
	"bookstore-storefront/internal/domains/payment/model"
	"bookstore-storefront/internal/domains/payment/service"
	"bookstore-storefront/internal/infrastructure/cache"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/internal/shared"
	"bookstore-storefront/pkg/apiclient"
)

const sessionID = "a3c1f1b2-6f1e-4c55-8a0b-3e2f8d9c7b11"

type fakeOrders struct {
	status ordermodel.PaymentStatus
	err    error
	tokens []string
}

func (f *fakeOrders) GetByCode(ctx context.Context, code string) (*ordermodel.Order, error) {
	f.tokens = append(f.tokens, apiclient.TokenFromContext(ctx))
	if f.err != nil {
		return nil, f.err
	}
	return &ordermodel.Order{Code: code, PaymentStatus: f.status}, nil
}

func setup(t *testing.T, orders *fakeOrders, token string) (*SettleCheckHandler, service.ReconcilerInterface) {
	t.Helper()
	opener := session.NewOpener(cache.NewMemoryCache(), time.Hour)
	if token != "" {
		require.NoError(t, opener.Open(sessionID).Set(context.Background(), session.KeyAuthToken, token, 0))
	}
	recorder := service.NewReconciler(nil, orders, opener, nil, nil, service.Options{})
	return NewSettleCheckHandler(orders, opener, recorder), recorder
}

func task(t *testing.T) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(shared.SettleCheckPayload{SessionID: sessionID, OrderCode: "ORD-7"})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypePaymentSettleCheck, b)
}

func TestSettleCheck_RecordsPaid(t *testing.T) {
	orders := &fakeOrders{status: ordermodel.PaymentStatusPaid}
	h, recorder := setup(t, orders, "tok-1")

	require.NoError(t, h.ProcessTask(context.Background(), task(t)))
	assert.Equal(t, []string{"tok-1"}, orders.tokens)

	outcome, err := recorder.Outcome(session.WithID(context.Background(), sessionID), "ORD-7")
	require.NoError(t, err)
	assert.Equal(t, model.StateSuccess, outcome.State)
	assert.Equal(t, model.SourceSettleCheck, outcome.Source)
	assert.Equal(t, "PAID", outcome.PaymentStatus)

	// already settled: no further backend call
	require.NoError(t, h.ProcessTask(context.Background(), task(t)))
	assert.Len(t, orders.tokens, 1)
}

func TestSettleCheck_PendingRetries(t *testing.T) {
	h, _ := setup(t, &fakeOrders{status: ordermodel.PaymentStatusPending}, "tok-1")

	err := h.ProcessTask(context.Background(), task(t))
	assert.ErrorIs(t, err, ErrStillPending)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestSettleCheck_RefundedIsFailure(t *testing.T) {
	h, recorder := setup(t, &fakeOrders{status: ordermodel.PaymentStatusRefunded}, "tok-1")

	require.NoError(t, h.ProcessTask(context.Background(), task(t)))
	outcome, err := recorder.Outcome(session.WithID(context.Background(), sessionID), "ORD-7")
	require.NoError(t, err)
	assert.Equal(t, model.StateFailed, outcome.State)
}

func TestSettleCheck_SkipsRetry(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		orders := &fakeOrders{status: ordermodel.PaymentStatusPaid}
		h, _ := setup(t, orders, "")
		assert.ErrorIs(t, h.ProcessTask(context.Background(), task(t)), asynq.SkipRetry)
		assert.Empty(t, orders.tokens)
	})
	t.Run("order gone", func(t *testing.T) {
		h, _ := setup(t, &fakeOrders{err: &apiclient.APIError{StatusCode: http.StatusNotFound, Message: "Order not found"}}, "tok-1")
		assert.ErrorIs(t, h.ProcessTask(context.Background(), task(t)), asynq.SkipRetry)
	})
	t.Run("bad payload", func(t *testing.T) {
		h, _ := setup(t, &fakeOrders{}, "tok-1")
		err := h.ProcessTask(context.Background(), asynq.NewTask(shared.TypePaymentSettleCheck, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
	t.Run("backend down retries", func(t *testing.T) {
		h, _ := setup(t, &fakeOrders{err: &apiclient.APIError{StatusCode: http.StatusBadGateway, Message: "bad gateway"}}, "tok-1")
		err := h.ProcessTask(context.Background(), task(t))
		assert.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})
}
