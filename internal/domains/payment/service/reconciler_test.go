package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ordermodel "bookstore-storefront/internal/domains/order/model"
	"bookstore-storefront/internal/domains/payment/model"
	"bookstore-storefront/internal/events"
	"bookstore-storefront/internal/infrastructure/cache"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/pkg/apiclient"
)

const testSessionID = "0b7a4c55-2d55-4a8e-9c44-6a3f0f5f1d10"

// ===================================
// FAKES
// ===================================

type fakeParser struct {
	desc *model.ReturnDescriptor
	err  error
	raw  []string
}

func (f *fakeParser) ParseReturn(_ context.Context, rawQuery string) (*model.ReturnDescriptor, error) {
	f.raw = append(f.raw, rawQuery)
	return f.desc, f.err
}

// scriptedOrders answers GetByCode from a script; the last entry repeats
type scriptedOrders struct {
	mu       sync.Mutex
	statuses []ordermodel.PaymentStatus
	errs     map[int]error // by 1-based call number
	calls    int
}

func (s *scriptedOrders) GetByCode(_ context.Context, code string) (*ordermodel.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err := s.errs[s.calls]; err != nil {
		return nil, err
	}
	i := s.calls - 1
	if i >= len(s.statuses) {
		i = len(s.statuses) - 1
	}
	return &ordermodel.Order{Code: code, PaymentStatus: s.statuses[i]}, nil
}

func (s *scriptedOrders) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type recordingScheduler struct {
	scheduled []string
}

func (r *recordingScheduler) ScheduleSettleCheck(_ context.Context, sessionID, orderCode string) error {
	r.scheduled = append(r.scheduled, sessionID+"/"+orderCode)
	return nil
}

type harness struct {
	parser    *fakeParser
	orders    *scriptedOrders
	scheduler *recordingScheduler
	opener    *session.Opener
	settled   []events.PaymentSettled
	svc       ReconcilerInterface
	views     []model.StatusView
}

func newHarness(t *testing.T, desc *model.ReturnDescriptor, statuses ...ordermodel.PaymentStatus) *harness {
	t.Helper()
	h := &harness{
		parser:    &fakeParser{desc: desc},
		orders:    &scriptedOrders{statuses: statuses, errs: map[int]error{}},
		scheduler: &recordingScheduler{},
		opener:    session.NewOpener(cache.NewMemoryCache(), time.Hour),
	}
	bus := events.NewBus()
	unsubscribe := bus.Subscribe(events.TopicPaymentSettled, func(evt events.Event) {
		h.settled = append(h.settled, evt.(events.PaymentSettled))
	})
	t.Cleanup(unsubscribe)

	h.svc = NewReconciler(h.parser, h.orders, h.opener, bus, h.scheduler, Options{
		PollInterval: 2 * time.Millisecond,
		PollTimeout:  10 * time.Millisecond,
	})
	return h
}

func (h *harness) run(ctx context.Context) model.StatusView {
	return h.svc.Run(session.WithID(ctx, testSessionID), "vnp_TxnRef=ORD-1", func(v model.StatusView) {
		h.views = append(h.views, v)
	})
}

func (h *harness) count(state model.State) int {
	n := 0
	for _, v := range h.views {
		if v.State == state {
			n++
		}
	}
	return n
}

func gatewayOK() *model.ReturnDescriptor {
	return &model.ReturnDescriptor{OrderCode: "ORD-1", ResponseCode: "00", BankCode: "NCB"}
}

// ===================================
// TESTS
// ===================================

func TestReconciler_PaidStopsPolling(t *testing.T) {
	h := newHarness(t, gatewayOK(), ordermodel.PaymentStatusPending, ordermodel.PaymentStatusPaid)

	final := h.run(context.Background())

	assert.Equal(t, model.StateSuccess, final.State)
	assert.Equal(t, model.ToneSuccess, final.Tone)
	assert.Equal(t, 2, final.Polls)
	assert.Equal(t, 2, h.orders.Calls(), "no request after the success-triggering response")
	assert.Equal(t, model.StateVerifying, h.views[0].State)
	assert.Equal(t, 1, h.count(model.StateSuccess))
	assert.Equal(t, []string{"vnp_TxnRef=ORD-1"}, h.parser.raw)

	require.Len(t, h.settled, 1)
	assert.Equal(t, testSessionID, h.settled[0].SessionID)
	assert.Equal(t, "success", h.settled[0].State)
	assert.Empty(t, h.scheduler.scheduled)
}

func TestReconciler_NegativeSettlementFails(t *testing.T) {
	for _, status := range []ordermodel.PaymentStatus{
		ordermodel.PaymentStatusFailed,
		ordermodel.PaymentStatusCanceled,
		ordermodel.PaymentStatusRefunded,
		ordermodel.PaymentStatusRefundPending,
	} {
		t.Run(string(status), func(t *testing.T) {
			h := newHarness(t, gatewayOK(), status)

			final := h.run(context.Background())

			assert.Equal(t, model.StateFailed, final.State)
			assert.Equal(t, model.ToneFailure, final.Tone)
			assert.Equal(t, 1, h.orders.Calls())
			assert.Contains(t, final.Actions, model.ActionRetryCheckout())
		})
	}
}

func TestReconciler_GatewayFailureSkipsPolling(t *testing.T) {
	h := newHarness(t, &model.ReturnDescriptor{OrderCode: "ORD-1", ResponseCode: "24"}, ordermodel.PaymentStatusPaid)

	final := h.run(context.Background())

	assert.Equal(t, model.StateFailed, final.State)
	assert.Equal(t, 0, h.orders.Calls())
	assert.Equal(t, 0, h.count(model.StateWaiting))
	assert.Contains(t, final.Message, "gateway reported a failure")
	assert.Contains(t, final.Message, "24")

	outcome, err := h.svc.Outcome(session.WithID(context.Background(), testSessionID), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, model.StateFailed, outcome.State)
	assert.Equal(t, model.SourceReturnPage, outcome.Source)
}

func TestReconciler_PendingThroughoutTimesOutOnce(t *testing.T) {
	h := newHarness(t, gatewayOK(), ordermodel.PaymentStatusPending, ordermodel.PaymentStatusUnpaid)

	final := h.run(context.Background())

	assert.Equal(t, model.StateTimedOut, final.State)
	assert.Equal(t, model.ToneAmbiguous, final.Tone)
	assert.Equal(t, 5, final.Polls)
	assert.Equal(t, int64(10), final.ElapsedMs)
	assert.Equal(t, 5, h.orders.Calls())
	assert.Equal(t, 1, h.count(model.StateTimedOut))
	assert.Equal(t, model.StateTimedOut, h.views[len(h.views)-1].State)
	assert.Equal(t, []string{testSessionID + "/ORD-1"}, h.scheduler.scheduled)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 5, h.orders.Calls(), "polling stopped")
}

func TestReconciler_PollErrorCountsAsPending(t *testing.T) {
	h := newHarness(t, gatewayOK(), ordermodel.PaymentStatusPending, ordermodel.PaymentStatusPaid)
	h.orders.errs[1] = &apiclient.APIError{StatusCode: 503, Message: "Service unavailable"}

	final := h.run(context.Background())

	assert.Equal(t, model.StateSuccess, final.State)
	assert.Equal(t, 2, final.Polls)
}

func TestReconciler_ParseErrorIsTerminal(t *testing.T) {
	h := newHarness(t, nil, ordermodel.PaymentStatusPaid)
	h.parser.err = &apiclient.APIError{StatusCode: 400, Message: "Invalid signature"}

	final := h.run(context.Background())

	assert.Equal(t, model.StateError, final.State)
	assert.Contains(t, final.Message, "Invalid signature")
	assert.Equal(t, 0, h.orders.Calls())
	assert.Empty(t, h.settled)
	assert.Len(t, h.views, 2)
}

func TestReconciler_CancellationStopsTimer(t *testing.T) {
	h := newHarness(t, gatewayOK(), ordermodel.PaymentStatusPending)
	h.svc = NewReconciler(h.parser, h.orders, h.opener, nil, h.scheduler, Options{
		PollInterval: 50 * time.Millisecond,
		PollTimeout:  time.Minute,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	final := h.svc.Run(session.WithID(ctx, testSessionID), "vnp_TxnRef=ORD-1", func(v model.StatusView) {
		if v.Polls == 1 {
			cancel()
		}
	})

	assert.Equal(t, model.StateWaiting, final.State)
	assert.Equal(t, 1, h.orders.Calls())

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, 1, h.orders.Calls(), "no poll after cancellation")
	assert.Empty(t, h.scheduler.scheduled)
}

func TestReconciler_OutcomeUnknown(t *testing.T) {
	h := newHarness(t, gatewayOK(), ordermodel.PaymentStatusPaid)

	_, err := h.svc.Outcome(session.WithID(context.Background(), testSessionID), "ORD-404")
	assert.ErrorIs(t, err, model.ErrOutcomeUnknown)

	_, err = h.svc.Outcome(context.Background(), "ORD-1")
	assert.True(t, errors.Is(err, session.ErrNoSession))
}
