package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-storefront/internal/domains/order/model"
	"bookstore-storefront/internal/domains/order/repository"
	"bookstore-storefront/pkg/apiclient/apitest"
)

func newService(t *testing.T) (*apitest.Server, OrderService) {
	t.Helper()
	srv := apitest.NewServer(t)
	return srv, NewOrderService(repository.NewAPIRepository(srv.Client()))
}

func TestOrderService_GetByCodeNormalizesStatuses(t *testing.T) {
	srv, svc := newService(t)
	srv.OK(http.MethodGet, "/orders/ORD-20250301-0001", map[string]interface{}{
		"code":          "ORD-20250301-0001",
		"status":        "confirmed",
		"paymentStatus": "pending",
		"paymentMethod": "vnpay",
		"total":         "185000",
	})

	order, err := svc.GetByCode(context.Background(), " ORD-20250301-0001 ")
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusConfirmed, order.Status)
	assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
	assert.False(t, order.PaymentStatus.IsTerminal(), "confirmed order may still await payment")
	assert.True(t, order.Total.Equal(decimal.NewFromInt(185000)))
}

func TestOrderService_GetByCodeNotFound(t *testing.T) {
	srv, svc := newService(t)
	srv.Fail(http.MethodGet, "/orders/NOPE", http.StatusNotFound, "Order not found")

	_, err := svc.GetByCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)

	_, err = svc.GetByCode(context.Background(), "  ")
	assert.ErrorIs(t, err, model.ErrEmptyOrderCode)
}

func TestOrderService_ListMineAppliesPagingDefaults(t *testing.T) {
	srv, svc := newService(t)
	srv.OK(http.MethodGet, "/orders/me", model.OrderPage{Items: []model.Order{{Code: "A"}}, Page: 1, Size: 10, Total: 1})

	page, err := svc.ListMine(context.Background(), model.ListOrdersRequest{Page: 0, Size: 500})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	calls := srv.Calls(http.MethodGet, "/orders/me")
	require.Len(t, calls, 1)
	assert.Equal(t, "page=1&size=10", calls[0].RawQuery)
}

func TestOrderService_Create(t *testing.T) {
	srv, svc := newService(t)
	srv.OK(http.MethodPost, "/orders", model.Order{
		Code:          "ORD-1",
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusUnpaid,
		PaymentMethod: model.PaymentMethodVNPay,
		PaymentURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_TxnRef=ORD-1",
	})

	req := model.CreateOrderRequest{AddressID: uuid.New(), PaymentMethod: model.PaymentMethodVNPay}
	order, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", order.Code)
	assert.True(t, order.PaymentMethod.IsOnline())

	var sent model.CreateOrderRequest
	calls := srv.Calls(http.MethodPost, "/orders")
	require.Len(t, calls, 1)
	require.NoError(t, calls[0].Decode(&sent))
	assert.Equal(t, req.AddressID, sent.AddressID)

	_, err = svc.Create(context.Background(), model.CreateOrderRequest{PaymentMethod: "cash"})
	assert.Error(t, err)
	assert.Len(t, srv.Calls(http.MethodPost, "/orders"), 1)
}

func TestPaymentStatus_Classification(t *testing.T) {
	for _, ps := range []model.PaymentStatus{model.PaymentStatusFailed, model.PaymentStatusCanceled, model.PaymentStatusRefunded, model.PaymentStatusRefundPending} {
		assert.True(t, ps.IsFailed(), ps)
		assert.True(t, ps.IsTerminal(), ps)
	}
	for _, ps := range []model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusUnpaid} {
		assert.False(t, ps.IsTerminal(), ps)
	}
	assert.True(t, model.PaymentStatusPaid.IsPaid())
}
