package apiclient_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/apiclient/apitest"
)

type book struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestClient_UnwrapsDataAndAttachesBearer(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.OK(http.MethodGet, "/books/1", book{ID: "1", Title: "Dế Mèn phiêu lưu ký"})
	client := srv.Client()

	ctx := apiclient.WithToken(context.Background(), "tok-123")
	var got book
	require.NoError(t, client.Get(ctx, "/books/1", nil, &got))

	assert.Equal(t, "Dế Mèn phiêu lưu ký", got.Title)
	calls := srv.Calls(http.MethodGet, "/books/1")
	require.Len(t, calls, 1)
	assert.Equal(t, "Bearer tok-123", calls[0].Auth)
}

func TestClient_AnonymousRequestHasNoAuthHeader(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.OK(http.MethodGet, "/books", []book{})

	var got []book
	require.NoError(t, srv.Client().Get(context.Background(), "/books", url.Values{"page": {"1"}}, &got))

	calls := srv.Calls(http.MethodGet, "/books")
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].Auth)
	assert.Equal(t, "page=1", calls[0].RawQuery)
}

func TestClient_ErrorEnvelopeSurfacesMessage(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.Fail(http.MethodPost, "/cart/items", http.StatusConflict, "Out of stock for book 42")

	err := srv.Client().Post(context.Background(), "/cart/items", map[string]int{"quantity": 1}, nil)
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Out of stock for book 42", apiclient.Message(err))
}

func TestClient_EnvelopeStatusOverridesHTTP200(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.Handle(http.MethodGet, "/orders/X1", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode":404,"error":"NOT_FOUND","message":"Order not found","data":null}`))
	})

	err := srv.Client().Get(context.Background(), "/orders/X1", nil, &struct{}{})
	assert.True(t, apiclient.IsNotFound(err))
	assert.Equal(t, "Order not found", apiclient.Message(err))
}

func TestClient_RawQueryForwardedVerbatim(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.OK(http.MethodGet, "/payments/vnpay/return", map[string]string{"orderCode": "ORD1"})

	raw := "vnp_ResponseCode=00&vnp_TxnRef=ORD1&vnp_SecureHash=AbC%2B"
	req := apiclient.Request{Method: http.MethodGet, Path: "/payments/vnpay/return", RawQuery: "?" + raw}
	require.NoError(t, srv.Client().Do(context.Background(), req, nil))

	calls := srv.Calls(http.MethodGet, "/payments/vnpay/return")
	require.Len(t, calls, 1)
	assert.Equal(t, raw, calls[0].RawQuery)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.Handle(http.MethodGet, "/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	err := srv.Client().Get(context.Background(), "/health", nil, nil)
	assert.Equal(t, http.StatusBadGateway, apiclient.StatusCode(err))
}
