package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"bookstore-storefront/internal/domains/payment/model"
	"bookstore-storefront/internal/domains/payment/service"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/internal/shared/response"
)

// StreamPath is where the return page subscribes for status updates
const StreamPath = "/api/v1/payments/return/stream"

type PaymentHandler struct {
	reconciler service.ReconcilerInterface
}

func NewPaymentHandler(reconciler service.ReconcilerInterface) *PaymentHandler {
	return &PaymentHandler{reconciler: reconciler}
}

// ===================================
// GET /payment/return (HTML)
// ===================================
func (h *PaymentHandler) ReturnPage(c *gin.Context) {
	streamURL := StreamPath
	if raw := c.Request.URL.RawQuery; raw != "" {
		streamURL += "?" + raw
	}

	c.Header("Cache-Control", "no-store")
	c.Render(http.StatusOK, render.HTML{
		Template: returnPage,
		Name:     "payment_return",
		Data: gin.H{
			"View":      model.VerifyingView(),
			"StreamURL": streamURL,
		},
	})
}

// ===================================
// GET /payments/return (JSON)
// ===================================

// Reconcile blocks until the return reaches a terminal state
func (h *PaymentHandler) Reconcile(c *gin.Context) {
	view := h.reconciler.Run(c.Request.Context(), c.Request.URL.RawQuery, nil)
	response.Success(c, http.StatusOK, "Payment status resolved", view)
}

// ===================================
// GET /payments/return/stream (SSE)
// ===================================

// Stream reports every transition as an "status" event. The reconciliation
// is bound to the request, so a closed page stops polling.
func (h *PaymentHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	rawQuery := c.Request.URL.RawQuery
	views := make(chan model.StatusView, 8)

	go func() {
		defer close(views)
		h.reconciler.Run(ctx, rawQuery, func(v model.StatusView) {
			select {
			case views <- v:
			case <-ctx.Done():
			}
		})
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		v, ok := <-views
		if !ok {
			return false
		}
		c.SSEvent("status", v)
		return !v.State.IsTerminal()
	})
}

// ===================================
// GET /payments/:code/outcome
// ===================================
func (h *PaymentHandler) GetOutcome(c *gin.Context) {
	outcome, err := h.reconciler.Outcome(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOutcomeUnknown):
			response.NotFound(c, "No payment result recorded for this order yet")
		case errors.Is(err, session.ErrNoSession):
			response.Unauthorized(c, "No active session")
		default:
			response.FromError(c, err)
		}
		return
	}
	response.Success(c, http.StatusOK, "Payment outcome retrieved", outcome)
}
