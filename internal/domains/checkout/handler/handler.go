package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-storefront/internal/domains/checkout/model"
	"bookstore-storefront/internal/domains/checkout/service"
	"bookstore-storefront/internal/shared/response"
)

type CheckoutHandler struct {
	guard service.GuardInterface
}

func NewCheckoutHandler(guard service.GuardInterface) *CheckoutHandler {
	return &CheckoutHandler{guard: guard}
}

// Guard handles GET /checkout/guard?returnTo=
// Always 200: the outcome tells the page where to go.
func (h *CheckoutHandler) Guard(c *gin.Context) {
	res := h.guard.Check(c.Request.Context(), c.DefaultQuery("returnTo", model.CheckoutPath))
	response.Success(c, http.StatusOK, string(res.Outcome), res)
}
