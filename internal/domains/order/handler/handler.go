package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-storefront/internal/domains/order/model"
	"bookstore-storefront/internal/domains/order/service"
	"bookstore-storefront/internal/shared/response"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrNothingSelected) {
			response.BadRequest(c, model.ErrNothingSelected.Error())
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Order created successfully", order)
}

// GetOrder handles GET /orders/:code
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOrderNotFound):
			response.NotFound(c, "Order not found")
		case errors.Is(err, model.ErrEmptyOrderCode):
			response.BadRequest(c, err.Error())
		default:
			response.FromError(c, err)
		}
		return
	}
	response.Success(c, http.StatusOK, "Order retrieved successfully", order)
}

// ListMyOrders handles GET /orders/me?page&size
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	var req model.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}

	page, err := h.orderService.ListMine(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "Orders retrieved successfully", page.Items, &response.Meta{
		Page:  page.Page,
		Limit: page.Size,
		Total: page.Total,
	})
}
