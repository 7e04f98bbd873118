package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-storefront/internal/domains/warehouse/model"
	"bookstore-storefront/internal/domains/warehouse/service"
	"bookstore-storefront/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// ==================== ADMIN ====================

// SearchStock tra cứu tồn kho (admin only)
// GET /admin/warehouses/stock?keyword&province&warehouseCode&lowStockOnly&page&size
func (h *Handler) SearchStock(c *gin.Context) {
	var req model.StockSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}

	page, err := h.svc.SearchStock(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Stock retrieved successfully", page.Items, &response.Meta{
		Page:  page.Page,
		Limit: page.Size,
		Total: page.Total,
	})
}
