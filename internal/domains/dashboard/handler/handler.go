package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-storefront/internal/domains/dashboard/model"
	"bookstore-storefront/internal/domains/dashboard/service"
	"bookstore-storefront/internal/shared/response"
	"bookstore-storefront/pkg/logger"
)

type DashboardHandler struct {
	service service.ServiceInterface
}

func NewDashboardHandler(service service.ServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// ===================================
// GET /admin/dashboard?from&to&limit
// ===================================
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	var req model.RangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}

	overview, err := h.service.Overview(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard retrieved successfully", overview)
}

// ===================================
// GET /admin/dashboard/export?from&to&limit
// ===================================
func (h *DashboardHandler) Export(c *gin.Context) {
	var req model.RangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}

	f, overview, err := h.service.ExportToExcel(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("dashboard_%s_%s.xlsx", overview.From, overview.To)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logger.Error("Failed to write dashboard export", err)
	}
}

func (h *DashboardHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrInvalidRange) {
		response.BadRequest(c, "Invalid date range: from must not be after to")
		return
	}
	response.FromError(c, err)
}
