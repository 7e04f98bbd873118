package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/staff/model"
	"bookstore-storefront/internal/domains/staff/service"
	"bookstore-storefront/internal/shared/middleware"
	"bookstore-storefront/internal/shared/response"
)

type StaffHandler struct {
	service service.ServiceInterface
}

func NewStaffHandler(s service.ServiceInterface) *StaffHandler {
	return &StaffHandler{service: s}
}

// ========================================
// ADMIN ENDPOINTS (AUTH + ADMIN)
// ========================================

// ListStaff xử lý GET /admin/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	// STEP 1: PARSE QUERY PARAMS
	var req model.ListStaffRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}

	// STEP 2: LIST
	page, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Staff retrieved successfully", page.Items, &response.Meta{
		Page:  page.Page,
		Limit: page.Size,
		Total: page.Total,
	})
}

// UpdateRole xử lý PUT /admin/staff/:id/role
func (h *StaffHandler) UpdateRole(c *gin.Context) {
	// STEP 1: IDS (actor + target)
	actorID, staffID, ok := h.ids(c)
	if !ok {
		return
	}

	// STEP 2: PARSE BODY
	var req model.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// STEP 3: UPDATE
	if err := h.service.UpdateRole(c.Request.Context(), actorID, staffID, req); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Staff role updated successfully", nil)
}

// UpdateStatus xử lý PUT /admin/staff/:id/status
func (h *StaffHandler) UpdateStatus(c *gin.Context) {
	actorID, staffID, ok := h.ids(c)
	if !ok {
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), actorID, staffID, req); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Staff status updated successfully", nil)
}

// ========================================
// HELPER FUNCTIONS
// ========================================

// ids lấy actor từ claims (AuthMiddleware) và staff id từ path
func (h *StaffHandler) ids(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		response.Unauthorized(c, "Please log in to continue")
		return uuid.Nil, uuid.Nil, false
	}
	actorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.Unauthorized(c, "Invalid token subject")
		return uuid.Nil, uuid.Nil, false
	}

	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return uuid.Nil, uuid.Nil, false
	}
	return actorID, staffID, true
}

func (h *StaffHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrSelfUpdate):
		response.Forbidden(c, err.Error())
	case errors.Is(err, model.ErrNotFound):
		response.NotFound(c, err.Error())
	default:
		response.FromError(c, err)
	}
}
