package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/cart/model"
	"bookstore-storefront/internal/domains/cart/service"
	"bookstore-storefront/internal/shared/response"
)

// Handler handles HTTP requests for cart
type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ===================================
// GET /cart
// ===================================
func (h *Handler) GetCart(c *gin.Context) {
	view, err := h.service.GetCart(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Cart retrieved successfully", view)
}

// ===================================
// GET /cart/badge
// ===================================
func (h *Handler) GetBadge(c *gin.Context) {
	count, err := h.service.Badge(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"uniqueItems": count})
}

// ===================================
// POST /cart/items
// ===================================
func (h *Handler) AddItem(c *gin.Context) {
	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	view, err := h.service.AddItem(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Item added to cart", view)
}

// ===================================
// POST /cart/buy-now
// ===================================
func (h *Handler) BuyNow(c *gin.Context) {
	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	view, err := h.service.BuyNow(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Item ready for checkout", view)
}

// ===================================
// PUT /cart/items/:book_id
// ===================================
func (h *Handler) UpdateItem(c *gin.Context) {
	bookID, ok := parseBookID(c)
	if !ok {
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	view, err := h.service.UpdateItem(c.Request.Context(), bookID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Cart item updated", view)
}

// ===================================
// DELETE /cart/items/:book_id
// ===================================
func (h *Handler) RemoveItem(c *gin.Context) {
	bookID, ok := parseBookID(c)
	if !ok {
		return
	}

	view, err := h.service.RemoveItem(c.Request.Context(), bookID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Item removed from cart", view)
}

// ===================================
// POST /cart/clear
// ===================================
func (h *Handler) Clear(c *gin.Context) {
	view, err := h.service.Clear(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Cart cleared", view)
}

// ===================================
// PUT /cart/select-all
// ===================================
func (h *Handler) SelectAll(c *gin.Context) {
	var req model.SelectAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	view, err := h.service.SelectAll(c.Request.Context(), req.Selected)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Selection updated", view)
}

// =====================================================
// HELPERS
// =====================================================

func parseBookID(c *gin.Context) (uuid.UUID, bool) {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return uuid.Nil, false
	}
	return bookID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case model.IsKnown(err):
		response.Error(c, http.StatusConflict, "CART_UNAVAILABLE", model.UserMessage(err))
	case errors.Is(err, model.ErrNothingToUpdate):
		response.BadRequest(c, err.Error())
	default:
		response.FromError(c, err)
	}
}
