package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/community/model"
	"bookstore-storefront/internal/domains/community/service"
	"bookstore-storefront/internal/shared/response"
)

type CommunityHandler struct {
	service service.ServiceInterface
}

func NewCommunityHandler(service service.ServiceInterface) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// GetPage returns the book community page; sections fail independently
// GET /api/v1/books/:book_id/community?page
func (h *CommunityHandler) GetPage(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	var req model.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}
	req.BookID = bookID

	page := h.service.Page(c.Request.Context(), req)
	response.Success(c, http.StatusOK, "Community page retrieved successfully", page)
}
