package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/comment/model"
	"bookstore-storefront/internal/domains/comment/service"
	"bookstore-storefront/internal/shared/response"
	"bookstore-storefront/pkg/apiclient"
)

type CommentHandler struct {
	service service.ServiceInterface
}

func NewCommentHandler(service service.ServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// GET /books/:book_id/comments
func (h *CommentHandler) GetThread(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	thread, err := h.service.Thread(c.Request.Context(), bookID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Comments retrieved successfully", thread)
}

// POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	comment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Comment posted", comment)
}

// DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			response.NotFound(c, "Comment not found")
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Comment deleted", nil)
}

// POST /comments/:id/like-toggle
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	var req model.LikeToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.service.ToggleLike(c.Request.Context(), id, req)
	if err != nil {
		if result == nil {
			response.BadRequest(c, err.Error())
			return
		}
		// the page restores the returned state
		status := apiclient.StatusCode(err)
		if status == 0 {
			status = http.StatusBadGateway
		}
		response.ErrorWithData(c, status, "LIKE_REVERTED", result.Message, result)
		return
	}
	response.Success(c, http.StatusOK, "OK", result)
}
