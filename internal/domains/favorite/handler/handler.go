package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/favorite/model"
	"bookstore-storefront/internal/domains/favorite/service"
	"bookstore-storefront/internal/shared/response"
	"bookstore-storefront/pkg/apiclient"
)

type FavoriteHandler struct {
	service service.ServiceInterface
}

func NewFavoriteHandler(service service.ServiceInterface) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// GET /favorites/ids
func (h *FavoriteHandler) GetIDs(c *gin.Context) {
	ids, err := h.service.IDs(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"ids": ids})
}

// POST /favorites/:book_id/toggle
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	result, err := h.service.Toggle(c.Request.Context(), bookID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrLoginRequired):
			response.Unauthorized(c, "Please sign in to save favorites")
		case result != nil:
			status := apiclient.StatusCode(err)
			if status == 0 {
				status = http.StatusBadGateway
			}
			response.ErrorWithData(c, status, "FAVORITE_REVERTED", result.Message, result)
		default:
			response.FromError(c, err)
		}
		return
	}

	message := "Removed from favorites"
	if result.Favorited {
		message = "Added to favorites"
	}
	response.Success(c, http.StatusOK, message, result)
}
