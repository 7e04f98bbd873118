package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-storefront/internal/domains/review/model"
	"bookstore-storefront/internal/domains/review/service"
	"bookstore-storefront/internal/shared/response"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListBookReviews lists reviews of a book
// GET /api/v1/books/:book_id/reviews?page&size&rating
func (h *ReviewHandler) ListBookReviews(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	var req model.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}
	req.BookID = bookID

	page, err := h.reviewService.ListByBook(c.Request.Context(), req)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Reviews retrieved successfully", page.Items, &response.Meta{
		Page:  page.Page,
		Limit: page.Size,
		Total: page.Total,
	})
}

// GetBookSummary returns the rating breakdown
// GET /api/v1/books/:book_id/reviews/summary
func (h *ReviewHandler) GetBookSummary(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	summary, err := h.reviewService.Summary(c.Request.Context(), bookID)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Rating summary retrieved", summary)
}

// CreateReview creates new review
// POST /api/v1/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	// Step 2: Call service (validates)
	review, err := h.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Review created successfully", review)
}

// UpdateReview updates own review
// PUT /api/v1/reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), reviewID, req)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Review updated successfully", review)
}

// DeleteReview deletes own review
// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), reviewID); err != nil {
		respondReviewError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Review deleted successfully", nil)
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

func respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNothingToUpdate):
		response.BadRequest(c, "Nothing to update")
		return
	case errors.Is(err, model.ErrInvalidReviewRef):
		response.BadRequest(c, "Invalid review ID")
		return
	}

	var reviewErr *model.ReviewError
	if errors.As(err, &reviewErr) {
		response.Error(c, mapReviewError(reviewErr), reviewErr.Code, reviewErr.Message)
		return
	}
	response.FromError(c, err)
}

func mapReviewError(reviewErr *model.ReviewError) int {
	switch reviewErr.Code {
	case model.ErrCodeReviewNotFound:
		return http.StatusNotFound
	case model.ErrCodeAlreadyReviewed:
		return http.StatusConflict
	case model.ErrCodeNotEligible, model.ErrCodeCannotEdit, model.ErrCodeCannotDelete:
		return http.StatusForbidden
	case model.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
