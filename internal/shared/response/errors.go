package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/logger"
)

// FromError renders err in the envelope:
// validation errors → 400, backend errors keep their status and message,
// anything else (transport) → 502.
func FromError(c *gin.Context, err error) {
	var ve validation.Errors
	if errors.As(err, &ve) {
		ErrorWithData(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", ve)
		return
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		Upstream(c, apiErr.StatusCode, apiErr.Message)
		return
	}

	logger.ErrorWithFields("Backend unreachable", err, map[string]interface{}{
		"request_id": c.GetString("request_id"),
		"path":       c.Request.URL.Path,
	})
	Upstream(c, http.StatusBadGateway, "The bookstore service is unavailable, please try again")
}
