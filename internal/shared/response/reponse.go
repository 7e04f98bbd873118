package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the same envelope the bookstore backend uses, so the browser
// sees one shape whether it talks to the backend or to the storefront.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Error      *string     `json:"error"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Meta       *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
	Total int `json:"total,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, message string, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Meta:       meta,
	})
}

// Error responses
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		StatusCode: statusCode,
		Error:      &code,
		Message:    message,
	})
}

func ErrorWithData(c *gin.Context, statusCode int, code, message string, data interface{}) {
	c.JSON(statusCode, Response{
		StatusCode: statusCode,
		Error:      &code,
		Message:    message,
		Data:       data,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, "FORBIDDEN", message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}

// Upstream relays a backend failure: its status code (502 when the backend
// was unreachable) and the message the user should see.
func Upstream(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadGateway
	}
	Error(c, status, "UPSTREAM_ERROR", message)
}
