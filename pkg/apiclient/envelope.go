package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// envelope is the uniform response wrapper of every backend endpoint:
// {statusCode, error, message, data}
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Error      *string         `json:"error"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// APIError is returned when the backend answers with a non-2xx status
// (either on the HTTP layer or inside the envelope).
type APIError struct {
	StatusCode int    // HTTP or envelope status code
	Code       string // envelope "error" field, may be empty
	Message    string // envelope "message", surfaced to the user
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Message)
}

// Message returns the backend message carried by err, or err.Error()
// for transport errors.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// StatusCode returns the backend status carried by err, 0 if err is not an APIError
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// decodeEnvelope unwraps body into out. httpStatus is the transport status.
func decodeEnvelope(httpStatus int, body []byte, out interface{}) error {
	var env envelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil {
			if httpStatus >= http.StatusBadRequest {
				return &APIError{StatusCode: httpStatus, Message: http.StatusText(httpStatus)}
			}
			return fmt.Errorf("failed to unmarshal response envelope: %w", err)
		}
	}

	status := httpStatus
	if env.StatusCode >= http.StatusBadRequest {
		status = env.StatusCode
	}
	if status >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: status, Message: env.Message}
		if env.Error != nil {
			apiErr.Code = *env.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response data: %w", err)
	}
	return nil
}
