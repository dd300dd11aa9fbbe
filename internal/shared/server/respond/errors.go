package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

// ErrorBody is the error object every failing endpoint returns.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps ErrorBody as {"error": {...}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// FieldIssue names one rejected input.
type FieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// Error aborts the request with the standard error body and logs it, as a
// warning below 500 and as an error from 500 up.
func Error(c *gin.Context, status int, code, message string, details any) {
	log := telemetry.Warn
	if status >= http.StatusInternalServerError {
		log = telemetry.Error
	}
	log("http.error", errorFields(c, status, code, message))
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message, Details: details}})
}

// Invalid rejects a request with 400 validation_error. Issues, when given,
// become the details list.
func Invalid(c *gin.Context, message string, issues ...FieldIssue) {
	var details any
	if len(issues) > 0 {
		details = issues
	}
	Error(c, http.StatusBadRequest, "validation_error", message, details)
}

func errorFields(c *gin.Context, status int, code, message string) map[string]any {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if guest, ok := c.Get("isGuest"); ok {
		fields["is_guest"] = guest
	}
	return fields
}
