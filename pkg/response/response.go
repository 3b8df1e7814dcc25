// Package response renders the API's JSON error envelope. Success bodies
// are endpoint-specific and written directly by handlers.
package response

import "github.com/gin-gonic/gin"

// ErrorBody is the wire shape of every failed request.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Error writes the envelope with the given status.
func Error(c *gin.Context, status int, msg, code string) {
	c.JSON(status, ErrorBody{Error: msg, Code: code})
}

// ValidationDetails writes the envelope for request-shape validation
// failures, carrying per-field messages.
func ValidationDetails(c *gin.Context, status int, details any) {
	c.JSON(status, ErrorBody{Error: "Validation error", Details: details})
}

// AbortError writes the envelope and aborts the middleware chain.
func AbortError(c *gin.Context, status int, msg, code string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg, Code: code})
}
