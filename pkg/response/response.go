package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the wire shape every endpoint returns. Count is set on
// list responses only.
type APIResponse[T any] struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    T           `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Success writes a successful response.
func Success[T any](c *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List writes a successful response carrying a collection and its count.
func List[T any](c *gin.Context, status int, data []T) {
	if status == 0 {
		status = http.StatusOK
	}
	n := len(data)
	c.JSON(status, APIResponse[[]T]{
		Success: true,
		Data:    data,
		Count:   &n,
	})
}

// Error writes a failed response. details is optional machine-readable
// context (e.g. per-field validation messages); never internal state.
func Error(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, APIResponse[any]{
		Success: false,
		Message: message,
		Error:   details,
	})
}
