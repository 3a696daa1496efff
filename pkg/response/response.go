package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIError is the JSON body for every failed request. Success bodies are
// the bare resources; only errors carry the envelope.
type APIError struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Message   string    `json:"message"`
	Details   any       `json:"details,omitempty"`
}

// Error renders the error envelope and finishes the request.
func Error(c *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, APIError{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: c.GetString("request_id"),
		Message:   message,
		Details:   details,
	})
}
