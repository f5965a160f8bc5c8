package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessResponse is the wire shape the frontend switches on after a
// dispatched submission.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse carries the single user-safe error string. Internal error
// detail never appears here, only in server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success sends the success body
func Success(c *gin.Context, code int) {
	c.JSON(code, SuccessResponse{Success: true})
}

// Error sends an error body with the given status
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
