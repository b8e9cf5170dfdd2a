package http

import "github.com/gin-gonic/gin"

// errorResponse is the uniform error body returned by every endpoint.
type errorResponse struct {
	Error string `json:"error"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// validationErrorResponse carries a field-level rejection.
type validationErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func newValidationErrorResponse(c *gin.Context, status int, field, message string) {
	c.AbortWithStatusJSON(status, validationErrorResponse{Error: message, Field: field})
}
