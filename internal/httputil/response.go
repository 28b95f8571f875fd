// Package httputil carries the JSON envelope every endpoint replies with.
package httputil

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape: {status, message, data?}.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes the envelope with a payload.
func Respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Status: status, Message: message, Data: data})
}

// RespondMessage writes the envelope without a payload.
func RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Status: status, Message: message})
}

// Abort writes the envelope and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Status: status, Message: message})
}
