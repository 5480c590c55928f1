package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// --- Response Types ---

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request envelope.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

// respondNotFound sends a 404 Not Found envelope.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, Envelope{Success: false, Message: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 envelope.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "internal server error"})
}

// --- Success Response Helpers ---

// respondOK sends a 200 OK envelope with data.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// respondOKWithMessage sends a 200 OK envelope with data and a message.
func respondOKWithMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// respondCreated sends a 201 Created envelope with data and a message.
func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// respondMessage sends a 200 OK envelope carrying only a message.
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// respondList sends a 200 OK envelope with a list and its total.
func respondList(c *gin.Context, data any, total int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Total: &total})
}
