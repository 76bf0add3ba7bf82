package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/cadet-records-api/pkg/errors"
	"github.com/noah-isme/cadet-records-api/pkg/logger"
)

// ErrorBody is the payload written for every failed request.
type ErrorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Success is returned by write endpoints that have nothing else to report.
type Success struct {
	Success bool `json:"success"`
}

// Created is returned by create endpoints.
type Created struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

// Deleted is returned by delete endpoints that report removal.
type Deleted struct {
	Deleted bool `json:"deleted"`
}

// JSON writes the payload as-is with no-store caching headers.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Done responds with {"success": true}.
func Done(c *gin.Context) {
	JSON(c, http.StatusOK, Success{Success: true})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	body := ErrorBody{Error: appErr.Message, Code: appErr.Code}
	body.RequestID = c.GetString(logger.RequestIDKey)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, body)
}

// File streams a rendered document as an attachment.
func File(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, data)
}
