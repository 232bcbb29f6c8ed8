package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telehealth-connect/patient-api/internal/model"
	pkgauth "github.com/telehealth-connect/patient-api/pkg/auth"
	apperrors "github.com/telehealth-connect/patient-api/pkg/errors"
)

// Response is the standard envelope. Message carries transient
// user-facing notices.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewFlashResponse(message string, data interface{}) *Response {
	return &Response{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps service errors onto HTTP statuses. Validation failures
// and login failures keep their user-facing messages; anything else is a
// persistence error whose message is surfaced as-is.
func RespondError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, NewErrorResponse(model.ErrInvalidCredentials.Error()))
		return
	}
	if errors.Is(err, pkgauth.ErrInvalidToken) {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("please login to continue"))
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode()
		resp := NewErrorResponse(appErr.Message)
		if status == http.StatusUnauthorized {
			resp.Data = gin.H{"redirect": "/login"}
		}
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
}
