package http

import (
	"errors"
	"net/http"

	"photobazaar/internal/entity"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func respondMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), Response{Success: false, Error: publicMessage(err)})
}

func respondValidation(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Error: detail})
}

// statusFor maps the domain error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrOwnPhotoLike),
		errors.Is(err, entity.ErrOwnPhotoPurchase),
		errors.Is(err, entity.ErrPhotoUnavailable),
		errors.Is(err, entity.ErrDownloadLimit),
		errors.Is(err, entity.ErrDownloadExpired),
		errors.Is(err, entity.ErrPurchaseRequired):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthorized),
		errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrNotFound),
		errors.Is(err, entity.ErrPhotoNotFound),
		errors.Is(err, entity.ErrPurchaseNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrAlreadyPurchased),
		errors.Is(err, entity.ErrDuplicate),
		errors.Is(err, entity.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides internals behind a generic message for 500s.
func publicMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
