package controllers

import (
	"errors"
	"log"
	"strconv"

	"littlelemon/pkg/resp"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

// fail maps service errors to HTTP responses. Unknown errors are logged
// and surfaced as a generic 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c)
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c)
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrNotDeliveryCrew):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrUsernameTaken):
		resp.Conflict(c, err.Error())
	default:
		log.Println("unexpected error:", err)
		resp.ServerError(c)
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
