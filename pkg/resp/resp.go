package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PremPrakashCodes/preplate/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func BadRequest(c *gin.Context, msg string) {
	Fail(c, http.StatusBadRequest, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	Fail(c, http.StatusUnauthorized, msg)
}

func Forbidden(c *gin.Context, msg string) {
	Fail(c, http.StatusForbidden, msg)
}

// Error maps a tagged service error to its status. Untagged errors become a
// generic 500; the cause goes to the log, never to the caller.
func Error(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		Fail(c, http.StatusBadRequest, err.Error())
	case apperr.KindUnauthorized:
		Fail(c, http.StatusUnauthorized, err.Error())
	case apperr.KindForbidden:
		Fail(c, http.StatusForbidden, err.Error())
	case apperr.KindNotFound:
		Fail(c, http.StatusNotFound, err.Error())
	case apperr.KindConflict:
		Fail(c, http.StatusConflict, err.Error())
	default:
		zap.L().Error("internal error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Fail(c, http.StatusInternalServerError, "internal server error")
	}
}
