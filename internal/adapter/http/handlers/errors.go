package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/usecase"
	"fieldops/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple(string(usecase.KindValidation), "Invalid request payload", http.StatusBadRequest)

var kindStatus = map[usecase.ErrorKind]int{
	usecase.KindUnauthorized: http.StatusUnauthorized,
	usecase.KindForbidden:    http.StatusForbidden,
	usecase.KindNotFound:     http.StatusNotFound,
	usecase.KindValidation:   http.StatusBadRequest,
	usecase.KindConflict:     http.StatusConflict,
}

// mapError converts a use case failure into the HTTP error envelope. Anything
// that is not a classified *usecase.Error is reported as an internal error.
func mapError(err error) *pkg.AppError {
	var ue *usecase.Error
	if !errors.As(err, &ue) || ue.Kind == usecase.KindInternal {
		return pkg.NewDomainError(string(usecase.KindInternal), "An internal error occurred", err, http.StatusInternalServerError)
	}
	status, ok := kindStatus[ue.Kind]
	if !ok {
		return pkg.NewDomainError(string(usecase.KindInternal), "An internal error occurred", err, http.StatusInternalServerError)
	}
	msg := ue.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	return pkg.NewDomainError(string(ue.Kind), msg, err, status).WithDetails(ue.Fields)
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindJSON decodes the body into dst and writes a 400 when it is not valid JSON
// for dst. An empty body leaves dst at its zero value.
func bindJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		writeAppError(c, errInvalidPayload.WithDetails(map[string]string{"body": err.Error()}))
		return false
	}
	return true
}
