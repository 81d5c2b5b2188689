package httpapi

import (
	"errors"
	"net/http"

	"yoripe/internal/apperrors"
	"yoripe/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Every response carries the same three-field body. Shaping is pure: the
// caller picks the status, nothing here derives it from business logic.
type envelope struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
	Data    any          `json:"data"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func respond(c *gin.Context, status int, message string, errs []FieldError, data any) {
	if errs == nil {
		errs = []FieldError{}
	}
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, envelope{Message: message, Errors: errs, Data: data})
}

func respondOK(c *gin.Context) {
	respond(c, http.StatusOK, "OK", nil, nil)
}

func respondOKWithData(c *gin.Context, data any) {
	respond(c, http.StatusOK, "OK", nil, data)
}

func respondNotFound(c *gin.Context) {
	respond(c, http.StatusNotFound, "Not Found", nil, nil)
}

func respondUnauthorized(c *gin.Context) {
	respond(c, http.StatusUnauthorized, "Unauthorized", nil, nil)
}

func respondForbidden(c *gin.Context) {
	respond(c, http.StatusForbidden, "Forbidden", nil, nil)
}

func respondValidationFailed(c *gin.Context, errs []FieldError) {
	respond(c, http.StatusUnprocessableEntity, "Unprocessable Entity", errs, nil)
}

func respondInternalError(c *gin.Context) {
	respond(c, http.StatusInternalServerError, "Internal Server Error", nil, nil)
}

// respondError maps a service outcome to its envelope. Anything outside the
// known taxonomy is a store/connectivity failure: logged, returned as 500.
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondNotFound(c)
	case errors.Is(err, apperrors.ErrForbidden):
		respondForbidden(c)
	case errors.Is(err, apperrors.ErrEmailTaken):
		respondValidationFailed(c, []FieldError{{Field: "email", Message: "The email has already been taken."}})
	case errors.As(err, &verr):
		errs := make([]FieldError, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			errs = append(errs, FieldError{Field: v.Field, Message: v.Message})
		}
		respondValidationFailed(c, errs)
	default:
		config.Logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		respondInternalError(c)
	}
}
