package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"unicode"
	"unicode/utf8"

	"teenxcel/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"statusCode": status,
		"data":       data,
		"message":    message,
		"success":    status < http.StatusBadRequest,
	})
}

// respondError writes the failure envelope with the status mapped from err.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	status := apperror.HTTPStatus(err)
	apperror.Log(log, err, "request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
	fields := apperror.FieldsOf(err)
	if fields == nil {
		fields = []string{}
	}
	c.AbortWithStatusJSON(status, gin.H{
		"statusCode": status,
		"message":    apperror.PublicMessage(err),
		"success":    false,
		"errors":     fields,
	})
}

// bindError converts a gin binding failure into a validation error naming
// the offending fields.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, jsonName(fe.Field()))
		}
		return apperror.Validation("invalid request body", fields...)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperror.Validation("invalid value for "+typeErr.Field, typeErr.Field)
	}
	return apperror.Validation("invalid request body")
}

func jsonName(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToLower(r)) + field[size:]
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Validation("invalid id", "id")
	}
	return uint(id), nil
}
