package apperror

import (
	"errors"

	"go.uber.org/zap"
)

// Log records err with its code. Client-side classifications log at warn,
// everything else at error.
func Log(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil || logger == nil {
		return
	}
	all := make([]zap.Field, 0, len(fields)+2)
	all = append(all, zap.Error(err))

	var appErr *AppError
	if errors.As(err, &appErr) {
		all = append(all, zap.String("error_code", appErr.code))
	}
	all = append(all, fields...)

	if HTTPStatus(err) >= 500 {
		logger.Error(msg, all...)
		return
	}
	logger.Warn(msg, all...)
}
