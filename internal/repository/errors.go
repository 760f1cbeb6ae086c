package repository

import (
	"errors"

	"teenxcel/internal/apperror"

	"gorm.io/gorm"
)

// translate maps driver level failures onto the application taxonomy.
// notFound and duplicate may be nil when the call cannot produce them.
func translate(err error, notFound, duplicate *apperror.AppError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey) && duplicate != nil:
		return duplicate
	default:
		return apperror.Internal("database error", err)
	}
}

// deleted reports a delete that touched no row as notFound.
func deleted(res *gorm.DB, notFound *apperror.AppError) error {
	if res.Error != nil {
		return translate(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}
