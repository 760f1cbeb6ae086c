package repository

import (
	"errors"
	"fmt"
	"testing"

	"teenxcel/internal/apperror"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, apperror.ErrCourseNotFound, nil))

	err := translate(gorm.ErrRecordNotFound, apperror.ErrCourseNotFound, nil)
	assert.ErrorIs(t, err, apperror.ErrCourseNotFound)

	err = translate(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), nil, apperror.ErrDuplicateCoupon)
	assert.ErrorIs(t, err, apperror.ErrDuplicateCoupon)
	assert.True(t, apperror.IsConflict(err))

	err = translate(errors.New("connection reset"), apperror.ErrCourseNotFound, nil)
	assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(err))
}

func TestTranslate_NotFoundWithoutMappingIsInternal(t *testing.T) {
	err := translate(gorm.ErrRecordNotFound, nil, nil)

	assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(err))
}

func TestDeleted(t *testing.T) {
	assert.NoError(t, deleted(&gorm.DB{RowsAffected: 1}, apperror.ErrPaymentNotFound))
	assert.ErrorIs(t, deleted(&gorm.DB{RowsAffected: 0}, apperror.ErrPaymentNotFound), apperror.ErrPaymentNotFound)

	err := deleted(&gorm.DB{Error: errors.New("lock wait timeout")}, apperror.ErrPaymentNotFound)
	assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(err))
}
