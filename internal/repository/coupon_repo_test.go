package repository

import (
	"context"
	"testing"
	"time"

	"teenxcel/internal/apperror"
	"teenxcel/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var couponColumns = []string{
	"id", "code", "off_percentage", "max_discount", "expires_at", "valid_courses", "created_at", "updated_at",
}

func TestCouponRepository_GetByCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCouponRepository(db)
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `coupons` WHERE code = \\?").
		WillReturnRows(sqlmock.NewRows(couponColumns).
			AddRow(4, "LAUNCH", "12.50", int64(300), nil, []byte(`["CS101","AI200"]`), created, created))

	c, err := repo.GetByCode(context.Background(), "LAUNCH")

	require.NoError(t, err)
	assert.Equal(t, uint(4), c.ID)
	assert.True(t, decimal.RequireFromString("12.5").Equal(c.OffPercentage))
	require.NotNil(t, c.MaxDiscount)
	assert.Equal(t, int64(300), *c.MaxDiscount)
	assert.Nil(t, c.ExpiresAt)
	assert.Equal(t, datatypes.JSONSlice[string]{"CS101", "AI200"}, c.ValidCourses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_GetByCode_Unknown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCouponRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `coupons` WHERE code = \\?").
		WillReturnRows(sqlmock.NewRows(couponColumns))

	_, err := repo.GetByCode(context.Background(), "NOPE")

	assert.ErrorIs(t, err, apperror.ErrInvalidCoupon)
	assert.True(t, apperror.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCouponRepository(db)
	max := int64(300)

	mock.ExpectExec("INSERT INTO `coupons`").
		WithArgs(
			"LAUNCH",
			decimalArg("12.5"),
			max,
			nil,
			jsonArg{want: []string{"CS101", "AI200"}},
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(9, 1))

	c := &models.Coupon{
		Code:          "LAUNCH",
		OffPercentage: decimal.RequireFromString("12.5"),
		MaxDiscount:   &max,
		ValidCourses:  datatypes.JSONSlice[string]{"CS101", "AI200"},
	}
	require.NoError(t, repo.Create(context.Background(), c))

	assert.Equal(t, uint(9), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCouponRepository(db)

	mock.ExpectExec("INSERT INTO `coupons`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'LAUNCH' for key 'idx_coupons_code'"})

	err := repo.Create(context.Background(), &models.Coupon{Code: "LAUNCH", OffPercentage: decimal.NewFromInt(10)})

	assert.ErrorIs(t, err, apperror.ErrDuplicateCoupon)
	assert.True(t, apperror.IsConflict(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCouponRepository_Delete_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCouponRepository(db)

	mock.ExpectExec("DELETE FROM `coupons` WHERE `coupons`.`id` = \\?").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, apperror.ErrCouponNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
