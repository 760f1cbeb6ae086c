package repository

import (
	"context"
	"errors"
	"testing"

	"teenxcel/internal/apperror"
	"teenxcel/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The status change must be conditional on the status the caller read.
const paymentStatusUpdate = "UPDATE `payments` SET `status`=\\?,`updated_at`=\\? WHERE \\(?id = \\? AND status = \\?\\)?"

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectExec(paymentStatusUpdate).
		WithArgs(domain.PaymentVerified, sqlmock.AnyArg(), 7, domain.PaymentPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.UpdateStatus(context.Background(), 7, domain.PaymentPending, domain.PaymentVerified)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_UpdateStatus_LostRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectExec(paymentStatusUpdate).
		WithArgs(domain.PaymentRejected, sqlmock.AnyArg(), 7, domain.PaymentPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.UpdateStatus(context.Background(), 7, domain.PaymentPending, domain.PaymentRejected)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_UpdateStatus_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectExec(paymentStatusUpdate).WillReturnError(errors.New("connection reset"))

	ok, err := repo.UpdateStatus(context.Background(), 7, domain.PaymentPending, domain.PaymentVerified)

	assert.False(t, ok)
	assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_GetByID_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `payments` WHERE `payments`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 3)

	assert.ErrorIs(t, err, apperror.ErrPaymentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_List_FiltersByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `payments` WHERE status = \\? ORDER BY created_at DESC").
		WithArgs(domain.PaymentPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "pending").AddRow(2, "pending"))

	list, err := repo.List(context.Background(), domain.PaymentPending)

	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
