package report

import (
	"bytes"
	"testing"
	"time"

	"teenxcel/internal/domain"
	"teenxcel/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWritePayments(t *testing.T) {
	code := "SAVE20"
	pct := decimal.NewFromInt(20)
	payments := []models.Payment{
		{
			ID: 1, Name: "Asha", Phone: "9876543210", School: "DPS", Sem: "11", CourseCode: "CS101",
			OriginalAmount: 1000, DiscountAmount: 150, Paid: 850, CouponCode: &code, CouponPercentage: &pct,
			Status: domain.PaymentPending, Proof: "https://cdn/p1.png",
			CreatedAt: time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID: 2, Name: "Ravi", Phone: "9123456780", School: "KV", Sem: "12", CourseCode: "CS102",
			OriginalAmount: 500, Paid: 500, Status: domain.PaymentVerified, Proof: "https://cdn/p2.png",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePayments(&buf, payments))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PaymentsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Paid", rows[0][8])
	assert.Equal(t, "850", rows[1][8])
	assert.Equal(t, "SAVE20", rows[1][9])
	assert.Equal(t, "20", rows[1][10])
	assert.Equal(t, "2025-07-01 09:30:00", rows[1][13])
	assert.Equal(t, "", rows[2][9])
	assert.Equal(t, "verified", rows[2][11])
}

func TestWritePayments_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePayments(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PaymentsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
