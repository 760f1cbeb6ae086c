// Package report renders admin exports.
package report

import (
	"fmt"
	"io"

	"teenxcel/internal/models"

	"github.com/xuri/excelize/v2"
)

const PaymentsSheet = "Payments"

var paymentHeader = []interface{}{
	"ID", "Name", "Phone", "School", "Sem", "Course", "Original", "Discount",
	"Paid", "Coupon", "Coupon %", "Status", "Proof", "Submitted",
}

// WritePayments writes payments as a single-sheet xlsx workbook.
func WritePayments(w io.Writer, payments []models.Payment) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PaymentsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(PaymentsSheet, "A1", &paymentHeader); err != nil {
		return err
	}

	for i, p := range payments {
		coupon, pct := "", ""
		if p.CouponCode != nil {
			coupon = *p.CouponCode
		}
		if p.CouponPercentage != nil {
			pct = p.CouponPercentage.String()
		}
		row := []interface{}{
			p.ID, p.Name, p.Phone, p.School, p.Sem, p.CourseCode,
			p.OriginalAmount, p.DiscountAmount, p.Paid, coupon, pct,
			string(p.Status), p.Proof, p.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(PaymentsSheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
