package apperror

import "strings"

// Domain sentinels. Compare with errors.Is; callers may wrap them.
var (
	ErrInvalidCoupon     = NotFound("invalid coupon code")
	ErrExpiredCoupon     = Validation("coupon has expired")
	ErrCourseNotEligible = Validation("coupon is not valid for this course")
	ErrInvalidAmount     = Validation("amount must not be negative")
	ErrCorruptCoupon     = New(CodeInternal, "coupon data is out of range")

	ErrCourseNotFound       = NotFound("course not found")
	ErrCouponNotFound       = NotFound("coupon not found")
	ErrPaymentNotFound      = NotFound("payment request not found")
	ErrCallNotFound         = NotFound("call request not found")
	ErrCareerNotFound       = NotFound("joining request not found")
	ErrNotificationNotFound = NotFound("notification not found")

	ErrMissingFields     = Validation("missing required fields")
	ErrInvalidPhone      = Validation("phone number must be 10 digits", "phone")
	ErrInvalidStatus     = Validation("invalid status")
	ErrIllegalTransition = Conflict("status transition not allowed")
	ErrProofRequired     = Validation("payment proof is required", "image")
	ErrProofUploadFailed = New(CodeDependency, "failed to upload payment proof")
	ErrProofTooLarge     = New(CodeTooLarge, "payment proof is too large")
	ErrProofType         = Validation("payment proof must be an image", "image")

	ErrDuplicateCourse = Conflict("course with this course code already exists")
	ErrDuplicateCoupon = Conflict("coupon code already exists")

	ErrInvalidCredentials = New(CodeUnauthenticated, "invalid email or password")
	ErrUnauthenticated    = New(CodeUnauthenticated, "unauthorized request")
)

// MissingFields names every absent field. errors.Is(err, ErrMissingFields) holds.
func MissingFields(fields ...string) error {
	return &AppError{
		code:    CodeInvalidArgument,
		message: "missing required fields: " + strings.Join(fields, ", "),
		fields:  fields,
		err:     ErrMissingFields,
	}
}
