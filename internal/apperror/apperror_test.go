package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ErrExpiredCoupon, http.StatusBadRequest},
		{"not found", ErrInvalidCoupon, http.StatusNotFound},
		{"conflict", ErrIllegalTransition, http.StatusConflict},
		{"dependency", ErrProofUploadFailed, http.StatusInternalServerError},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"too large", ErrProofTooLarge, http.StatusRequestEntityTooLarge},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"fmt wrapped", fmt.Errorf("lookup: %w", ErrCourseNotFound), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestWrap_KeepsCodeAndSentinel(t *testing.T) {
	err := Wrap(ErrExpiredCoupon, "resolve coupon SUMMER")

	assert.True(t, errors.Is(err, ErrExpiredCoupon))
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))
	assert.Equal(t, "resolve coupon SUMMER", PublicMessage(err))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	err := Wrap(errors.New("driver: bad connection"), "list payments")

	assert.Equal(t, CodeInternal, CodeOf(err))
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestMissingFields(t *testing.T) {
	err := MissingFields("name", "phone")

	assert.True(t, errors.Is(err, ErrMissingFields))
	assert.Equal(t, []string{"name", "phone"}, FieldsOf(err))
	assert.Equal(t, "missing required fields: name, phone", PublicMessage(err))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestPublicMessage_HidesPlainErrors(t *testing.T) {
	assert.Equal(t, "internal server error", PublicMessage(errors.New("dial tcp 10.0.0.1:3306")))
}

func TestLog_LevelFollowsClassification(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	Log(logger, ErrExpiredCoupon, "coupon rejected")
	Log(logger, ErrProofUploadFailed, "upload failed")
	Log(logger, nil, "ignored")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, CodeInvalidArgument, entries[0].ContextMap()["error_code"])
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	}
}
