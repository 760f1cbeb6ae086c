package handler

import (
	"net/http"
	"time"

	"teenxcel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CouponHandler struct {
	coupons *service.CouponService
	log     *zap.Logger
}

func NewCouponHandler(coupons *service.CouponService, log *zap.Logger) *CouponHandler {
	return &CouponHandler{coupons: coupons, log: log}
}

// Verify handles POST /api/coupons/verify and returns the price the
// requester would pay.
func (h *CouponHandler) Verify(c *gin.Context) {
	var req struct {
		CouponCode string `json:"couponCode"`
		CourseCode string `json:"courseCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	quote, err := h.coupons.Preview(c.Request.Context(), req.CouponCode, req.CourseCode)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "coupon applied", quote)
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req struct {
		Code          string          `json:"code"`
		OffPercentage decimal.Decimal `json:"offPercentage"`
		MaxDiscount   *int64          `json:"maxDiscount"`
		ExpiresAt     *time.Time      `json:"expiryDate"`
		ValidCourses  []string        `json:"validCourses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	coupon, err := h.coupons.Create(c.Request.Context(), service.CreateCouponInput{
		Code:          req.Code,
		OffPercentage: req.OffPercentage,
		MaxDiscount:   req.MaxDiscount,
		ExpiresAt:     req.ExpiresAt,
		ValidCourses:  req.ValidCourses,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, "coupon created", coupon)
}

func (h *CouponHandler) List(c *gin.Context) {
	list, err := h.coupons.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "coupons fetched", list)
}

func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.coupons.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "coupon deleted", nil)
}
