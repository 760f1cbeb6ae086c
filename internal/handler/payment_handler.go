package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"teenxcel/internal/apperror"
	"teenxcel/internal/report"
	"teenxcel/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var proofExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".avif": {},
}

// multipart framing allowance on top of the proof size limit
const formOverhead = 1 << 20

type PaymentHandler struct {
	payments *service.PaymentService
	tempDir  string
	maxBytes int64
	log      *zap.Logger
}

func NewPaymentHandler(payments *service.PaymentService, tempDir string, maxBytes int64, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, tempDir: tempDir, maxBytes: maxBytes, log: log}
}

// Create handles POST /api/payment/create. The proof arrives as the "image"
// multipart file and is staged on local disk until the upload finishes; the
// staged copy is removed on every path.
func (h *PaymentHandler) Create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+formOverhead)

	in := service.SubmitPaymentInput{}
	fh, err := c.FormFile("image")
	switch {
	case err == nil:
		path, err := h.stage(c, fh)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		defer h.discard(path)
		in.ProofPath = path
	case errors.Is(err, http.ErrMissingFile):
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, h.log, apperror.ErrProofTooLarge)
			return
		}
		respondError(c, h.log, apperror.Validation("invalid multipart form"))
		return
	}

	in.Name = c.PostForm("name")
	in.Phone = c.PostForm("phone")
	in.School = c.PostForm("school")
	in.Sem = c.PostForm("sem")
	in.CourseCode = c.PostForm("courseCode")
	in.CouponCode = c.PostForm("couponCode")

	p, err := h.payments.Submit(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, "payment submitted", p)
}

func (h *PaymentHandler) stage(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > h.maxBytes {
		return "", apperror.ErrProofTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := proofExtensions[ext]; !ok {
		return "", apperror.ErrProofType
	}
	if err := os.MkdirAll(h.tempDir, 0o755); err != nil {
		return "", apperror.Internal("could not stage upload", err)
	}
	tmp, err := os.CreateTemp(h.tempDir, "proof-*"+ext)
	if err != nil {
		return "", apperror.Internal("could not stage upload", err)
	}
	path := tmp.Name()
	tmp.Close()
	if err := c.SaveUploadedFile(fh, path); err != nil {
		h.discard(path)
		return "", apperror.Internal("could not stage upload", err)
	}
	return path, nil
}

func (h *PaymentHandler) discard(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		h.log.Warn("temp proof not removed", zap.String("path", path), zap.Error(err))
	}
}

// List handles GET /api/admin/payments?status=.
func (h *PaymentHandler) List(c *gin.Context) {
	list, err := h.payments.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "payments fetched", list)
}

// Export handles GET /api/admin/payments/export and streams an xlsx workbook.
func (h *PaymentHandler) Export(c *gin.Context) {
	list, err := h.payments.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	name := fmt.Sprintf("payments-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Status(http.StatusOK)
	if err := report.WritePayments(c.Writer, list); err != nil {
		h.log.Error("payment export failed", zap.Error(err))
	}
}

func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	p, err := h.payments.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "payment updated", p)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.payments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "payment deleted", nil)
}
