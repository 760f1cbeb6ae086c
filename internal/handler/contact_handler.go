package handler

import (
	"net/http"

	"teenxcel/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves call-back and join-us requests.
type ContactHandler struct {
	contacts *service.ContactService
	log      *zap.Logger
}

func NewContactHandler(contacts *service.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, log: log}
}

func (h *ContactHandler) RequestCall(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Phone  string `json:"phone"`
		School string `json:"school"`
		Sem    string `json:"sem"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	call, err := h.contacts.RequestCall(c.Request.Context(), service.CallRequestInput{
		Name: req.Name, Phone: req.Phone, School: req.School, Sem: req.Sem,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, "call requested", call)
}

func (h *ContactHandler) ListCalls(c *gin.Context) {
	list, err := h.contacts.ListCalls(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "calls fetched", list)
}

func (h *ContactHandler) UpdateCall(c *gin.Context) {
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
	call, err := h.contacts.UpdateCallStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "call updated", call)
}

func (h *ContactHandler) DeleteCall(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.contacts.DeleteCall(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "call deleted", nil)
}

func (h *ContactHandler) RequestJoin(c *gin.Context) {
	var req struct {
		Name       string `json:"name"`
		Skills     string `json:"skills"`
		Experience string `json:"experience"`
		Phone      string `json:"phone"`
		Email      string `json:"email"`
		Location   string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	r, err := h.contacts.RequestJoin(c.Request.Context(), service.CareerRequestInput{
		Name:       req.Name,
		Skills:     req.Skills,
		Experience: req.Experience,
		Phone:      req.Phone,
		Email:      req.Email,
		Location:   req.Location,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusCreated, "request submitted", r)
}

func (h *ContactHandler) ListJoinRequests(c *gin.Context) {
	list, err := h.contacts.ListJoinRequests(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "requests fetched", list)
}

func (h *ContactHandler) DeleteJoinRequest(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.contacts.DeleteJoinRequest(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	respond(c, http.StatusOK, "request deleted", nil)
}
