package handler

import (
	"net/http"

	"teenxcel/config"
	"teenxcel/internal/middleware"
	"teenxcel/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	cfg     *config.JWTConfig
	authSvc *service.AuthService
	log     *zap.Logger
}

func NewAdminHandler(cfg *config.JWTConfig, authSvc *service.AuthService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{cfg: cfg, authSvc: authSvc, log: log}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	a, token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	h.setSessionCookie(c, token, int(h.cfg.Expiry.Seconds()))
	respond(c, http.StatusOK, "logged in", gin.H{"accessToken": token, "admin": a})
}

// Logout handles POST /api/admin/logout.
func (h *AdminHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	respond(c, http.StatusOK, "logged out", nil)
}

// LoggedIn handles GET /api/admin/loggedin. AdminRequired has already
// rejected invalid sessions.
func (h *AdminHandler) LoggedIn(c *gin.Context) {
	respond(c, http.StatusOK, "authorized", middleware.GetAdminClaims(c))
}

func (h *AdminHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(h.cfg.CookieName, value, maxAge, "/", "", h.cfg.CookieSecure, true)
}
