package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/petsparadise/petsparadise/internal/auth"
	"github.com/petsparadise/petsparadise/internal/handler/dto"
	"github.com/petsparadise/petsparadise/internal/middleware"
	"github.com/petsparadise/petsparadise/internal/model"
	"github.com/petsparadise/petsparadise/internal/service"
)

// AdminHandler handles administrator account and session endpoints.
type AdminHandler struct {
	svc           *service.AdminService
	logger        *slog.Logger
	secret        []byte
	sessionTTL    time.Duration
	secureCookies bool
}

// NewAdminHandler creates a new AdminHandler. secureCookies selects the
// production cookie profile (Secure, SameSite=None) over the local one
// (SameSite=Lax).
func NewAdminHandler(svc *service.AdminService, logger *slog.Logger, secret []byte, sessionTTL time.Duration, secureCookies bool) *AdminHandler {
	return &AdminHandler{
		svc:           svc,
		logger:        logger,
		secret:        secret,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
	}
}

// Signup handles POST /admin/signup.
func (h *AdminHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	admin, err := h.svc.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if !h.issueSession(w, admin) {
		return
	}

	h.logger.Info("admin_signed_up", "admin_id", admin.ID, "username", admin.Username)

	writeJSON(w, http.StatusCreated, dto.SessionResponse{
		Message:  "Signup successful",
		Username: admin.Username,
	})
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	admin, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if !h.issueSession(w, admin) {
		return
	}

	h.logger.Info("admin_logged_in", "admin_id", admin.ID, "username", admin.Username)

	writeJSON(w, http.StatusOK, dto.SessionResponse{
		Message:  "Login successful",
		Username: admin.Username,
	})
}

// Logout handles POST /admin/logout. Sessions are stateless, so logout
// only clears the cookie; previously issued tokens expire on their own.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

// Me handles GET /admin/me.
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication required")
		return
	}

	admin, err := h.svc.Profile(r.Context(), identity.AdminID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, admin)
}

// ChangePassword handles POST /admin/change-password.
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication required")
		return
	}

	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.svc.ChangePassword(r.Context(), identity.AdminID, req.CurrentPassword, req.NewPassword); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("admin_password_changed", "admin_id", identity.AdminID)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Password changed successfully"})
}

// issueSession signs a session token for the admin and sets the cookie.
// On failure it writes a 500 response and returns false.
func (h *AdminHandler) issueSession(w http.ResponseWriter, admin *model.Admin) bool {
	token, err := auth.IssueToken(model.Identity{AdminID: admin.ID, Username: admin.Username}, h.secret, h.sessionTTL)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return false
	}

	h.setSessionCookie(w, token)
	return true
}

func (h *AdminHandler) setSessionCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	// Cross-site frontends need SameSite=None, which browsers only
	// accept together with Secure.
	if h.secureCookies {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, cookie)
}

func (h *AdminHandler) clearSessionCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if h.secureCookies {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, cookie)
}

// handleServiceError maps admin service errors to HTTP responses.
func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		writeError(w, http.StatusBadRequest, "MISSING_CREDENTIALS", "Username and password are required")
	case errors.Is(err, service.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
	case errors.Is(err, service.ErrWrongPassword):
		writeError(w, http.StatusUnauthorized, "WRONG_PASSWORD", "Current password is incorrect")
	case errors.Is(err, service.ErrAdminNotFound):
		writeError(w, http.StatusNotFound, "ADMIN_NOT_FOUND", "Admin not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
