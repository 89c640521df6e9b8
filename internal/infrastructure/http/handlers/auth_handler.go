package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/timecard-app/timecard/internal/application/auth"
	"github.com/timecard-app/timecard/internal/domain"
	"github.com/timecard-app/timecard/internal/infrastructure/http/middleware"
)

var payloadValidator = validator.New()

// AuthHandler serves the login stub and session routes. Login is not real
// authentication: it switches the browser to any known user by email.
type AuthHandler struct {
	login      *auth.Login
	logout     *auth.Logout
	switchRole *auth.SwitchRole
	log        zerolog.Logger
}

func NewAuthHandler(login *auth.Login, logout *auth.Logout, switchRole *auth.SwitchRole, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{login: login, logout: logout, switchRole: switchRole, log: log}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type loginResponse struct {
	UserID     string   `json:"user_id"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	ActiveRole string   `json:"active_role"`
}

// Login resolves the user by email, opens a session and sets the cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid JSON body")
		return
	}
	if err := payloadValidator.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "a valid email is required")
		return
	}
	result, err := h.login.Execute(r.Context(), req.Email)
	if err != nil {
		respondError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    result.Session.ID.String(),
		Path:     "/",
		Expires:  result.Session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.log.Info().Str("user_id", result.User.ID.String()).Msg("login")
	writeJSON(w, http.StatusOK, loginResponse{
		UserID:     result.User.ID.String(),
		Email:      result.User.Email,
		Roles:      roleStrings(result.User.Roles),
		ActiveRole: string(result.Session.ActiveRole),
	})
}

// Logout deletes the session row and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErr(w, http.StatusUnauthorized, "", "no active session")
		return
	}
	if err := h.logout.Execute(r.Context(), session.ID); err != nil {
		respondError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type switchRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// SwitchRole changes the session's active role to another role the user
// holds.
func (h *AuthHandler) SwitchRole(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErr(w, http.StatusUnauthorized, "", "no active session")
		return
	}
	var req switchRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid JSON body")
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	if err := h.switchRole.Execute(r.Context(), auth.SwitchRoleInput{SessionID: session.ID, Role: role}); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"active_role": string(role)})
}

// Me returns the current principal.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFromContext(r.Context())
	if principal == nil {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		UserID:     principal.UserID.String(),
		Email:      principal.Email,
		Roles:      roleStrings(principal.Roles),
		ActiveRole: string(principal.ActiveRole),
	})
}

func roleStrings(roles []domain.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
