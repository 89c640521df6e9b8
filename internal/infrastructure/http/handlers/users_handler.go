package handlers

import (
	"net/http"

	"github.com/timecard-app/timecard/internal/application/ports"
)

// UsersHandler serves the worker pick-list used by the report screens.
type UsersHandler struct {
	users ports.UserRepository
}

func NewUsersHandler(users ports.UserRepository) *UsersHandler {
	return &UsersHandler{users: users}
}

type userResponse struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// List returns every user.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{
			ID:    u.ID.String(),
			Email: u.Email,
			Roles: roleStrings(u.Roles),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
