package auth

import (
	"context"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
)

type SwitchRoleInput struct {
	SessionID domain.SessionID
	Role      domain.Role
}

// SwitchRole changes which of the user's roles drives navigation for the
// rest of the session.
type SwitchRole struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
}

func NewSwitchRole(sessions ports.SessionRepository, users ports.UserRepository) *SwitchRole {
	return &SwitchRole{sessions: sessions, users: users}
}

func (uc *SwitchRole) Execute(ctx context.Context, input SwitchRoleInput) error {
	session, err := uc.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return domerrors.ErrSessionNotFound
	}
	user, err := uc.users.GetByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domerrors.ErrUserNotFound
	}
	if !user.HasRole(input.Role) {
		return domerrors.ErrRoleNotHeld
	}
	return uc.sessions.UpdateActiveRole(ctx, input.SessionID, input.Role)
}
