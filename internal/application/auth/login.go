// Package auth holds the login stub and session lifecycle. There is no real
// authentication: login switches the session to any known user by email.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
)

type LoginResult struct {
	Session *domain.Session
	User    *domain.User
}

type Login struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	sessionTTL time.Duration
}

func NewLogin(users ports.UserRepository, sessions ports.SessionRepository, sessionTTL time.Duration) *Login {
	return &Login{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

func (uc *Login) Execute(ctx context.Context, email string) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	now := time.Now()
	session := &domain.Session{
		ID:         domain.NewSessionID(uuid.New()),
		UserID:     user.ID,
		ActiveRole: user.DefaultActiveRole(),
		ExpiresAt:  now.Add(uc.sessionTTL),
		CreatedAt:  now,
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return &LoginResult{Session: session, User: user}, nil
}

type Logout struct {
	sessions ports.SessionRepository
}

func NewLogout(sessions ports.SessionRepository) *Logout {
	return &Logout{sessions: sessions}
}

func (uc *Logout) Execute(ctx context.Context, id domain.SessionID) error {
	return uc.sessions.Delete(ctx, id)
}
