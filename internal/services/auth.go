// Package services contains the application services of BirthdayBook.
// This file defines the auth service: local registration, login, session
// restore at startup, and logout.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/birthdaybook/internal/auth"
	"github.com/dmitrijs2005/birthdaybook/internal/common"
	"github.com/dmitrijs2005/birthdaybook/internal/events"
	"github.com/dmitrijs2005/birthdaybook/internal/models"
	"github.com/dmitrijs2005/birthdaybook/internal/repositories/kv"
)

const (
	usersKey   = "users"
	sessionKey = "session"
)

// AuthService is the session provider: it owns the user accounts and tells
// the rest of the application who is currently logged in.
//
// Contract:
//   - Register: create an account (unique email), then log it in.
//   - Login: verify credentials, persist a session token, publish the change.
//   - RestoreSession: resume the persisted session at startup, if any.
//   - Logout: drop the session token and publish an empty identifier.
//
// Every session change is published on events.TopicSessionChanged so the
// store can reload its collections.
type AuthService interface {
	Register(ctx context.Context, name, email string, password []byte) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	RestoreSession(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	repo          kv.Repository
	bus           evbus.Bus
	secretKey     []byte
	tokenValidity time.Duration
}

// NewAuthService constructs an AuthService over the given repository.
// secretKey signs the session tokens; tokenValidity bounds how long a
// restored session stays valid without a fresh login.
func NewAuthService(repo kv.Repository, bus evbus.Bus, secretKey []byte, tokenValidity time.Duration) AuthService {
	return &authService{repo: repo, bus: bus, secretKey: secretKey, tokenValidity: tokenValidity}
}

// Register creates a new account. The password is stored only as a bcrypt
// hash; the core never reads it. Duplicate emails are rejected with
// common.ErrorUserAlreadyExists. On success the new user is logged in.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	users, err := a.loadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, common.ErrorUserAlreadyExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Id:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := a.saveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}

	if err := a.openSession(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and opens a session. Wrong email or
// password both map to common.ErrorUnauthorized.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	users, err := a.loadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	for _, u := range users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), password) != nil {
			return nil, common.ErrorUnauthorized
		}
		if err := a.openSession(ctx, &u); err != nil {
			return nil, err
		}
		return &u, nil
	}

	return nil, common.ErrorUnauthorized
}

// RestoreSession resumes the session persisted by a previous run. Absent,
// expired or malformed tokens all yield common.ErrorNoSession. On success
// the session-changed event is published, which triggers the store load
// (and with it the automatic birthday scan).
func (a *authService) RestoreSession(ctx context.Context) (*models.User, error) {
	token, err := a.repo.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if token == nil {
		return nil, common.ErrorNoSession
	}

	userID, err := auth.GetUserIDFromToken(string(token), a.secretKey)
	if err != nil {
		return nil, errors.Join(common.ErrorNoSession, err)
	}

	users, err := a.loadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range users {
		if u.Id == userID {
			a.publishSession(u.Id)
			return &u, nil
		}
	}

	return nil, common.ErrorNoSession
}

// Logout removes the persisted session token and publishes an empty user
// identifier so the store discards its in-memory collections.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.repo.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	a.publishSession("")
	return nil
}

func (a *authService) openSession(ctx context.Context, user *models.User) error {
	token, err := auth.GenerateToken(user.Id, a.secretKey, a.tokenValidity)
	if err != nil {
		return fmt.Errorf("failed to generate session token: %w", err)
	}
	if err := a.repo.Set(ctx, sessionKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	a.publishSession(user.Id)
	return nil
}

func (a *authService) publishSession(userID string) {
	if a.bus != nil {
		a.bus.Publish(events.TopicSessionChanged, userID)
	}
}

func (a *authService) loadUsers(ctx context.Context) ([]models.User, error) {
	b, err := a.repo.Get(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return []models.User{}, nil
	}
	var users []models.User
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, fmt.Errorf("malformed users record: %w", err)
	}
	return users, nil
}

func (a *authService) saveUsers(ctx context.Context, users []models.User) error {
	b, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	if err := a.repo.Set(ctx, usersKey, b); err != nil {
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}
