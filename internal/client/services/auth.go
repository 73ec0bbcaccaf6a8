// Package services contains the application services behind the CLI
// screens: sign-up and login over the credential store, persisted settings
// toggles, and the mock speed detector and route finder.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/smarttraffic/internal/client/models"
	"github.com/dmitrijs2005/smarttraffic/internal/common"
	"github.com/dmitrijs2005/smarttraffic/internal/logging"
	"github.com/google/uuid"
)

// UserStore is the part of userstore.Store the auth service relies on.
type UserStore interface {
	AddUser(ctx context.Context, email, password string) error
	Authenticate(ctx context.Context, email, password string) (*models.UserRecord, error)
}

// AuthService defines account operations for the CLI.
//
//   - SignUp: validate the form and create the account.
//   - Login: check credentials and open a session.
type AuthService interface {
	SignUp(ctx context.Context, email, password, confirm string) error
	Login(ctx context.Context, email, password string) (*models.Session, error)
}

type authService struct {
	users UserStore
	log   logging.Logger
	now   func() time.Time
}

func NewAuthService(users UserStore, log logging.Logger) AuthService {
	return &authService{users: users, log: log.With("service", "auth"), now: time.Now}
}

// SignUp requires all three fields and matching passwords before storing
// the account. A taken email surfaces common.ErrDuplicateUser.
func (a *authService) SignUp(ctx context.Context, email, password, confirm string) error {
	if err := required(map[string]string{
		"email":           email,
		"password":        password,
		"confirmPassword": confirm,
	}, "email", "password", "confirmPassword"); err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}

	if err := a.users.AddUser(ctx, email, password); err != nil {
		return err
	}
	a.log.Info(ctx, "account created", "email", email)
	return nil
}

// Login returns a new session when the credentials match a stored account.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if err := required(map[string]string{"email": email, "password": password}, "email", "password"); err != nil {
		return nil, err
	}

	u, err := a.users.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.log.Warn(ctx, "login rejected", "email", email)
		}
		return nil, err
	}

	s := &models.Session{ID: uuid.New(), Email: u.Email, StartedAt: a.now()}
	a.log.Info(ctx, "login successful", "email", u.Email, "session", s.ID)
	return s, nil
}

// required reports the first empty field, in order, as "<field> is required".
func required(values map[string]string, order ...string) error {
	for _, name := range order {
		if values[name] == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, name)
		}
	}
	return nil
}
