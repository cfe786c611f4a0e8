// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and resolving identity
// tokens back to live user records.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moodblog/internal/common"
	"moodblog/internal/server/auth"
	"moodblog/internal/server/config"
	"moodblog/internal/server/models"
	"moodblog/internal/server/repositories/repomanager"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides authentication-related operations:
//   - Register: create users and immediately issue a token
//   - Login: verify credentials and issue a token
//   - Authenticate: resolve a bearer token to a live user record
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *auth.Codec
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		codec:       auth.NewCodec([]byte(cfg.SecretKey), cfg.TokenValidityDuration),
	}
}

// Register creates a new user and returns it together with a freshly issued
// token, so no separate login call is needed. An already-registered email
// yields common.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, email, password, bio, avatar string) (*models.User, string, error) {
	if email == "" {
		return nil, "", common.NewValidationError("email")
	}
	if password == "" {
		return nil, "", common.NewValidationError("password")
	}
	if avatar == "" {
		avatar = models.DefaultAvatar
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user := &models.User{Email: email, PasswordHash: string(hash), Bio: bio, Avatar: avatar}

	repo := s.repomanager.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, "", common.ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("error creating user: %v", err)
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login verifies the email/password pair and, on success, returns the user
// and a new token. A missing account and a wrong password both surface as
// common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Authenticate resolves tokenString to a live user record. Verification
// failures pass through from the codec; a verified token whose user no
// longer exists yields common.ErrUserNotFound.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	userID, err := s.codec.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
