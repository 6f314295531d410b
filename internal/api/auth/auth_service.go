package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Techwolf78/Movie-App-Backend/internal/api/user"
	"github.com/Techwolf78/Movie-App-Backend/internal/db"
	"github.com/Techwolf78/Movie-App-Backend/internal/logger"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

var (
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// a failed login never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	ErrUserNotFound       = errors.New("user not found")
)

// Service implements registration, login, password recovery and profile
// updates over the credential store.
type Service struct {
	store  user.Store
	hasher *PasswordHasher
	tokens *TokenService
	logger *logger.Logger
}

func NewService(store user.Store, hasher *PasswordHasher, tokens *TokenService, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: log,
	}
}

// Tokens exposes the token service for middleware wiring.
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Store exposes the credential store for middleware wiring.
func (s *Service) Store() user.Store {
	return s.store
}

// Register hashes the password and persists a new standard-role user. A
// duplicate email surfaces as user.ErrDuplicateEmail from the storage layer;
// there is no application-level pre-check to race against.
func (s *Service) Register(ctx context.Context, name, email, password string) (*db.User, error) {
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         db.RoleStandard,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// Login verifies the credentials and issues a bearer token for the user.
func (s *Service) Login(ctx context.Context, email, password string) (*db.User, string, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !s.hasher.Verify(ctx, password, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return u, token, nil
}

// ForgotPassword replaces the stored hash for the account with the given
// email. An unknown email is not an error: the caller gets the same generic
// outcome either way, so the endpoint cannot be used to enumerate accounts.
func (s *Service) ForgotPassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if u == nil {
		s.logger.Info("password reset requested for unknown email")
		return nil
	}

	hash, err := s.hasher.Hash(ctx, newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.store.Update(ctx, u.ID, user.Update{PasswordHash: &hash}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ProfileUpdate is a partial profile change. Empty fields keep their previous
// value.
type ProfileUpdate struct {
	Name     string
	Password string
}

// UpdateProfile merges the supplied fields into the stored record and returns
// the result. A supplied password must pass validation before anything is
// mutated.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) (*db.User, error) {
	u, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	fields := user.Update{}
	if upd.Name != "" {
		fields.Name = &upd.Name
	}
	if upd.Password != "" {
		if len(upd.Password) < MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		hash, err := s.hasher.Hash(ctx, upd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		// A password was supplied, so an empty hash is an internal fault; it
		// must never silently fall back to the previous hash.
		if hash == "" {
			return nil, errors.New("password hash is unexpectedly empty")
		}
		fields.PasswordHash = &hash
	}

	updated, err := s.store.Update(ctx, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}
