// Package user holds the credential store: persistence of user identity
// records and the single point of truth for email uniqueness.
package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Techwolf78/Movie-App-Backend/internal/db"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
// It originates from the storage-layer unique index, so concurrent creates
// with the same email yield exactly one success.
var ErrDuplicateEmail = errors.New("email already registered")

// Update describes a partial change to a stored user. Nil fields keep their
// previous value.
type Update struct {
	Name         *string
	PasswordHash *string
}

// Store is the persistence abstraction over user records. Lookups that find
// nothing return (nil, nil), not an error.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*db.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db.User, error)
	Create(ctx context.Context, u *db.User) error
	Update(ctx context.Context, id uuid.UUID, fields Update) (*db.User, error)
}
