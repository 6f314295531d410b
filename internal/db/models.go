package db

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies a user for authorization decisions.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "administrator"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r == RoleStandard || r == RoleAdmin
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
