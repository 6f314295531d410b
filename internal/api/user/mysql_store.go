package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/Techwolf78/Movie-App-Backend/internal/db"
)

// mysqlDupEntry is the MySQL error number for a unique key violation.
const mysqlDupEntry = 1062

var _ Store = (*MySQLStore)(nil)

// MySQLStore implements Store on top of the users table. Emails are
// canonicalized to lowercase on every write and lookup, so the unique index
// applies to the canonical form.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(database *sql.DB) *MySQLStore {
	return &MySQLStore{db: database}
}

const userColumns = "id, name, email, password_hash, role, created_at, updated_at"

func (s *MySQLStore) FindByEmail(ctx context.Context, email string) (*db.User, error) {
	return s.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", strings.ToLower(email))
}

func (s *MySQLStore) FindByID(ctx context.Context, id uuid.UUID) (*db.User, error) {
	return s.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id.String())
}

func (s *MySQLStore) findOne(ctx context.Context, query string, arg any) (*db.User, error) {
	var u db.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}

func (s *MySQLStore) Create(ctx context.Context, u *db.User) error {
	u.Email = strings.ToLower(u.Email)

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		u.ID.String(), u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *MySQLStore) Update(ctx context.Context, id uuid.UUID, fields Update) (*db.User, error) {
	_, err := s.db.ExecContext(ctx,
		"UPDATE users SET name = COALESCE(?, name), password_hash = COALESCE(?, password_hash) WHERE id = ?",
		fields.Name, fields.PasswordHash, id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.FindByID(ctx, id)
}
