package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Techwolf78/Movie-App-Backend/internal/db"
)

const (
	selectByEmail = "SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE email = ?"
	selectByID    = "SELECT id, name, email, password_hash, role, created_at, updated_at FROM users WHERE id = ?"
	insertUser    = "INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
	updateUser    = "UPDATE users SET name = COALESCE(?, name), password_hash = COALESCE(?, password_hash) WHERE id = ?"
)

func newMockStore(t *testing.T) (*MySQLStore, sqlmock.Sqlmock) {
	t.Helper()

	database, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return NewMySQLStore(database), mock
}

func userRow(u db.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow(u.ID.String(), u.Name, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt)
}

func sampleUser() db.User {
	now := time.Now().Truncate(time.Second)
	return db.User{
		ID:           uuid.New(),
		Name:         "Ada",
		Email:        "ada@x.com",
		PasswordHash: "$2a$10$digest",
		Role:         db.RoleStandard,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestMySQLStore_FindByEmail(t *testing.T) {
	store, mock := newMockStore(t)
	want := sampleUser()

	// Lookup is against the lowercased form.
	mock.ExpectQuery(selectByEmail).WithArgs("ada@x.com").WillReturnRows(userRow(want))

	got, err := store.FindByEmail(context.Background(), "Ada@X.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Email, got.Email)
	require.Equal(t, want.Role, got.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_FindByEmailNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(selectByEmail).WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}))

	got, err := store.FindByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	require.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_FindByID(t *testing.T) {
	store, mock := newMockStore(t)
	want := sampleUser()

	mock.ExpectQuery(selectByID).WithArgs(want.ID.String()).WillReturnRows(userRow(want))

	got, err := store.FindByID(context.Background(), want.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, want.Name, got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_Create(t *testing.T) {
	store, mock := newMockStore(t)
	u := sampleUser()
	u.Email = "Ada@X.com"

	mock.ExpectExec(insertUser).
		WithArgs(u.ID.String(), u.Name, "ada@x.com", u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Create(context.Background(), &u))
	require.Equal(t, "ada@x.com", u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_CreateDuplicateEmail(t *testing.T) {
	store, mock := newMockStore(t)
	u := sampleUser()

	mock.ExpectExec(insertUser).
		WithArgs(u.ID.String(), u.Name, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ada@x.com' for key 'uq_users_email'"})

	err := store.Create(context.Background(), &u)
	require.ErrorIs(t, err, ErrDuplicateEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_Update(t *testing.T) {
	store, mock := newMockStore(t)
	want := sampleUser()
	want.Name = "Ada Lovelace"

	name := "Ada Lovelace"
	mock.ExpectExec(updateUser).
		WithArgs(name, nil, want.ID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectByID).WithArgs(want.ID.String()).WillReturnRows(userRow(want))

	got, err := store.Update(context.Background(), want.ID, Update{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Ada Lovelace", got.Name)
	require.Equal(t, want.PasswordHash, got.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}
