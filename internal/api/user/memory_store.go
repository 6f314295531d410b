package user

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Techwolf78/Movie-App-Backend/internal/db"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store with the same uniqueness semantics as the
// MySQL implementation: Create is atomic under the store mutex, so concurrent
// creates with one email produce exactly one success. Used in tests and local
// runs without a database.
type MemoryStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]db.User
	byEmail map[string]uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[uuid.UUID]db.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	u := s.byID[id]
	return &u, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id uuid.UUID) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemoryStore) Create(_ context.Context, u *db.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, taken := s.byEmail[email]; taken {
		return ErrDuplicateEmail
	}

	u.Email = email
	s.byID[u.ID] = *u
	s.byEmail[email] = u.ID
	return nil
}

func (s *MemoryStore) Update(_ context.Context, id uuid.UUID, fields Update) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.PasswordHash != nil {
		u.PasswordHash = *fields.PasswordHash
	}
	s.byID[id] = u
	return &u, nil
}
