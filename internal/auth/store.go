package auth

import (
	"context"
	"encoding/json"
	"sync"

	"imovia-backend/internal/domain"
	"imovia-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// recordKey is the storage record holding the current session.
const recordKey = "session"

// Store owns the current authenticated identity. There is no accounts table
// and no credential check: login constructs a fresh user for whatever email
// it is given, and logging out discards the identity entirely — a later login
// with the same email yields a new id.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	current *domain.User
}

// NewStore loads a previously persisted session. Absent means start
// unauthenticated; corrupt means the same, after clearing the record.
func NewStore(ctx context.Context, st storage.Store) (*Store, error) {
	s := &Store{storage: st}

	raw, found, err := st.Read(ctx, recordKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return s, nil
	}
	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil || u.ID == "" {
		log.Warn().Str("record", recordKey).Msg("persisted session is corrupt, clearing")
		if err := st.Clear(ctx, recordKey); err != nil {
			return nil, err
		}
		return s, nil
	}
	s.current = &u
	return s, nil
}

// Login constructs a new user with a fresh id, persists it as the session and
// makes it current. It always succeeds; no validation against existing
// accounts happens because none exist.
func (s *Store) Login(ctx context.Context, email string) (domain.User, error) {
	u := domain.User{ID: uuid.NewString(), Email: email}

	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(u)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.storage.Write(ctx, recordKey, raw); err != nil {
		return domain.User{}, err
	}
	s.current = &u
	return u, nil
}

// Register behaves exactly like Login: there is no duplicate detection and no
// account record to create.
func (s *Store) Register(ctx context.Context, email string) (domain.User, error) {
	return s.Login(ctx, email)
}

// Logout clears the persisted session and the current user.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Clear(ctx, recordKey); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// CurrentUser returns a copy of the current user, or nil when unauthenticated.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// IsAuthenticated reports whether someone is logged in.
func (s *Store) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}
