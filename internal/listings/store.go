package listings

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"sync"
	"time"

	"imovia-backend/internal/domain"
	"imovia-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// recordKey is the storage record holding the whole collection.
const recordKey = "listings"

// Store owns the listing collection. Constructed once at startup; every
// mutation updates memory and then persists the entire collection as one
// record, so the persisted copy never trails what readers see.
type Store struct {
	mu       sync.Mutex
	storage  storage.Store
	listings []domain.Listing
}

// NewStore loads the persisted collection. An absent or corrupt record falls
// back to the built-in seed (persisted immediately) when seed is true, or to
// an empty collection otherwise; a corrupt record is cleared so the failure
// does not recur on the next load.
func NewStore(ctx context.Context, st storage.Store, seed bool) (*Store, error) {
	s := &Store{storage: st}

	raw, found, err := st.Read(ctx, recordKey)
	if err != nil {
		return nil, err
	}
	if found {
		var loaded []domain.Listing
		if err := json.Unmarshal(raw, &loaded); err == nil {
			s.listings = loaded
			return s, nil
		}
		log.Warn().Str("record", recordKey).Msg("persisted listings are corrupt, clearing and reseeding")
		if err := st.Clear(ctx, recordKey); err != nil {
			return nil, err
		}
	}

	if !seed {
		s.listings = []domain.Listing{}
		return s, nil
	}
	s.listings = seedListings()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateInput carries every listing field except the generated ID and
// CreatedAt. Images arrive as already-resolved reference strings.
type CreateInput struct {
	Title        string
	Description  string
	Type         domain.PropertyType
	Price        float64
	Area         float64
	City         string
	Neighborhood string
	Images       []string
	ContactName  string
	ContactPhone string
	ContactEmail string
	OwnerID      string
}

// Create validates the input, assigns a fresh unique id and creation instant,
// prepends the listing (newest first) and persists. The collection is left
// untouched when validation fails.
func (s *Store) Create(ctx context.Context, in CreateInput) (*domain.Listing, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	listing := domain.Listing{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Type:         in.Type,
		Price:        in.Price,
		Area:         in.Area,
		City:         in.City,
		Neighborhood: in.Neighborhood,
		Images:       in.Images,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		OwnerID:      in.OwnerID,
		CreatedAt:    time.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = append([]domain.Listing{listing}, s.listings...)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &listing, nil
}

// UpdateInput is a partial listing: nil fields are left as they are. ID,
// OwnerID and CreatedAt have no fields here at all, so callers cannot reach
// them through an update.
type UpdateInput struct {
	Title        *string
	Description  *string
	Type         *domain.PropertyType
	Price        *float64
	Area         *float64
	City         *string
	Neighborhood *string
	Images       *[]string
	ContactName  *string
	ContactPhone *string
	ContactEmail *string
}

// Update merges the provided fields over the listing with the given id and
// persists. A missing id is a no-op, not an error.
func (s *Store) Update(ctx context.Context, id string, in UpdateInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID != id {
			continue
		}
		l := &s.listings[i]
		if in.Title != nil {
			l.Title = *in.Title
		}
		if in.Description != nil {
			l.Description = *in.Description
		}
		if in.Type != nil {
			l.Type = *in.Type
		}
		if in.Price != nil {
			l.Price = *in.Price
		}
		if in.Area != nil {
			l.Area = *in.Area
		}
		if in.City != nil {
			l.City = *in.City
		}
		if in.Neighborhood != nil {
			l.Neighborhood = *in.Neighborhood
		}
		if in.Images != nil {
			l.Images = *in.Images
		}
		if in.ContactName != nil {
			l.ContactName = *in.ContactName
		}
		if in.ContactPhone != nil {
			l.ContactPhone = *in.ContactPhone
		}
		if in.ContactEmail != nil {
			l.ContactEmail = *in.ContactEmail
		}
		return s.persist(ctx)
	}
	return nil
}

// Delete removes the listing with the given id and persists. A missing id is
// a no-op, so deleting twice equals deleting once.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// GetByID returns the listing with the given id, or false when absent.
func (s *Store) GetByID(id string) (domain.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.listings {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Listing{}, false
}

// All returns a copy of the collection in its current order.
func (s *Store) All() []domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// ByOwner returns the owner's listings in collection order.
func (s *Store) ByOwner(ownerID string) []domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Listing, 0)
	for _, l := range s.listings {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out
}

// persist writes the whole collection as one record. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.listings)
	if err != nil {
		return err
	}
	return s.storage.Write(ctx, recordKey, raw)
}

func validateCreate(in CreateInput) error {
	text := []struct {
		field, value string
	}{
		{"title", in.Title},
		{"description", in.Description},
		{"city", in.City},
		{"neighborhood", in.Neighborhood},
		{"contactName", in.ContactName},
		{"contactPhone", in.ContactPhone},
		{"contactEmail", in.ContactEmail},
		{"ownerId", in.OwnerID},
	}
	for _, f := range text {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field, Reason: "must not be empty"}
		}
	}
	if !in.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be House, Apartment or Land"}
	}
	if math.IsNaN(in.Price) || in.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must be a non-negative number"}
	}
	if math.IsNaN(in.Area) || in.Area < 0 {
		return &ValidationError{Field: "area", Reason: "must be a non-negative number"}
	}
	return nil
}
