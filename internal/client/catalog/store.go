package catalog

import (
	"context"
	"log/slog"
	"sync"

	"catalogkeeper/internal/models"
	"catalogkeeper/internal/shared"
	"catalogkeeper/internal/validation"
	pkgapi "catalogkeeper/pkg/api"
)

// Authenticator gates every mutating operation. The session manager
// implements it.
type Authenticator interface {
	IsAuthenticated() bool
}

// API is the slice of the HTTP client the store needs
type API interface {
	ListProducts(ctx context.Context) ([]pkgapi.Product, error)
	CreateProduct(ctx context.Context, p pkgapi.Product) error
	UpdateProduct(ctx context.Context, id int64, p pkgapi.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

// Store owns the client-visible product collection. The server is the
// system of record: the collection is replaced wholesale on every
// successful fetch, and create/update reconcile by refetching rather than
// synthesizing server-assigned fields locally. Delete is the one optimistic
// mutation — its outcome is a single boolean, so local removal after a
// confirmed success is safe and saves a round trip.
//
// Operations are not serialized against each other. Two fetches may be in
// flight at once and the last response to arrive wins; a delete racing a
// fetch may be overwritten by the fetch's stale snapshot. There is no
// version token at the boundary to do better.
type Store struct {
	api             API
	auth            Authenticator
	mu              sync.Mutex
	records         []models.Product
	pendingDeleteID int64
	loading         bool
}

// NewStore creates an empty catalog store
func NewStore(api API, auth Authenticator) *Store {
	return &Store{
		api:  api,
		auth: auth,
	}
}

// FetchAll requests the full collection and replaces the local records
// with the response. The loading flag is cleared on completion regardless
// of outcome.
func (s *Store) FetchAll(ctx context.Context) error {
	if !s.auth.IsAuthenticated() {
		return shared.ErrUnauthenticated
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	wire, err := s.api.ListProducts(ctx)
	if err != nil {
		return err
	}

	records := make([]models.Product, 0, len(wire))
	for _, p := range wire {
		records = append(records, fromWire(p))
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	slog.Debug("catalog refreshed", "count", len(records))
	return nil
}

// Create validates the draft locally, submits it, and reconciles by
// refetching. Validation failures never reach the network.
func (s *Store) Create(ctx context.Context, draft models.Draft) error {
	if !s.auth.IsAuthenticated() {
		return shared.ErrUnauthenticated
	}
	if err := validation.ValidateDraft(draft); err != nil {
		return err
	}

	if err := s.api.CreateProduct(ctx, toWire(0, draft)); err != nil {
		return err
	}

	return s.FetchAll(ctx)
}

// Update validates the draft locally, submits it, and reconciles by
// refetching. A server-side rejection surfaces the server's detail.
func (s *Store) Update(ctx context.Context, id int64, draft models.Draft) error {
	if !s.auth.IsAuthenticated() {
		return shared.ErrUnauthenticated
	}
	if err := validation.ValidateDraft(draft); err != nil {
		return err
	}

	if err := s.api.UpdateProduct(ctx, id, toWire(id, draft)); err != nil {
		return err
	}

	return s.FetchAll(ctx)
}

// Delete removes a product. The record is filtered out locally only after
// the server confirms; on failure the records are left untouched. The
// pending id is exposed for the duration of the call so a UI can disable
// just the affected row.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if !s.auth.IsAuthenticated() {
		return shared.ErrUnauthenticated
	}

	s.mu.Lock()
	s.pendingDeleteID = id
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pendingDeleteID = 0
		s.mu.Unlock()
	}()

	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.records[:0:0]
	for _, r := range s.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.records = kept
	s.mu.Unlock()

	return nil
}

// Reset tears the collection down to empty. Called on logout: the catalog
// is scoped to the identity that fetched it.
func (s *Store) Reset() {
	s.mu.Lock()
	s.records = nil
	s.pendingDeleteID = 0
	s.loading = false
	s.mu.Unlock()
}

// Records returns a copy of the current collection
func (s *Store) Records() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.records))
	copy(out, s.records)
	return out
}

// IsLoading reports whether a fetch is in flight
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// PendingDeleteID returns the id of the record whose delete is in flight;
// ok is false when no delete is pending.
func (s *Store) PendingDeleteID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingDeleteID == 0 {
		return 0, false
	}
	return s.pendingDeleteID, true
}
