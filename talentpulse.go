// Package talentpulse wires the roster core behind one service
// facade: the record store with its derivation rules, the query
// engine, and the persistence, identity and export collaborators.
// A presentation layer consumes this facade; there is no network or
// CLI surface in the module itself.
package talentpulse

import (
	"context"
	"sync"
	"time"

	"golang.org/x/text/language"

	export "github.com/okian/talentpulse/internal/adapters/export"
	persistence "github.com/okian/talentpulse/internal/adapters/persistence"
	repository "github.com/okian/talentpulse/internal/adapters/repository"
	model "github.com/okian/talentpulse/internal/domain/model"
	query "github.com/okian/talentpulse/internal/domain/query"
	identity "github.com/okian/talentpulse/internal/identity"
	"github.com/okian/talentpulse/pkg/logger"
	"github.com/okian/talentpulse/pkg/metrics"
)

// Re-exported types so callers outside the module can name them.
type (
	// Employee is one roster record.
	Employee = model.Employee
	// Draft holds caller-supplied fields for a new record.
	Draft = repository.Draft
	// Patch is a partial update merged over an existing record.
	Patch = repository.Patch
	// Filters holds one value per query filter dimension.
	Filters = query.Filters
	// SortBy selects the query ordering.
	SortBy = query.SortBy
	// Viewer is the identity stored for the current session.
	Viewer = identity.Viewer
	// Role is the viewer's privilege level.
	Role = identity.Role
	// KV is the key/value persistence boundary.
	KV = persistence.KV
)

// Re-exported constants.
const (
	All          = query.All
	SubmittedYes = query.SubmittedYes
	SubmittedNo  = query.SubmittedNo

	SortNameAsc      = query.SortNameAsc
	SortNameDesc     = query.SortNameDesc
	SortDateNewest   = query.SortDateNewest
	SortDateOldest   = query.SortDateOldest
	SortLearningHigh = query.SortLearningHigh
	SortLearningLow  = query.SortLearningLow

	RoleAdmin = identity.RoleAdmin
	RoleUser  = identity.RoleUser
)

// Re-exported sentinel errors.
var (
	ErrNotFound       = repository.ErrNotFound
	ErrMissingField   = repository.ErrMissingField
	ErrUnknownSortKey = query.ErrUnknownSortKey
	ErrNoViewer       = identity.ErrNoViewer
)

// Service is the roster facade. Construct with New, then Start before
// use.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    *repository.RosterStore
	engine   *query.Engine
	exporter *export.Exporter
	session  *identity.Session

	// Configuration
	kv           persistence.KV
	rosterKey    string
	sessionKey   string
	tagSeparator string
	lang         language.Tag

	// State
	started bool

	// Logging
	log logger.Logger
}

// New constructs a Service with default configuration: an in-memory
// KV, English collation, and ";" joining exported tags.
func New(opts ...Option) *Service {
	s := &Service{
		kv:           persistence.NewMemStore(),
		rosterKey:    "employees",
		sessionKey:   "auth_user",
		tagSeparator: ";",
		lang:         language.English,
		log:          nil, // resolved in Start
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the components and loads the persisted roster. Calling
// Start twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}

	s.store = repository.NewRosterStore(
		repository.WithKV(s.kv),
		repository.WithSnapshotKey(s.rosterKey),
		repository.WithLogger(s.log.Named("store")),
	)
	s.engine = query.New(query.WithLanguage(s.lang))
	s.exporter = export.New(export.WithTagSeparator(s.tagSeparator))
	s.session = identity.NewSession(s.kv, identity.WithKey(s.sessionKey))

	if err := s.store.Load(ctx); err != nil {
		return err
	}

	s.started = true
	s.log.Info(ctx, "roster service started",
		logger.Int("records", s.store.Count(ctx)),
		logger.String("rosterKey", s.rosterKey),
	)
	return nil
}

// Stop marks the service stopped. Every mutation already persisted
// its snapshot, so there is nothing to flush.
func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.log.Info(ctx, "roster service stopped")
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// Create adds a record: required fields validated, id minted, derived
// fields computed, snapshot persisted.
func (s *Service) Create(ctx context.Context, d Draft) (Employee, error) {
	if err := s.ready(); err != nil {
		return Employee{}, err
	}
	e, err := s.store.Create(ctx, d)
	if err != nil {
		return Employee{}, err
	}
	s.log.Info(ctx, "record created",
		logger.String("id", e.ID),
		logger.Int("learningScore", e.LearningScore),
	)
	return e, nil
}

// Update merges a partial patch over an existing record and
// re-derives its tags and score.
func (s *Service) Update(ctx context.Context, id string, p Patch) (Employee, error) {
	if err := s.ready(); err != nil {
		return Employee{}, err
	}
	e, err := s.store.Update(ctx, id, p)
	if err != nil {
		return Employee{}, err
	}
	s.log.Info(ctx, "record updated", logger.String("id", id))
	return e, nil
}

// Delete removes a record; an absent id is a no-op. Reports whether a
// record was removed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	removed := s.store.Delete(ctx, id)
	if removed {
		s.log.Info(ctx, "record deleted", logger.String("id", id))
	}
	return removed, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	if err := s.ready(); err != nil {
		return Employee{}, err
	}
	return s.store.Get(ctx, id)
}

// Count returns the number of records in the roster.
func (s *Service) Count(ctx context.Context) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	return s.store.Count(ctx), nil
}

// Query evaluates search text, filters and a sort key against a
// snapshot of the roster. The sort key is validated here; an unknown
// key returns ErrUnknownSortKey.
func (s *Service) Query(ctx context.Context, search string, f Filters, sortKey string) ([]Employee, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	sortBy, err := query.ParseSortBy(sortKey)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out := s.engine.Query(s.store.List(ctx), search, f, sortBy)
	metrics.RecordQuery(time.Since(start))
	return out, nil
}

// ExportCSV runs the query and renders the ordered result as CSV.
func (s *Service) ExportCSV(ctx context.Context, search string, f Filters, sortKey string) ([]byte, error) {
	recs, err := s.Query(ctx, search, f, sortKey)
	if err != nil {
		return nil, err
	}
	out, err := s.exporter.CSV(recs)
	if err != nil {
		return nil, err
	}
	metrics.RecordExport()
	s.log.Debug(ctx, "roster exported", logger.Int("records", len(recs)))
	return out, nil
}

// Login stores the viewer as the current session.
func (s *Service) Login(ctx context.Context, v Viewer) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.session.Login(ctx, v)
}

// Logout clears the current session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.session.Logout(ctx)
}

// Viewer returns the current session's viewer, or ErrNoViewer.
func (s *Service) Viewer(ctx context.Context) (Viewer, error) {
	if err := s.ready(); err != nil {
		return Viewer{}, err
	}
	return s.session.Current(ctx)
}

// CanMutate reports whether the current viewer should be offered
// mutating operations. It gates presentation only; Create, Update and
// Delete do not check it.
func (s *Service) CanMutate(ctx context.Context) bool {
	v, err := s.Viewer(ctx)
	if err != nil {
		return false
	}
	return v.Role.CanMutate()
}
