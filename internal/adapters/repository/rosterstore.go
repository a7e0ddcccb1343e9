package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	persistence "github.com/okian/talentpulse/internal/adapters/persistence"
	derive "github.com/okian/talentpulse/internal/domain/derive"
	model "github.com/okian/talentpulse/internal/domain/model"
	"github.com/okian/talentpulse/pkg/logger"
	"github.com/okian/talentpulse/pkg/metrics"
)

// defaultSnapshotKey is the KV key the collection lives under.
const defaultSnapshotKey = "employees"

// RosterStore is the in-memory Store implementation. Records are kept
// most recently added first. Ids are UUID v4 strings, minted once and
// never reused.
type RosterStore struct {
	mu      sync.RWMutex
	records []model.Employee

	kv    persistence.KV
	key   string
	log   logger.Logger
	newID func() string
}

// NewRosterStore creates a store with the given options.
func NewRosterStore(opts ...Option) *RosterStore {
	s := &RosterStore{
		key:   defaultSnapshotKey,
		log:   logger.Noop(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted snapshot into the collection. An absent or
// malformed payload leaves the store empty; it is never an error.
// Loaded records are normalized and re-derived so the derived-field
// invariant cannot drift across sessions.
func (s *RosterStore) Load(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}

	data, err := s.kv.Load(ctx, s.key, []byte("[]"))
	if err != nil {
		metrics.RecordSnapshotError()
		return fmt.Errorf("load snapshot: %w", err)
	}

	var records []model.Employee
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn(ctx, "malformed roster snapshot, starting empty",
			logger.String("key", s.key),
			logger.Error(err),
		)
		records = nil
	}

	for i := range records {
		records[i].Answers = model.NormalizeAnswers(records[i].Answers)
		derive.Apply(&records[i])
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	metrics.RecordSnapshotLoad()
	metrics.UpdateRosterSize(len(records))
	s.log.Info(ctx, "roster snapshot loaded",
		logger.String("key", s.key),
		logger.Int("records", len(records)),
	)
	return nil
}

// Create implements Store.
func (s *RosterStore) Create(ctx context.Context, d Draft) (model.Employee, error) {
	if err := validate(d); err != nil {
		metrics.RecordValidationError()
		return model.Employee{}, err
	}

	e := model.Employee{
		ID:                  s.newID(),
		Name:                d.Name,
		Email:               d.Email,
		Role:                d.Role,
		AssessmentSubmitted: d.AssessmentSubmitted,
		SubmissionDate:      d.SubmissionDate,
		Answers:             model.NormalizeAnswers(d.Answers),
		InterestArea:        d.InterestArea,
		LongTermGoals:       d.LongTermGoals,
		WorkCulture:         d.WorkCulture,
		LearningAttitude:    d.LearningAttitude,
	}
	derive.Apply(&e)

	s.mu.Lock()
	s.records = append([]model.Employee{e}, s.records...)
	size := len(s.records)
	s.mu.Unlock()

	metrics.RecordCreate()
	metrics.UpdateRosterSize(size)
	s.persist(ctx)
	return e.Clone(), nil
}

// Update implements Store.
func (s *RosterStore) Update(ctx context.Context, id string, p Patch) (model.Employee, error) {
	s.mu.Lock()
	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Employee{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	e := s.records[idx].Clone()
	merge(&e, p)
	derive.Apply(&e)
	s.records[idx] = e
	s.mu.Unlock()

	metrics.RecordUpdate()
	s.persist(ctx)
	return e.Clone(), nil
}

// Delete implements Store.
func (s *RosterStore) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	idx := s.index(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	size := len(s.records)
	s.mu.Unlock()

	metrics.RecordDelete()
	metrics.UpdateRosterSize(size)
	s.persist(ctx)
	return true
}

// Get implements Store.
func (s *RosterStore) Get(_ context.Context, id string) (model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.index(id)
	if idx < 0 {
		return model.Employee{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.records[idx].Clone(), nil
}

// List implements Store.
func (s *RosterStore) List(_ context.Context) []model.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Employee, len(s.records))
	for i, e := range s.records {
		out[i] = e.Clone()
	}
	return out
}

// Count implements Store.
func (s *RosterStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// index returns the position of id, or -1. Caller holds the lock.
func (s *RosterStore) index(id string) int {
	for i, e := range s.records {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the full collection snapshot. A failure is logged
// and counted; the in-memory collection stays authoritative.
func (s *RosterStore) persist(ctx context.Context) {
	if s.kv == nil {
		return
	}

	s.mu.RLock()
	data, err := json.Marshal(s.records)
	s.mu.RUnlock()
	if err != nil {
		metrics.RecordSnapshotError()
		s.log.Error(ctx, "marshal roster snapshot failed", logger.Error(err))
		return
	}

	start := time.Now()
	if err := s.kv.Save(ctx, s.key, data); err != nil {
		metrics.RecordSnapshotError()
		s.log.Warn(ctx, "persist roster snapshot failed",
			logger.String("key", s.key),
			logger.Error(err),
		)
		return
	}
	metrics.ObserveSnapshotSave(time.Since(start))
}

// validate rejects drafts whose required text fields are empty after
// trimming. Nothing is mutated on rejection.
func validate(d Draft) error {
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"email", d.Email},
		{"role", d.Role},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

// merge applies the patch over the record. Derived fields are left to
// the caller to recompute.
func merge(e *model.Employee, p Patch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.AssessmentSubmitted != nil {
		e.AssessmentSubmitted = *p.AssessmentSubmitted
	}
	if p.SubmissionDate != nil {
		e.SubmissionDate = *p.SubmissionDate
	}
	if p.Answers != nil {
		e.Answers = model.NormalizeAnswers(p.Answers)
	}
	if p.InterestArea != nil {
		e.InterestArea = *p.InterestArea
	}
	if p.LongTermGoals != nil {
		e.LongTermGoals = *p.LongTermGoals
	}
	if p.WorkCulture != nil {
		e.WorkCulture = *p.WorkCulture
	}
	if p.LearningAttitude != nil {
		e.LearningAttitude = *p.LearningAttitude
	}
}
