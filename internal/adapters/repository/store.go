// Package repository defines the record store interface and errors.
// The store exclusively owns the roster collection: every mutation
// re-runs derivation before the result is visible, and the full
// collection is persisted to the KV collaborator after each change.
package repository

import (
	"context"

	model "github.com/okian/talentpulse/internal/domain/model"
)

// Draft holds the caller-supplied fields for a new record. Derived
// fields are not accepted; the store computes them.
type Draft struct {
	Name                string
	Email               string
	Role                string
	AssessmentSubmitted bool
	SubmissionDate      string
	Answers             map[string]string
	InterestArea        string
	LongTermGoals       string
	WorkCulture         string
	LearningAttitude    string
}

// Patch is a partial update merged over an existing record. A nil
// field keeps the current value; pointing at an empty string clears
// an optional field. A non-nil Answers map replaces the answer set.
type Patch struct {
	Name                *string
	Email               *string
	Role                *string
	AssessmentSubmitted *bool
	SubmissionDate      *string
	Answers             map[string]string
	InterestArea        *string
	LongTermGoals       *string
	WorkCulture         *string
	LearningAttitude    *string
}

// Store provides read/write access to the roster collection.
type Store interface {
	// Create validates required fields, mints an id, derives tags and
	// score, and prepends the record (most recently added first).
	Create(ctx context.Context, d Draft) (model.Employee, error)

	// Update merges the patch over the existing record and re-derives.
	// Returns ErrNotFound for an unknown id, leaving the collection
	// unchanged.
	Update(ctx context.Context, id string, p Patch) (model.Employee, error)

	// Delete removes the record if present and reports whether it did.
	// An absent id is a no-op, not an error.
	Delete(ctx context.Context, id string) bool

	// Get returns a copy of the record or ErrNotFound.
	Get(ctx context.Context, id string) (model.Employee, error)

	// List returns a deep-copied snapshot in collection order.
	List(ctx context.Context) []model.Employee

	// Count returns the number of records in the collection.
	Count(ctx context.Context) int
}
