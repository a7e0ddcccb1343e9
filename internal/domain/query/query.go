// Package query turns a free-text search, a set of categorical
// filters, and a sort key into an ordered view of the roster. The
// engine is pure: it never mutates its input and is safe to call on
// every render.
package query

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	model "github.com/okian/talentpulse/internal/domain/model"
)

// All is the sentinel filter value meaning "impose no constraint on
// this dimension". An empty string behaves the same way.
const All = "All"

// Values accepted by the submission-status filter dimension.
const (
	SubmittedYes = "Submitted"
	SubmittedNo  = "Not Submitted"
)

// SortBy selects exactly one ordering for query results.
type SortBy string

// Supported sort keys.
const (
	SortNameAsc      SortBy = "name_asc"
	SortNameDesc     SortBy = "name_desc"
	SortDateNewest   SortBy = "date_new"
	SortDateOldest   SortBy = "date_old"
	SortLearningHigh SortBy = "learning_high"
	SortLearningLow  SortBy = "learning_low"
)

// ParseSortBy validates a sort key at the boundary. The engine itself
// assumes its SortBy input came through here.
func ParseSortBy(s string) (SortBy, error) {
	switch sb := SortBy(s); sb {
	case SortNameAsc, SortNameDesc, SortDateNewest, SortDateOldest, SortLearningHigh, SortLearningLow:
		return sb, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}

// Filters holds one value per dimension. Dimensions compose by
// logical AND; All (or empty) disables a dimension; any other value
// is matched exactly and case-sensitively.
type Filters struct {
	Submitted        string // All, SubmittedYes or SubmittedNo
	Role             string
	InterestArea     string
	LongTermGoals    string
	WorkCulture      string
	LearningAttitude string
}

// Engine evaluates queries. It carries the collator used for
// locale-aware name comparison.
type Engine struct {
	coll *collate.Collator
}

// New builds an Engine with English collation unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{
		coll: collate.New(language.English),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Query narrows records by search text, then by filters, then orders
// the survivors by the sort key. The input slice is never modified;
// the result is a fresh slice. Ties preserve the relative order the
// records had before sorting.
func (e *Engine) Query(records []model.Employee, search string, f Filters, sortBy SortBy) []model.Employee {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]model.Employee, 0, len(records))
	for _, rec := range records {
		if needle != "" && !matches(rec, needle) {
			continue
		}
		if !keep(rec, f) {
			continue
		}
		out = append(out, rec)
	}

	e.order(out, sortBy)
	return out
}

// matches reports whether the lower-cased needle occurs in the
// record's name, email, any answer value, or any tag.
func matches(rec model.Employee, needle string) bool {
	if strings.Contains(strings.ToLower(rec.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Email), needle) {
		return true
	}
	for _, a := range rec.Answers {
		if strings.Contains(strings.ToLower(a), needle) {
			return true
		}
	}
	for _, t := range rec.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

func active(v string) bool {
	return v != "" && v != All
}

// keep applies every active filter dimension; all must pass.
func keep(rec model.Employee, f Filters) bool {
	if active(f.Submitted) && rec.AssessmentSubmitted != (f.Submitted == SubmittedYes) {
		return false
	}
	if active(f.Role) && rec.Role != f.Role {
		return false
	}
	if active(f.InterestArea) && rec.InterestArea != f.InterestArea {
		return false
	}
	if active(f.LongTermGoals) && rec.LongTermGoals != f.LongTermGoals {
		return false
	}
	if active(f.WorkCulture) && rec.WorkCulture != f.WorkCulture {
		return false
	}
	if active(f.LearningAttitude) && rec.LearningAttitude != f.LearningAttitude {
		return false
	}
	return true
}

// order sorts in place with a stable sort. An unknown key leaves the
// order untouched; ParseSortBy rejects those before they get here.
func (e *Engine) order(recs []model.Employee, sortBy SortBy) {
	var less func(a, b model.Employee) bool
	switch sortBy {
	case SortNameAsc:
		less = func(a, b model.Employee) bool { return e.coll.CompareString(a.Name, b.Name) < 0 }
	case SortNameDesc:
		less = func(a, b model.Employee) bool { return e.coll.CompareString(b.Name, a.Name) < 0 }
	case SortDateNewest:
		less = func(a, b model.Employee) bool { return a.SubmissionTime().After(b.SubmissionTime()) }
	case SortDateOldest:
		less = func(a, b model.Employee) bool { return a.SubmissionTime().Before(b.SubmissionTime()) }
	case SortLearningHigh:
		less = func(a, b model.Employee) bool { return a.LearningScore > b.LearningScore }
	case SortLearningLow:
		less = func(a, b model.Employee) bool { return a.LearningScore < b.LearningScore }
	default:
		return
	}
	sort.SliceStable(recs, func(i, j int) bool { return less(recs[i], recs[j]) })
}
