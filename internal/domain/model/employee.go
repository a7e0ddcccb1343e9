// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"time"
)

// QuestionCount is the fixed number of assessment questions per record.
const QuestionCount = 20

// dateLayout is the ISO calendar date format used for submission dates.
const dateLayout = "2006-01-02"

// Learning attitude values recognized by the derivation rules.
const (
	AttitudeActiveLearner = "Active Learner"
	AttitudePassive       = "Passive"
)

// Employee represents one assessment/profile record in the roster.
// Tags and LearningScore are derived fields and must never be set by
// callers directly; the record store recomputes them on every write.
type Employee struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Email               string            `json:"email"`
	Role                string            `json:"role"`
	AssessmentSubmitted bool              `json:"assessment_submitted"`
	SubmissionDate      string            `json:"submission_date,omitempty"` // ISO date, empty when absent
	Answers             map[string]string `json:"answers"`
	InterestArea        string            `json:"interest_area,omitempty"`
	LongTermGoals       string            `json:"long_term_goals,omitempty"`
	WorkCulture         string            `json:"work_culture,omitempty"`
	LearningAttitude    string            `json:"learning_attitude,omitempty"`
	Tags                []string          `json:"tags"`
	LearningScore       int               `json:"learning_score"`
}

// QuestionKeys returns the fixed answer keys q1..q20 in order.
func QuestionKeys() []string {
	keys := make([]string, QuestionCount)
	for i := range keys {
		keys[i] = fmt.Sprintf("q%d", i+1)
	}
	return keys
}

// NormalizeAnswers returns a map holding exactly the fixed question keys.
// Missing keys read as empty strings; unknown keys are dropped.
func NormalizeAnswers(in map[string]string) map[string]string {
	out := make(map[string]string, QuestionCount)
	for _, k := range QuestionKeys() {
		out[k] = in[k]
	}
	return out
}

// SubmissionTime parses the record's submission date for comparisons.
// An absent or unparseable date compares as the Unix epoch; the stored
// field is never changed.
func (e Employee) SubmissionTime() time.Time {
	if e.SubmissionDate == "" {
		return time.Unix(0, 0).UTC()
	}
	t, err := time.Parse(dateLayout, e.SubmissionDate)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t
}

// Clone returns a deep copy so callers cannot reach the store's
// answer map or tag slice.
func (e Employee) Clone() Employee {
	out := e
	if e.Answers != nil {
		out.Answers = make(map[string]string, len(e.Answers))
		for k, v := range e.Answers {
			out.Answers[k] = v
		}
	}
	if e.Tags != nil {
		out.Tags = append([]string(nil), e.Tags...)
	}
	return out
}

// InterestAreas lists the enumerated interest area values offered by
// the assessment form. The store does not enforce membership.
func InterestAreas() []string {
	return []string{"AI Enthusiast", "HR-Tech Passionate", "Exploring / Curious"}
}

// LongTermGoalValues lists the enumerated long-term goal values.
func LongTermGoalValues() []string {
	return []string{"Career-focused", "Entrepreneurial", "Technically inclined", "Unclear / Exploring"}
}

// WorkCultures lists the enumerated work culture preferences.
func WorkCultures() []string {
	return []string{"Prefers healthy culture", "Salary-driven"}
}

// LearningAttitudes lists the enumerated learning attitude values.
func LearningAttitudes() []string {
	return []string{AttitudeActiveLearner, AttitudePassive}
}
