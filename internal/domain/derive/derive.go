// Package derive computes a record's derived fields from its
// categorical inputs. Derivation is a pure, total function: it runs
// synchronously on every create and update, and its output replaces
// the previous tags and score entirely.
package derive

import (
	model "github.com/okian/talentpulse/internal/domain/model"
)

// SubmittedTag is appended to the tag set when an assessment has been
// submitted.
const SubmittedTag = "Submitted"

// Learning score values. Every learning attitude maps to exactly one
// of these; there is no error case.
const (
	ScoreAbsent  = 0
	ScoreActive  = 100
	ScorePassive = 40
)

// Input holds the categorical fields derivation reads. Empty strings
// mean the optional field is absent and contributes nothing.
type Input struct {
	InterestArea        string
	LongTermGoals       string
	WorkCulture         string
	LearningAttitude    string
	AssessmentSubmitted bool
}

// FromEmployee extracts the derivation input from a record.
func FromEmployee(e model.Employee) Input {
	return Input{
		InterestArea:        e.InterestArea,
		LongTermGoals:       e.LongTermGoals,
		WorkCulture:         e.WorkCulture,
		LearningAttitude:    e.LearningAttitude,
		AssessmentSubmitted: e.AssessmentSubmitted,
	}
}

// Derive maps categorical inputs to the tag sequence and learning
// score. Tags keep first-seen order with duplicates collapsed:
// interest area, long-term goals, work culture, learning attitude,
// then SubmittedTag. Idempotent by construction.
func Derive(in Input) ([]string, int) {
	tags := make([]string, 0, 5)
	seen := make(map[string]struct{}, 5)
	add := func(t string) {
		if t == "" {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}

	add(in.InterestArea)
	add(in.LongTermGoals)
	add(in.WorkCulture)
	add(in.LearningAttitude)
	if in.AssessmentSubmitted {
		add(SubmittedTag)
	}

	return tags, Score(in.LearningAttitude)
}

// Score maps a learning attitude to its score: absent is 0,
// "Active Learner" is 100, any other value is 40.
func Score(attitude string) int {
	switch attitude {
	case "":
		return ScoreAbsent
	case model.AttitudeActiveLearner:
		return ScoreActive
	default:
		return ScorePassive
	}
}

// Apply recomputes a record's derived fields in place, discarding
// whatever tags and score it carried before.
func Apply(e *model.Employee) {
	e.Tags, e.LearningScore = Derive(FromEmployee(*e))
}
