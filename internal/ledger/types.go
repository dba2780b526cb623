// Package ledger owns the per-user rating aggregate: skill ratings, project
// counters, and the append-only rating history.
package ledger

import (
	"math"
	"strings"
	"time"
)

// Bounds and step sizes for skill ratings.
const (
	MinSkillRating = 0.0
	MaxSkillRating = 5.0

	// Per-call rating deltas
	successStep      = 0.5
	failureStep      = 0.3
	cancellationStep = 0.2

	// Rating assigned when a successful project introduces a new skill
	newSkillSuccessRating = 1.0
)

// History entry reason codes. Cancellations reuse ReasonProjectFailed
// deliberately: stored history shape predates a dedicated cancellation code
// and consumers key off this value.
const (
	ReasonProjectCompleted = "project_completed"
	ReasonProjectFailed    = "project_failed"
	ReasonSkillImprovement = "skill_improvement"
	ReasonResumeUpload     = "resume_upload"
)

// SkillRating is one skill's rating state within a user's ledger. Skill
// identity is case-insensitive: two entries never coexist differing only by
// case.
type SkillRating struct {
	Skill             string    `json:"skill"`
	Rating            float64   `json:"rating"`
	ProjectsCompleted int       `json:"projects_completed"`
	ProjectsFailed    int       `json:"projects_failed"`
	LastUpdated       time.Time `json:"last_updated"`
}

// RatingHistoryEntry is one append-only audit record of a ledger mutation.
type RatingHistoryEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Change      float64   `json:"change"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// UserRatingData is the aggregate root: one record per user, persisted whole.
// Skills preserve insertion order, which is the tie-break order for top-skill
// queries. OverallRating is derived: recomputed by every mutation as the
// mean of skill ratings rounded to one decimal, 0 when no skills exist.
type UserRatingData struct {
	UserID                 string               `json:"user_id"`
	OverallRating          float64              `json:"overall_rating"`
	Skills                 []SkillRating        `json:"skills"`
	RatingHistory          []RatingHistoryEntry `json:"rating_history"`
	TotalProjectsCompleted int                  `json:"total_projects_completed"`
	TotalProjectsFailed    int                  `json:"total_projects_failed"`
	LastUpdated            time.Time            `json:"last_updated"`
}

// newUserRatingData returns the zero-state record for a user.
func newUserRatingData(userID string) *UserRatingData {
	return &UserRatingData{
		UserID:        userID,
		Skills:        []SkillRating{},
		RatingHistory: []RatingHistoryEntry{},
	}
}

// findSkill returns the index of a skill by case-insensitive name, or -1.
func (u *UserRatingData) findSkill(skill string) int {
	for i := range u.Skills {
		if strings.EqualFold(u.Skills[i].Skill, skill) {
			return i
		}
	}
	return -1
}

// recomputeOverallRating recalculates the derived overall rating: the mean of
// all skill ratings rounded to one decimal, or 0 when the skill set is empty.
func (u *UserRatingData) recomputeOverallRating() {
	if len(u.Skills) == 0 {
		u.OverallRating = 0
		return
	}
	sum := 0.0
	for i := range u.Skills {
		sum += u.Skills[i].Rating
	}
	u.OverallRating = round1(sum / float64(len(u.Skills)))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
