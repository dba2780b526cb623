// Package types provides type definitions for structured data shared across the rating system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Rating bounds for analyzer output. All four resume ratings are clamped to
// this range at construction time.
const (
	MinResumeRating = 100
	MaxResumeRating = 3000
)

// ResumeAnalysis is the structured result of analyzing extracted resume text.
// It is ephemeral: produced per upload and owned by the caller. OverallRating
// is always the rounded mean of the three component ratings at construction;
// it is never mutated independently.
type ResumeAnalysis struct {
	ExtractedText string   `json:"extracted_text"`
	Skills        []string `json:"skills"`
	Experience    []string `json:"experience"`
	Education     []string `json:"education"`

	OverallRating    int `json:"overall_rating"`
	SkillRating      int `json:"skill_rating"`
	ExperienceRating int `json:"experience_rating"`
	EducationRating  int `json:"education_rating"`

	Suggestions []string `json:"suggestions"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	IndustryFit []string `json:"industry_fit"`

	Confidence        float64 `json:"confidence"`
	KeywordMatches    int     `json:"keyword_matches"`
	TechnicalDepth    int     `json:"technical_depth"`
	ProfessionalLevel int     `json:"professional_level"`
	Summary           string  `json:"summary"`
}

// ClampRating clamps a rating value to the [MinResumeRating, MaxResumeRating] range.
func ClampRating(v int) int {
	if v < MinResumeRating {
		return MinResumeRating
	}
	if v > MaxResumeRating {
		return MaxResumeRating
	}
	return v
}
