// Package analyzer derives a structured ResumeAnalysis from extracted resume text.
//
// The analyzer is pure computation: deterministic for the same input text and
// free of side effects. It never reads or writes persistent storage.
package analyzer

import (
	"strings"
	"unicode"

	"github.com/WillyEverGreen/gigbridge/internal/types"
)

// MinReadableChars is the minimum number of non-whitespace characters required
// before analysis runs. The extraction boundary enforces the same floor; the
// analyzer guards again so it can never run on near-empty input.
const MinReadableChars = 10

// Analyze maps raw resume text to a complete ResumeAnalysis. It returns an
// InvalidInputError when the text has fewer than MinReadableChars readable
// characters. The result is complete or absent; there is no partial output.
func Analyze(text string) (*types.ResumeAnalysis, error) {
	readable := countReadableChars(text)
	if readable < MinReadableChars {
		return nil, &InvalidInputError{Length: readable}
	}

	analysis := &types.ResumeAnalysis{
		ExtractedText: text,
		Skills:        extractSkills(text),
		Experience:    extractExperience(text),
		Education:     extractEducation(text),
	}

	analysis.KeywordMatches = countKeywordMatches(text)
	analysis.TechnicalDepth = computeTechnicalDepth(analysis.Skills)
	analysis.ProfessionalLevel = computeProfessionalLevel(text, analysis.Experience)

	analysis.SkillRating = computeSkillRating(analysis.Skills, analysis.TechnicalDepth, analysis.KeywordMatches)
	analysis.ExperienceRating = computeExperienceRating(text, analysis.Experience, analysis.ProfessionalLevel)
	analysis.EducationRating = computeEducationRating(text, analysis.Education)
	analysis.OverallRating = computeOverallRating(analysis.SkillRating, analysis.ExperienceRating, analysis.EducationRating)

	analysis.Suggestions = buildSuggestions(analysis)
	analysis.Strengths = buildStrengths(analysis)
	analysis.Weaknesses = buildWeaknesses(analysis)
	analysis.IndustryFit = buildIndustryFit(analysis.Skills)

	analysis.Confidence = computeConfidence(analysis.KeywordMatches)
	analysis.Summary = buildSummary(analysis)

	return analysis, nil
}

// countReadableChars counts non-whitespace characters in the text.
func countReadableChars(text string) int {
	n := 0
	for _, r := range strings.TrimSpace(text) {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
