package analyzer

import (
	"fmt"
	"strings"

	"github.com/WillyEverGreen/gigbridge/internal/catalog"
	"github.com/WillyEverGreen/gigbridge/internal/types"
)

// maxSuggestions caps the suggestions list.
const maxSuggestions = 5

// buildSuggestions evaluates improvement rules in declaration order, capped at
// maxSuggestions entries.
func buildSuggestions(a *types.ResumeAnalysis) []string {
	suggestions := make([]string, 0, maxSuggestions)
	add := func(s string) {
		if len(suggestions) < maxSuggestions {
			suggestions = append(suggestions, s)
		}
	}

	if len(a.Skills) < 5 {
		add("Add more technical skills relevant to your target roles")
	}
	if len(a.Experience) == 0 {
		add("Include work experience entries with role titles and dates")
	}
	if len(a.Education) == 0 {
		add("Add your education background with institution and graduation year")
	}
	if a.KeywordMatches < 10 {
		add("Use more industry keywords to describe your work")
	}
	if a.TechnicalDepth < 200 {
		add("Highlight depth in your core technologies, not just breadth")
	}
	if a.ProfessionalLevel < 300 {
		add("Quantify seniority: years of experience, team size, leadership")
	}

	return suggestions
}

// buildStrengths evaluates strength rules in declaration order.
func buildStrengths(a *types.ResumeAnalysis) []string {
	strengths := make([]string, 0)

	if len(a.Skills) >= 10 {
		strengths = append(strengths, "Broad technical skill set")
	}
	if a.TechnicalDepth >= 500 {
		strengths = append(strengths, "Strong technical depth")
	}
	if a.ProfessionalLevel >= 500 {
		strengths = append(strengths, "Senior professional profile")
	}
	if countPresent(a.ExtractedText, catalog.PrestigiousCompanies()) > 0 {
		strengths = append(strengths, "Experience at well-known technology companies")
	}
	if countPresent(a.ExtractedText, catalog.EliteUniversities()) > 0 {
		strengths = append(strengths, "Strong academic pedigree")
	}

	return strengths
}

// buildWeaknesses evaluates weakness rules in declaration order.
func buildWeaknesses(a *types.ResumeAnalysis) []string {
	weaknesses := make([]string, 0)

	if len(a.Skills) < 3 {
		weaknesses = append(weaknesses, "Limited technical skills listed")
	}
	if len(a.Experience) == 0 {
		weaknesses = append(weaknesses, "No dated work experience found")
	}
	if len(a.Education) == 0 {
		weaknesses = append(weaknesses, "No education history found")
	}
	if a.KeywordMatches < 5 {
		weaknesses = append(weaknesses, "Low industry keyword density")
	}

	return weaknesses
}

// buildIndustryFit maps skill-category presence to industry labels, in fixed
// rule order.
func buildIndustryFit(skills []string) []string {
	counts := categoryCounts(skills)
	fit := make([]string, 0)

	if counts[catalog.CategoryDataAI] > 0 {
		fit = append(fit, "Machine Learning & AI")
	}
	if counts[catalog.CategoryLanguage] > 0 && counts[catalog.CategoryFramework] > 0 {
		fit = append(fit, "Software Development")
	}
	if counts[catalog.CategoryCloud] > 0 {
		fit = append(fit, "Cloud & DevOps")
	}
	if counts[catalog.CategoryDatabase] > 0 {
		fit = append(fit, "Data Engineering")
	}
	if counts[catalog.CategoryDesign] > 0 {
		fit = append(fit, "Product & Design")
	}
	if len(fit) == 0 {
		fit = append(fit, "General Technology")
	}

	return fit
}

// buildSummary produces a one-line human summary of the analysis.
func buildSummary(a *types.ResumeAnalysis) string {
	level := "entry-level"
	switch {
	case a.ProfessionalLevel >= 700:
		level = "senior"
	case a.ProfessionalLevel >= 400:
		level = "mid-level"
	}

	topSkills := a.Skills
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}
	skillPart := "no recognized skills"
	if len(topSkills) > 0 {
		skillPart = strings.Join(topSkills, ", ")
	}

	return fmt.Sprintf("%s profile with %d recognized skills (%s), overall rating %d",
		level, len(a.Skills), skillPart, a.OverallRating)
}

// computeConfidence derives a deterministic confidence value in [0.85, 0.95)
// from signal density. More keyword matches mean higher extraction confidence.
func computeConfidence(keywordMatches int) float64 {
	confidence := 0.85 + float64(keywordMatches)*0.002
	if confidence >= 0.95 {
		confidence = 0.949
	}
	return confidence
}
