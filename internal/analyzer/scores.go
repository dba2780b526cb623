package analyzer

import (
	"math"

	"github.com/WillyEverGreen/gigbridge/internal/catalog"
	"github.com/WillyEverGreen/gigbridge/internal/types"
)

// Category weights for technical depth (per matched skill in the bucket).
const (
	depthWeightLanguage  = 50
	depthWeightFramework = 40
	depthWeightCloud     = 60
	depthWeightDataAI    = 70
	depthWeightDatabase  = 30

	maxTechnicalDepth    = 1000
	maxProfessionalLevel = 1000
)

// computeTechnicalDepth derives a 0-1000 depth score from the weighted sum of
// extracted skills per category bucket. Design/misc skills carry no depth weight.
func computeTechnicalDepth(skills []string) int {
	counts := categoryCounts(skills)

	depth := counts[catalog.CategoryLanguage]*depthWeightLanguage +
		counts[catalog.CategoryFramework]*depthWeightFramework +
		counts[catalog.CategoryCloud]*depthWeightCloud +
		counts[catalog.CategoryDataAI]*depthWeightDataAI +
		counts[catalog.CategoryDatabase]*depthWeightDatabase

	if depth > maxTechnicalDepth {
		depth = maxTechnicalDepth
	}
	return depth
}

// computeProfessionalLevel derives a 0-1000 seniority score from experience
// entries and the full text.
func computeProfessionalLevel(text string, experience []string) int {
	level := 0

	// Senior title anywhere in an experience entry
	for _, entry := range experience {
		if containsAny(entry, catalog.SeniorityTerms()) {
			level += 300
			break
		}
	}

	// Tenure mentions: 100 per "N years" or year-range match, capped at 500
	tenure := countTenureMentions(text) * 100
	if tenure > 500 {
		tenure = 500
	}
	level += tenure

	// Education tier bonus, highest tier wins
	switch {
	case containsAny(text, catalog.PhDTerms()):
		level += 400
	case containsAny(text, catalog.MasterTerms()):
		level += 300
	case containsAny(text, catalog.BachelorTerms()):
		level += 200
	}

	// Prestigious employer named in an experience entry
	for _, entry := range experience {
		if containsAny(entry, catalog.PrestigiousCompanies()) {
			level += 200
			break
		}
	}

	// Leadership verbs anywhere in the text
	if containsAny(text, catalog.LeadershipVerbs()) {
		level += 150
	}

	if level > maxProfessionalLevel {
		level = maxProfessionalLevel
	}
	return level
}

// skillCountBonus is the tiered bonus by extracted skill count.
func skillCountBonus(count int) int {
	switch {
	case count >= 20:
		return 800
	case count >= 15:
		return 600
	case count >= 10:
		return 400
	case count >= 6:
		return 250
	case count >= 3:
		return 100
	default:
		return 0
	}
}

// computeSkillRating derives the skill component rating, clamped [100, 3000].
func computeSkillRating(skills []string, technicalDepth, keywordMatches int) int {
	rating := types.MinResumeRating

	rating += skillCountBonus(len(skills))
	rating += min(500, technicalDepth/2)
	rating += min(300, keywordMatches*10)
	rating += min(400, 50*countHighValueSkills(skills))

	// Breadth bonus: 40 per category bucket with at least one extracted skill,
	// design/misc excluded from the five depth buckets
	buckets := 0
	counts := categoryCounts(skills)
	for _, cat := range []catalog.Category{
		catalog.CategoryLanguage, catalog.CategoryFramework,
		catalog.CategoryCloud, catalog.CategoryDataAI, catalog.CategoryDatabase,
	} {
		if counts[cat] > 0 {
			buckets++
		}
	}
	rating += min(200, 40*buckets)

	return types.ClampRating(rating)
}

// experienceCountBonus is the tiered bonus by experience-entry count.
func experienceCountBonus(count int) int {
	switch {
	case count >= 8:
		return 600
	case count >= 6:
		return 450
	case count >= 4:
		return 300
	case count >= 2:
		return 200
	case count >= 1:
		return 100
	default:
		return 0
	}
}

// computeExperienceRating derives the experience component rating, clamped [100, 3000].
func computeExperienceRating(text string, experience []string, professionalLevel int) int {
	rating := types.MinResumeRating

	rating += experienceCountBonus(len(experience))
	rating += min(800, int(float64(professionalLevel)*0.8))
	rating += min(400, 200*countPresent(text, catalog.PrestigiousCompanies()))
	rating += min(300, 150*countLeadershipTitles(experience))

	if containsAny(text, catalog.InternshipTerms()) {
		rating += 200
	}
	if containsAny(text, catalog.FreelanceTerms()) {
		rating += 150
	}

	return types.ClampRating(rating)
}

// countLeadershipTitles counts experience entries naming a leadership title.
func countLeadershipTitles(experience []string) int {
	n := 0
	for _, entry := range experience {
		if containsAny(entry, catalog.LeadershipTitles()) {
			n++
		}
	}
	return n
}

// educationCountBonus is the tiered bonus by education-entry count.
func educationCountBonus(count int) int {
	switch {
	case count >= 3:
		return 500
	case count >= 2:
		return 350
	case count >= 1:
		return 200
	default:
		return 0
	}
}

// computeEducationRating derives the education component rating, clamped [100, 3000].
func computeEducationRating(text string, education []string) int {
	rating := types.MinResumeRating

	rating += educationCountBonus(len(education))
	rating += min(800, 400*countPresent(text, catalog.EliteUniversities()))

	// Degree tier bonus, mutually exclusive by order of check
	if containsAny(text, catalog.PhDTerms()) {
		rating += 600
	} else if containsAny(text, catalog.MasterTerms()) {
		rating += 400
	}

	rating += min(400, 200*countPresent(text, catalog.TechnicalFields()))

	if hasGPA(text) {
		rating += 200
	}

	rating += min(300, 50*countPresent(text, catalog.AcademicAchievementTerms()))

	return types.ClampRating(rating)
}

// computeOverallRating is the rounded mean of the three component ratings,
// reclamped after rounding.
func computeOverallRating(skillRating, experienceRating, educationRating int) int {
	mean := float64(skillRating+experienceRating+educationRating) / 3.0
	return types.ClampRating(int(math.Round(mean)))
}
