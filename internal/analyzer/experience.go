package analyzer

import "regexp"

// Caps on extracted entry lists.
const (
	maxExperienceEntries = 5
	maxEducationEntries  = 3
)

// Experience pattern families. All matches from all three are concatenated
// in family order, then truncated to maxExperienceEntries.
var (
	// (a) role title followed by a year within the same clause
	roleYearPattern = regexp.MustCompile(
		`(?i)(software engineer|web developer|developer|designer|analyst|consultant|engineer|manager|intern)[^.\n]{0,40}\b(19|20)\d{2}\b`)

	// (b) domain-qualified role nouns
	domainRolePattern = regexp.MustCompile(
		`(?i)\b(frontend|front-end|backend|back-end|full[ -]?stack|mobile|web|data|devops|cloud|machine learning|qa)[ -](developer|engineer|architect|scientist|designer|analyst)\b`)

	// (c) big-tech employer followed by a year
	employerYearPattern = regexp.MustCompile(
		`(?i)\b(google|microsoft|amazon|apple|meta|facebook|netflix|tesla|uber|airbnb|stripe|linkedin)\b[^.\n]{0,40}\b(19|20)\d{2}\b`)
)

// extractExperience pulls raw experience substrings from the text using the
// three pattern families, capped at maxExperienceEntries.
func extractExperience(text string) []string {
	entries := make([]string, 0, maxExperienceEntries)

	for _, pattern := range []*regexp.Regexp{roleYearPattern, domainRolePattern, employerYearPattern} {
		for _, match := range pattern.FindAllString(text, -1) {
			entries = append(entries, match)
			if len(entries) >= maxExperienceEntries {
				return entries
			}
		}
	}

	return entries
}

// Education pattern families: institution-type + year, degree-type + field,
// and the fixed elite-university list. Concatenated and truncated to
// maxEducationEntries.
var (
	institutionYearPattern = regexp.MustCompile(
		`(?i)\b(university|college|institute|academy|polytechnic)\b[^.\n]{0,60}\b(19|20)\d{2}\b`)

	degreeFieldPattern = regexp.MustCompile(
		`(?i)\b(bachelor|master|phd|ph\.d|doctorate|b\.?s\.?c?|m\.?s\.?c?|b\.?tech|m\.?tech|mba)\b[^.\n]{0,10}\b(of|in)\s+[a-z][a-z ]{2,40}`)

	elitePattern = regexp.MustCompile(
		`(?i)\b(mit|stanford|harvard|berkeley|carnegie mellon|caltech|princeton|yale|oxford|cambridge)\b`)
)

// extractEducation pulls raw education substrings from the text, capped at
// maxEducationEntries.
func extractEducation(text string) []string {
	entries := make([]string, 0, maxEducationEntries)

	for _, pattern := range []*regexp.Regexp{institutionYearPattern, degreeFieldPattern, elitePattern} {
		for _, match := range pattern.FindAllString(text, -1) {
			entries = append(entries, match)
			if len(entries) >= maxEducationEntries {
				return entries
			}
		}
	}

	return entries
}

// Tenure patterns used for professional-level scoring: "N years" mentions and
// explicit year ranges.
var (
	yearsPattern     = regexp.MustCompile(`(?i)\b\d+\+?\s*years?\b`)
	yearRangePattern = regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*[-–]\s*((19|20)\d{2}|present)\b`)
)

// countTenureMentions counts "N years" and year-range pattern matches.
func countTenureMentions(text string) int {
	return len(yearsPattern.FindAllString(text, -1)) +
		len(yearRangePattern.FindAllString(text, -1))
}

// gpaPattern matches GPA mentions like "GPA: 3.8" or "3.8/4.0".
var gpaPattern = regexp.MustCompile(`(?i)\bgpa[:\s]*[0-4](\.\d{1,2})?\b|\b[0-4]\.\d{1,2}\s*/\s*4(\.0)?\b`)

// hasGPA reports whether the text contains a GPA mention.
func hasGPA(text string) bool {
	return gpaPattern.MatchString(text)
}
