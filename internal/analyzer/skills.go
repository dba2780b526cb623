package analyzer

import (
	"strings"

	"github.com/WillyEverGreen/gigbridge/internal/catalog"
)

// extractSkills matches the text against the reference skill catalog.
// Matching is case-insensitive substring matching; the result preserves
// catalog order (not text order) and is deduplicated.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	skills := make([]string, 0)

	for _, skill := range catalog.Skills() {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		if strings.Contains(lower, key) {
			seen[key] = true
			skills = append(skills, skill)
		}
	}

	return skills
}

// countKeywordMatches counts how many entries of the combined reference
// keyword list appear as substrings anywhere in the text. Each term counts at
// most once regardless of repeat occurrences.
func countKeywordMatches(text string) int {
	lower := strings.ToLower(text)
	matches := 0
	for _, term := range catalog.KeywordTerms() {
		if strings.Contains(lower, strings.ToLower(term)) {
			matches++
		}
	}
	return matches
}

// categoryCounts buckets extracted skills by category.
func categoryCounts(skills []string) map[catalog.Category]int {
	counts := make(map[catalog.Category]int)
	for _, skill := range skills {
		if cat, ok := catalog.CategoryOf(skill); ok {
			counts[cat]++
		}
	}
	return counts
}

// countHighValueSkills counts extracted skills in the high-value subset.
func countHighValueSkills(skills []string) int {
	n := 0
	for _, skill := range skills {
		if catalog.IsHighValue(skill) {
			n++
		}
	}
	return n
}

// containsAny reports whether any of the terms appears in the text,
// case-insensitively.
func containsAny(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// countPresent counts how many of the terms appear in the text,
// case-insensitively, each at most once.
func countPresent(text string, terms []string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			n++
		}
	}
	return n
}
