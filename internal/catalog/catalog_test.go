package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkills_ReturnsCopy(t *testing.T) {
	first := Skills()
	first[0] = "mutated"

	second := Skills()
	assert.NotEqual(t, "mutated", second[0])
}

func TestSkills_NoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, skill := range Skills() {
		key := strings.ToLower(skill)
		assert.False(t, seen[key], "duplicate catalog entry: %s", skill)
		seen[key] = true
	}
}

func TestSkills_EveryEntryHasCategory(t *testing.T) {
	for _, skill := range Skills() {
		_, ok := CategoryOf(skill)
		assert.True(t, ok, "catalog skill %s has no category", skill)
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		skill    string
		expected Category
		found    bool
	}{
		{"React", CategoryFramework, true},
		{"react", CategoryFramework, true},
		{"PyTorch", CategoryDataAI, true},
		{"PostgreSQL", CategoryDatabase, true},
		{"Kubernetes", CategoryCloud, true},
		{"Figma", CategoryDesign, true},
		{"COBOL", "", false},
	}

	for _, tt := range tests {
		cat, ok := CategoryOf(tt.skill)
		require.Equal(t, tt.found, ok, "skill %s", tt.skill)
		assert.Equal(t, tt.expected, cat, "skill %s", tt.skill)
	}
}

func TestIsHighValue(t *testing.T) {
	assert.True(t, IsHighValue("React"))
	assert.True(t, IsHighValue("kubernetes"))
	assert.False(t, IsHighValue("jQuery"))
	assert.False(t, IsHighValue("COBOL"))
}

func TestKeywordTerms_NonEmptyAndCopied(t *testing.T) {
	terms := KeywordTerms()
	require.NotEmpty(t, terms)

	terms[0] = "mutated"
	assert.NotEqual(t, "mutated", KeywordTerms()[0])
}
