package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience_RoleWithYear(t *testing.T) {
	entries := extractExperience("Worked as a Software Engineer from 2019 at a startup.")

	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "Software Engineer")
	assert.Contains(t, entries[0], "2019")
}

func TestExtractExperience_DomainRole(t *testing.T) {
	entries := extractExperience("Experienced backend engineer and frontend developer.")

	assert.Len(t, entries, 2)
}

func TestExtractExperience_EmployerWithYear(t *testing.T) {
	entries := extractExperience("Joined Google in 2021 after two years elsewhere.")

	require.NotEmpty(t, entries)
	assert.Contains(t, entries[0], "Google")
}

func TestExtractExperience_CapsAtFive(t *testing.T) {
	text := "Engineer 2015. Engineer 2016. Engineer 2017. Engineer 2018. " +
		"Engineer 2019. Engineer 2020. Engineer 2021."

	entries := extractExperience(text)

	assert.Len(t, entries, 5)
}

func TestExtractExperience_NoMatches(t *testing.T) {
	assert.Empty(t, extractExperience("A resume with no dated roles at all."))
}

func TestExtractEducation_InstitutionWithYear(t *testing.T) {
	entries := extractEducation("Graduated from State University in 2018 with honors.")

	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "University")
}

func TestExtractEducation_DegreeWithField(t *testing.T) {
	entries := extractEducation("Holds a Bachelor of Computer Science degree.")

	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "Bachelor")
}

func TestExtractEducation_CapsAtThree(t *testing.T) {
	text := "University of A 2010. College of B 2012. Institute of C 2014. Academy of D 2016."

	entries := extractEducation(text)

	assert.Len(t, entries, 3)
}

func TestCountTenureMentions(t *testing.T) {
	assert.Equal(t, 0, countTenureMentions("no tenure here"))
	assert.Equal(t, 1, countTenureMentions("5 years of backend work"))
	assert.Equal(t, 2, countTenureMentions("3+ years at one job, 2018-2021 at another"))
	assert.Equal(t, 1, countTenureMentions("2019 - present"))
}

func TestHasGPA(t *testing.T) {
	assert.True(t, hasGPA("GPA: 3.8"))
	assert.True(t, hasGPA("gpa 4.0"))
	assert.True(t, hasGPA("graduated with 3.75/4.0"))
	assert.False(t, hasGPA("no grade information"))
	assert.False(t, hasGPA("version 2.5 of the product"))
}
