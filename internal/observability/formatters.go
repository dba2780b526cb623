// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/WillyEverGreen/gigbridge/internal/ledger"
	"github.com/WillyEverGreen/gigbridge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a resume analysis.
func (p *Printer) PrintAnalysis(analysis *types.ResumeAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:       %d\n", analysis.OverallRating))
	sb.WriteString(fmt.Sprintf("Skills:        %d\n", analysis.SkillRating))
	sb.WriteString(fmt.Sprintf("Experience:    %d\n", analysis.ExperienceRating))
	sb.WriteString(fmt.Sprintf("Education:     %d\n", analysis.EducationRating))
	sb.WriteString(fmt.Sprintf("Confidence:    %.3f\n", analysis.Confidence))
	sb.WriteString("\n")

	if len(analysis.Skills) > 0 {
		sb.WriteString("Skills Found:\n")
		count := min(len(analysis.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.Skills[i]))
		}
		if len(analysis.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		for _, s := range analysis.Strengths {
			sb.WriteString(fmt.Sprintf("  + %s\n", s))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Weaknesses) > 0 {
		sb.WriteString("Weaknesses:\n")
		for _, w := range analysis.Weaknesses {
			sb.WriteString(fmt.Sprintf("  - %s\n", w))
		}
		sb.WriteString("\n")
	}

	if analysis.Summary != "" {
		sb.WriteString(analysis.Summary)
		sb.WriteString("\n")
	}

	p.printBox("RESUME ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// PrintSuggestions outputs the improvement suggestions from an analysis.
func (p *Printer) PrintSuggestions(analysis *types.ResumeAnalysis) {
	if analysis == nil || len(analysis.Suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range analysis.Suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, s))
	}

	p.printBox("SUGGESTIONS", strings.TrimRight(sb.String(), "\n"))
}

// PrintRatingRecord outputs a user's skill ratings and rating history size.
func (p *Printer) PrintRatingRecord(record *ledger.UserRatingData) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("User:           %s\n", record.UserID))
	sb.WriteString(fmt.Sprintf("Overall Rating: %.1f\n", record.OverallRating))
	sb.WriteString(fmt.Sprintf("Completed:      %d\n", record.TotalProjectsCompleted))
	sb.WriteString(fmt.Sprintf("Failed:         %d\n", record.TotalProjectsFailed))
	sb.WriteString("\n")

	if len(record.Skills) > 0 {
		sb.WriteString("Skill Ratings:\n")
		count := min(len(record.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sr := record.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %-20s %.1f\n", sr.Skill, sr.Rating))
		}
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("History entries: %d", len(record.RatingHistory)))

	p.printBox("RATING LEDGER", sb.String())
}

// PrintStats outputs aggregate ledger statistics for a user.
func (p *Printer) PrintStats(stats *ledger.Stats) {
	if stats == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall Rating:  %.1f\n", stats.OverallRating))
	sb.WriteString(fmt.Sprintf("Total Skills:    %d\n", stats.TotalSkills))
	sb.WriteString(fmt.Sprintf("Completed:       %d\n", stats.TotalProjectsCompleted))
	sb.WriteString(fmt.Sprintf("Failed:          %d\n", stats.TotalProjectsFailed))
	sb.WriteString(fmt.Sprintf("Success Rate:    %.1f%%\n", stats.SuccessRate))

	if len(stats.TopSkills) > 0 {
		sb.WriteString("\nTop Skills:\n")
		for _, sr := range stats.TopSkills {
			sb.WriteString(fmt.Sprintf("  • %-20s %.1f\n", sr.Skill, sr.Rating))
		}
	}

	p.printBox("RATING STATS", strings.TrimRight(sb.String(), "\n"))
}
