package analyzer

import "fmt"

// InvalidInputError indicates the input text was empty or too short to analyze.
type InvalidInputError struct {
	Length int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: resume text too short (%d readable characters, need at least %d)",
		e.Length, MinReadableChars)
}
