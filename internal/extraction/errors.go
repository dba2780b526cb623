// Package extraction provides the client for the external text-extraction
// (OCR) collaborator. The service itself is not implemented here, only its
// consumed contract.
package extraction

import "fmt"

// UnavailableError indicates the extraction collaborator was unreachable or
// returned an error status. The client never retries; callers decide.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction unavailable: %s", e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// NoReadableTextError indicates the extracted text was below the readable
// minimum. The document is unusable; the analyzer must not run on it.
type NoReadableTextError struct {
	Length int
}

func (e *NoReadableTextError) Error() string {
	return fmt.Sprintf("no readable text in document (%d readable characters, need at least %d)",
		e.Length, MinReadableChars)
}

// ContractError indicates the collaborator responded with a payload that does
// not match the extraction contract schema.
type ContractError struct {
	Cause error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("extraction response violates contract: %v", e.Cause)
}

func (e *ContractError) Unwrap() error {
	return e.Cause
}
