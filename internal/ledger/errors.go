package ledger

import "fmt"

// PersistenceError indicates the backing store failed during a ledger
// operation. The ledger state is unchanged when a write fails: all derived
// fields are recomputed before the single write-back.
type PersistenceError struct {
	Op     string
	UserID string
	Cause  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error: %s for user %s: %v", e.Op, e.UserID, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
