package ops

import "fmt"

// ValidationError rejects an action before any mutation, local or remote.
// Fully recoverable; the reason is shown to the user as-is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError blocks an action whose subject record is absent from the
// store.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// PersistenceError reports that a remote write failed after the optimistic
// local mutation. Writes already committed are not rolled back; the
// re-fetch that already ran reveals the authoritative state.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
