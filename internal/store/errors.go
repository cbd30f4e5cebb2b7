package store

import (
	"errors"
	"fmt"
)

// ErrDuplicateItem indicates an item id is already registered.
// Dedup is by content-derived id, so a re-import of the same content
// is rejected rather than creating a second scheduling record.
var ErrDuplicateItem = errors.New("duplicate item")

// CorruptStateError indicates a persisted record failed invariant
// validation on load. The record is identified so the caller can
// surface or repair it; the engine refuses to schedule against a
// corrupt item until it is corrected.
type CorruptStateError struct {
	Kind   string // "item", "aggregate", "store"
	ID     string // item id, section id, or db path
	Reason string
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt %s state (%s): %s", e.Kind, e.ID, e.Reason)
}

// IsCorruptState reports whether err is a CorruptStateError.
func IsCorruptState(err error) bool {
	var ce *CorruptStateError
	return errors.As(err, &ce)
}
