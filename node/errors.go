package node

import "errors"

// Sentinel errors the node model and its callers check with errors.Is,
// following the same plain errors.New convention the rest of the module
// uses for programmer-error conditions.
var (
	// ErrNotChanged is returned when a setter is called on a commitable
	// node whose Committed flag is already true.
	ErrNotChanged = errors.New("node: committed node cannot be changed")

	// ErrNotDiscarded is returned by DiscardChange when the current
	// change child is itself committed, so it cannot be cleared.
	ErrNotDiscarded = errors.New("node: change child is committed and cannot be discarded")
)
