package store

import "errors"

var (
	// ErrUnknownKind is returned by insert/update/remove when a node's
	// kind has no registered codec. Load is a silent no-op instead, so a
	// raw node can still be safely fetched for an unknown kind.
	ErrUnknownKind = errors.New("store: no codec registered for kind")

	// ErrNotFound is returned when a requested identifier has no row in
	// the node table.
	ErrNotFound = errors.New("store: identifier not found")
)
