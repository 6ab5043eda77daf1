// Package graphjson is the wire serializer for the graph store: it
// turns a reachable node tree into a single JSON document and back.
// Shared references and cycles are handled with an arena keyed by
// identifier rather than an inline first-occurrence marker: every
// reachable node is emitted once into the document's "nodes" map, and
// every up/down/extra reference elsewhere in the document is just that
// identifier string, resolved back to a shared Go pointer on ingestion.
package graphjson

import (
	"encoding/json"
	"errors"

	"reqgraph.dev/kind"
	"reqgraph.dev/node"
)

// ErrDeserialization wraps a failure while rebuilding a node tree from
// an archive: a malformed document or envelope, a missing root, or an
// unparsable identifier, timestamp or spawnedFrom value. A reference to
// an identifier absent from the arena, and a scalar field of the wrong
// JSON type, are skipped rather than reported.
var ErrDeserialization = errors.New("graphjson: deserialization failed")

// document is the on-the-wire shape: one or more root identifiers plus
// the full arena of reachable nodes keyed by their own identifier.
// Marshal always emits exactly one root; Unmarshal accepts any number
// but only the first is returned, since node.Node has no notion of a
// forest.
type document struct {
	Roots []string                   `json:"roots"`
	Nodes map[string]json.RawMessage `json:"nodes"`
}

// envelope is a single-key object: {"<Kind>": {...fields...}}. The key
// is the discriminator the decoder uses to pick a blank constructor
// and a field unmarshaler before it ever looks at the fields inside.
type envelope map[string]json.RawMessage

func commonFields(n node.Node) map[string]interface{} {
	m := map[string]interface{}{}
	if up := n.Up(); len(up) > 0 {
		m["up"] = linkIDs(up)
	}
	if down := n.Down(); len(down) > 0 {
		m["down"] = linkIDs(down)
	}
	if c, ok := n.(commitable); ok {
		m["committed"] = c.IsCommitted()
	}
	return m
}

// commitable is the subset of the commitable overlay's surface this
// package needs to emit the "committed" flag for any commitable kind.
type commitable interface {
	IsCommitted() bool
}

func linkIDs(nodes []node.Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID().String()
	}
	return ids
}

func stringField(m map[string]interface{}, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func boolField(m map[string]interface{}, key string) bool {
	v, ok := m[key].(bool)
	return ok && v
}

// nodeFallbackKind is used when a node reports a kind this package has
// no marshaler/unmarshaler for, which should only happen for a
// deliberately unregistered test kind.
const nodeFallbackKind = kind.Node

// blankFor allocates an uninitialized node of k via the shared kind
// registry in node.New, which already falls back to node.PlainNode for
// an unrecognized kind.
func blankFor(k kind.Kind) node.Node {
	return node.New(k)
}
