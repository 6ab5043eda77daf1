package graphjson

import (
	"encoding/json"
	"fmt"

	"reqgraph.dev/kind"
	"reqgraph.dev/node"
)

// Unmarshal rebuilds a node tree from an archive produced by Marshal
// (or any document of the same shape). Every node named in "nodes" is
// allocated once into an arena keyed by identifier before any field or
// link is resolved, so a reference appearing before its target's own
// entry in iteration order still resolves to the same shared pointer.
func Unmarshal(data []byte) (node.Node, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	if len(doc.Roots) == 0 {
		return nil, fmt.Errorf("%w: no roots in archive", ErrDeserialization)
	}

	arena := make(map[string]node.Node, len(doc.Nodes))
	rawFields := make(map[string]map[string]interface{}, len(doc.Nodes))
	kinds := make(map[string]kind.Kind, len(doc.Nodes))

	for id, rawEnv := range doc.Nodes {
		var env envelope
		if err := json.Unmarshal(rawEnv, &env); err != nil {
			return nil, fmt.Errorf("%w: node %s: %v", ErrDeserialization, id, err)
		}
		if len(env) != 1 {
			return nil, fmt.Errorf("%w: node %s: envelope must have exactly one kind key, got %d",
				ErrDeserialization, id, len(env))
		}
		var kindName string
		var rawFieldsMsg json.RawMessage
		for k, v := range env {
			kindName, rawFieldsMsg = k, v
		}
		k, _ := kind.FromName(kindName)

		var fields map[string]interface{}
		if err := json.Unmarshal(rawFieldsMsg, &fields); err != nil {
			return nil, fmt.Errorf("%w: node %s fields: %v", ErrDeserialization, id, err)
		}

		n := blankFor(k)
		if err := n.SetIdentifier(id); err != nil {
			return nil, fmt.Errorf("%w: node %s: %v", ErrDeserialization, id, err)
		}
		arena[id] = n
		rawFields[id] = fields
		kinds[id] = k
	}

	// Second pass: every node exists in the arena now, so up/down/extra
	// references can be resolved regardless of which order the first
	// pass iterated the map in.
	for id, n := range arena {
		fields := rawFields[id]
		for _, upID := range stringSlice(fields["up"]) {
			if ref, ok := arena[upID]; ok {
				n.AddUp(ref)
			}
		}
		for _, downID := range stringSlice(fields["down"]) {
			if ref, ok := arena[downID]; ok {
				n.AddDown(ref)
			}
		}
		unmarshalFields, ok := fieldUnmarshalers[kinds[id]]
		if !ok {
			unmarshalFields = fieldUnmarshalers[nodeFallbackKind]
		}
		if err := unmarshalFields(n, fields, arena); err != nil {
			return nil, err
		}
	}

	root, ok := arena[doc.Roots[0]]
	if !ok {
		return nil, fmt.Errorf("%w: root %s not present in nodes", ErrDeserialization, doc.Roots[0])
	}
	return root, nil
}

func stringSlice(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
