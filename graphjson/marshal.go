package graphjson

import (
	"encoding/json"
	"fmt"

	"reqgraph.dev/node"
)

// Marshal renders root and everything reachable from it into a single
// archive: one entry in "nodes" per distinct identifier, in whatever
// order Traverse visits them, and a single-element "roots" list
// naming root's own identifier.
func Marshal(root node.Node) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrDeserialization)
	}

	nodes := make(map[string]json.RawMessage)
	var marshalErr error
	node.Traverse(root, func(n node.Node) {
		if marshalErr != nil {
			return
		}
		raw, err := marshalNode(n)
		if err != nil {
			marshalErr = err
			return
		}
		nodes[n.ID().String()] = raw
	})
	if marshalErr != nil {
		return nil, marshalErr
	}

	doc := document{Roots: []string{root.ID().String()}, Nodes: nodes}
	return json.Marshal(doc)
}

func marshalNode(n node.Node) (json.RawMessage, error) {
	fields := commonFields(n)
	marshalFields, ok := fieldMarshalers[n.Kind()]
	if !ok {
		marshalFields = fieldMarshalers[nodeFallbackKind]
	}
	for k, v := range marshalFields(n) {
		fields[k] = v
	}

	fieldsRaw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("graphjson: marshal fields for %s: %w", n.ID(), err)
	}

	env := envelope{n.Kind().String(): fieldsRaw}
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("graphjson: marshal envelope for %s: %w", n.ID(), err)
	}
	return raw, nil
}
