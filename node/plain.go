package node

import "reqgraph.dev/kind"

// PlainNode is the neutral Node kind: the Kind Registry's fallback for
// an unknown kind name and the base codec's own row shape. It carries
// no scalar attributes of its own beyond identity and links.
type PlainNode struct {
	Base
}

func NewPlainNode() *PlainNode {
	return &PlainNode{Base: NewBase(kind.Node)}
}
