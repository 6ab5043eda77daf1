package node

// Commitable is embedded by the kinds that carry the change-traceability
// overlay: Requirement, Story, UseCase, Product. Once Committed is true,
// the owning kind's scalar setters must reject mutation (ErrNotChanged);
// a caller that needs to keep editing spawns a change node via the
// owning kind's GetChangeNode, mutates that instead, and later either
// commits it (promoting it to the new baseline) or discards it.
//
// ChangeParent/ChangeChild are declared as Node rather than a generic
// same-kind type parameter: the "same kind" constraint from the data
// model is enforced at construction time by each kind's GetChangeNode,
// not by the Go type system.
type Commitable struct {
	Committed    bool
	ChangeParent Node
	ChangeChild  Node
}

// IsCommitted reports whether scalar attributes are frozen.
func (c *Commitable) IsCommitted() bool { return c.Committed }

// Commit freezes the owning node's scalar attributes. One-way: there is
// no Uncommit.
func (c *Commitable) Commit() { c.Committed = true }

// guardMutable is called by every scalar setter on a commitable kind
// before it mutates state.
func (c *Commitable) guardMutable() error {
	if c.Committed {
		return ErrNotChanged
	}
	return nil
}

// discardChange clears ChangeChild iff that child is itself not
// committed, else returns ErrNotDiscarded.
func (c *Commitable) discardChange() error {
	if c.ChangeChild == nil {
		return nil
	}
	if cc, ok := c.ChangeChild.(interface{ IsCommitted() bool }); ok && cc.IsCommitted() {
		return ErrNotDiscarded
	}
	c.ChangeChild = nil
	return nil
}

// extraRefs returns the non-nil overlay references for traversal and
// serialization to walk alongside up/down.
func (c *Commitable) extraRefs() []Node {
	var refs []Node
	if c.ChangeParent != nil {
		refs = append(refs, c.ChangeParent)
	}
	if c.ChangeChild != nil {
		refs = append(refs, c.ChangeChild)
	}
	return refs
}
