// Package node implements the graph store's data model: a closed family
// of typed nodes linked by bidirectional up/down relations, addressable
// from any reachable member and safe to traverse over arbitrary cycles.
//
// Each concrete kind (Organization, Requirement, Todo, ...) is its own
// struct embedding Base rather than a position in a class hierarchy; Base
// supplies identity, the up/down link lists, the dirty flag and the
// cycle-safe traversal that every kind shares. Polymorphic behavior
// (kind name, extra typed references, JSON shape) is dispatched through
// the Node interface instead of inheritance.
package node

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"reqgraph.dev/kind"
)

// Node is the common surface every kind exposes. Graph traversal, the
// serializer and the store codecs all operate through this interface so
// they never need a type switch over concrete kinds except where a
// kind's own scalar fields are being read or written.
type Node interface {
	ID() uuid.UUID
	IDString() string
	Initialized() bool
	Init()
	SetIdentifier(id string) error

	Kind() kind.Kind

	Up() []Node
	Down() []Node
	AddUp(n Node) Node
	AddDown(n Node) Node
	FindUp(id uuid.UUID) (Node, bool)
	FindDown(id uuid.UUID) (Node, bool)

	// ExtraRefs returns kind-specific typed references beyond up/down that
	// traversal and serialization must also walk: the commitable
	// changeParent/changeChild pair, an international address's address
	// lines, and so on. Most kinds return nil.
	ExtraRefs() []Node

	Changed() bool
	SetChanged(changed bool)

	Lock()
	Unlock()
}

// Base implements the whole Node interface. Kind reports the kind the
// concrete constructor passed to NewBase; ExtraRefs returns nil unless a
// kind that embeds Base defines its own method, which shadows this one.
type Base struct {
	mu          sync.Mutex
	id          uuid.UUID
	initialized bool
	changed     bool
	up          []Node
	down        []Node
	k           kind.Kind
}

// NewBase constructs an uninitialized Base for the given kind: no
// identifier, empty link lists, not yet changed. Identity is conferred
// later by Init or SetIdentifier.
func NewBase(k kind.Kind) Base {
	return Base{k: k}
}

func (b *Base) ID() uuid.UUID { return b.id }

func (b *Base) IDString() string {
	if b.id == uuid.Nil {
		return ""
	}
	return b.id.String()
}

func (b *Base) Initialized() bool { return b.initialized }

// Init assigns a fresh time-ordered identifier. Re-running Init replaces
// the identifier; callers that loaded a node from storage or from a
// serialized archive should call SetIdentifier instead, never Init, so
// traversal does not reassign an identifier that already has persisted
// state under it.
func (b *Base) Init() {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the runtime's random source is broken beyond
		// recovery; there is no sensible degraded mode for an identity
		// allocator, so this mirrors the allocation-failure-is-fatal
		// posture the store layer takes for a broken connection pool.
		panic(fmt.Sprintf("node: failed to allocate identifier: %v", err))
	}
	b.id = id
	b.initialized = true
}

// SetIdentifier sets the identifier from its string form, marking the
// node already-initialized so Init will not reassign it. This is the path
// the loader and the deserializer use.
func (b *Base) SetIdentifier(s string) error {
	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("node: invalid identifier %q: %w", s, err)
	}
	b.id = id
	b.initialized = true
	return nil
}

func (b *Base) Kind() kind.Kind { return b.k }

func (b *Base) Up() []Node   { return b.up }
func (b *Base) Down() []Node { return b.down }

// AddUp appends n to the up list unless a node with the same identifier
// is already present, and returns n either way so calls can be chained.
func (b *Base) AddUp(n Node) Node {
	if _, found := b.FindUp(n.ID()); found {
		return n
	}
	b.up = append(b.up, n)
	return n
}

// AddDown appends n to the down list unless a node with the same
// identifier is already present, and returns n either way.
func (b *Base) AddDown(n Node) Node {
	if _, found := b.FindDown(n.ID()); found {
		return n
	}
	b.down = append(b.down, n)
	return n
}

func (b *Base) FindUp(id uuid.UUID) (Node, bool) {
	return findByID(b.up, id)
}

func (b *Base) FindDown(id uuid.UUID) (Node, bool) {
	return findByID(b.down, id)
}

func findByID(list []Node, id uuid.UUID) (Node, bool) {
	for _, n := range list {
		if n.ID() == id {
			return n, true
		}
	}
	return nil, false
}

// ExtraRefs has no kind-specific references at the Base level; kinds that
// carry overlay references (commitable, address lines) define their own
// ExtraRefs method, which Go's method resolution picks over this one.
func (b *Base) ExtraRefs() []Node { return nil }

func (b *Base) Changed() bool { return b.changed }

func (b *Base) SetChanged(changed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.changed = changed
}

func (b *Base) Lock()   { b.mu.Lock() }
func (b *Base) Unlock() { b.mu.Unlock() }

// markChanged flips the dirty flag on under the node's own mutex. Every
// scalar setter on every kind calls this after validating the mutation is
// allowed, so "changed" always reflects "mutated since last persist".
func (b *Base) markChanged() {
	b.mu.Lock()
	b.changed = true
	b.mu.Unlock()
}

// Traverse walks the reachable transitive closure from root exactly
// once per identifier: current node, then each up neighbor (recursively),
// then each down neighbor, then any kind-specific extra references. It is
// read-only and terminates on arbitrary cycles via the visited set it
// allocates internally.
func Traverse(root Node, visit func(Node)) {
	if root == nil {
		return
	}
	visited := make(map[uuid.UUID]bool)
	var walk func(n Node)
	walk = func(n Node) {
		if n == nil {
			return
		}
		id := n.ID()
		if visited[id] {
			return
		}
		visited[id] = true
		visit(n)
		for _, u := range n.Up() {
			walk(u)
		}
		for _, d := range n.Down() {
			walk(d)
		}
		for _, e := range n.ExtraRefs() {
			walk(e)
		}
	}
	walk(root)
}

// Connect links parent and child atomically: child is appended to
// parent's down list and parent to child's up list. This is the
// canonical way to establish a link; the model itself does not enforce
// that a down-link on one side implies an up-link on the other, so code
// that bypasses Connect can produce an asymmetric graph on purpose.
func Connect(parent, child Node) {
	parent.AddDown(child)
	child.AddUp(parent)
}
