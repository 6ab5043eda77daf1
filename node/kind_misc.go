package node

import (
	"time"

	"github.com/google/uuid"

	"reqgraph.dev/kind"
)

type Event struct {
	Base
	name        string
	description string
}

func NewEvent() *Event {
	return &Event{Base: NewBase(kind.Event)}
}

func (e *Event) Name() string        { return e.name }
func (e *Event) Description() string { return e.description }

func (e *Event) SetName(v string) {
	e.name = v
	e.markChanged()
}

func (e *Event) SetDescription(v string) {
	e.description = v
	e.markChanged()
}

// GraphNode is an ordinary node whose only distinguishing role is
// convention: it is the kind the REST locator listing expects at the
// root of every graph it advertises, and its title is what /graphs
// surfaces. Nothing in the store or the node model otherwise treats it
// specially.
type GraphNode struct {
	Base
	title string
}

func NewGraphNode() *GraphNode {
	return &GraphNode{Base: NewBase(kind.GraphNode)}
}

func (g *GraphNode) Title() string { return g.title }

func (g *GraphNode) SetTitle(v string) {
	g.title = v
	g.markChanged()
}

// RecurringTodo describes a recurring schedule that Todo.FromRecurring
// turns into a single concrete occurrence.
type RecurringTodo struct {
	Base
	description       string
	created           time.Time
	recurringInterval int64
	secondsFlag       bool
	domFlag           bool
	doyFlag           bool
}

func NewRecurringTodo() *RecurringTodo {
	return &RecurringTodo{Base: NewBase(kind.RecurringTodo), created: time.Now()}
}

func (r *RecurringTodo) Description() string       { return r.description }
func (r *RecurringTodo) Created() time.Time         { return r.created }
func (r *RecurringTodo) RecurringInterval() int64   { return r.recurringInterval }
func (r *RecurringTodo) SecondsFlag() bool          { return r.secondsFlag }
func (r *RecurringTodo) DomFlag() bool              { return r.domFlag }
func (r *RecurringTodo) DoyFlag() bool              { return r.doyFlag }

func (r *RecurringTodo) SetDescription(v string) {
	r.description = v
	r.markChanged()
}

func (r *RecurringTodo) SetCreated(v time.Time) {
	r.created = v
	r.markChanged()
}

func (r *RecurringTodo) SetRecurringInterval(v int64) {
	r.recurringInterval = v
	r.markChanged()
}

func (r *RecurringTodo) SetSecondsFlag(v bool) {
	r.secondsFlag = v
	r.markChanged()
}

func (r *RecurringTodo) SetDomFlag(v bool) {
	r.domFlag = v
	r.markChanged()
}

func (r *RecurringTodo) SetDoyFlag(v bool) {
	r.doyFlag = v
	r.markChanged()
}

// Todo is a single occurrence, optionally spawned from a RecurringTodo
// via FromRecurring.
type Todo struct {
	Base
	description   string
	created       time.Time
	due           time.Time
	completed     bool
	dateCompleted time.Time
	spawnedFrom   uuid.UUID
}

func NewTodo() *Todo {
	return &Todo{Base: NewBase(kind.Todo), created: time.Now()}
}

// FromRecurring builds a new, uninitialized Todo carrying r's
// description and recording r's identifier as spawnedFrom. The caller
// still owns calling Init on the result.
func FromRecurring(r *RecurringTodo) *Todo {
	t := NewTodo()
	t.description = r.description
	t.spawnedFrom = r.ID()
	t.completed = false
	return t
}

func (t *Todo) Description() string      { return t.description }
func (t *Todo) Created() time.Time        { return t.created }
func (t *Todo) Due() time.Time            { return t.due }
func (t *Todo) Completed() bool           { return t.completed }
func (t *Todo) DateCompleted() time.Time  { return t.dateCompleted }
func (t *Todo) SpawnedFrom() uuid.UUID    { return t.spawnedFrom }

func (t *Todo) SetDescription(v string) {
	t.description = v
	t.markChanged()
}

func (t *Todo) SetCreated(v time.Time) {
	t.created = v
	t.markChanged()
}

func (t *Todo) SetDue(v time.Time) {
	t.due = v
	t.markChanged()
}

func (t *Todo) SetCompleted(v bool) {
	t.completed = v
	t.markChanged()
}

func (t *Todo) SetDateCompleted(v time.Time) {
	t.dateCompleted = v
	t.markChanged()
}

func (t *Todo) SetSpawnedFrom(v uuid.UUID) {
	t.spawnedFrom = v
	t.markChanged()
}

// ServerLocatorNode carries an (identifier, title, url) locator triple
// and is never persisted under its own table. The /graphs handler does
// not build ServerLocatorNode values: it writes each locator as a plain
// JSON object with graphUuid/graphTitle/graphAddress keys.
type ServerLocatorNode struct {
	Base
	graphUUID    string
	graphTitle   string
	graphAddress string
}

func NewServerLocatorNode() *ServerLocatorNode {
	return &ServerLocatorNode{Base: NewBase(kind.ServerLocatorNode)}
}

func (s *ServerLocatorNode) GraphUUID() string    { return s.graphUUID }
func (s *ServerLocatorNode) GraphTitle() string   { return s.graphTitle }
func (s *ServerLocatorNode) GraphAddress() string { return s.graphAddress }

func (s *ServerLocatorNode) SetGraphUUID(v string) {
	s.graphUUID = v
	s.markChanged()
}

func (s *ServerLocatorNode) SetGraphTitle(v string) {
	s.graphTitle = v
	s.markChanged()
}

func (s *ServerLocatorNode) SetGraphAddress(v string) {
	s.graphAddress = v
	s.markChanged()
}
