package node

import (
	"time"

	"reqgraph.dev/kind"
)

// Text is also the head of an address's addressLines chain: the
// identifier of the first Text node in that chain is what
// InternationalAddress/USAddress store in their address_lines column,
// the remainder of the chain reached through the ordinary down links
// the same way any other node chain is.
type Text struct {
	Base
	text string
}

func NewText() *Text {
	return &Text{Base: NewBase(kind.Text)}
}

func (t *Text) Text() string { return t.text }

func (t *Text) SetText(v string) {
	t.text = v
	t.markChanged()
}

type Completed struct {
	Base
	description string
}

func NewCompleted() *Completed {
	return &Completed{Base: NewBase(kind.Completed)}
}

func (c *Completed) Description() string { return c.description }

func (c *Completed) SetDescription(v string) {
	c.description = v
	c.markChanged()
}

type KeyValue struct {
	Base
	key   string
	value string
}

func NewKeyValue() *KeyValue {
	return &KeyValue{Base: NewBase(kind.KeyValue)}
}

func (k *KeyValue) Key() string   { return k.key }
func (k *KeyValue) Value() string { return k.value }

func (k *KeyValue) SetKey(v string) {
	k.key = v
	k.markChanged()
}

func (k *KeyValue) SetValue(v string) {
	k.value = v
	k.markChanged()
}

type TimeEstimate struct {
	Base
	text     string
	estimate int64
	started  bool
	start    time.Time
}

func NewTimeEstimate() *TimeEstimate {
	return &TimeEstimate{Base: NewBase(kind.TimeEstimate)}
}

func (t *TimeEstimate) Text() string        { return t.text }
func (t *TimeEstimate) Estimate() int64     { return t.estimate }
func (t *TimeEstimate) Started() bool       { return t.started }
func (t *TimeEstimate) Start() time.Time    { return t.start }

func (t *TimeEstimate) SetText(v string) {
	t.text = v
	t.markChanged()
}

func (t *TimeEstimate) SetEstimate(v int64) {
	t.estimate = v
	t.markChanged()
}

func (t *TimeEstimate) SetStarted(v bool) {
	t.started = v
	t.markChanged()
}

func (t *TimeEstimate) SetStart(v time.Time) {
	t.start = v
	t.markChanged()
}

type Effort struct {
	Base
	text   string
	effort int64
}

func NewEffort() *Effort {
	return &Effort{Base: NewBase(kind.Effort)}
}

func (e *Effort) Text() string   { return e.text }
func (e *Effort) Effort() int64  { return e.effort }

func (e *Effort) SetText(v string) {
	e.text = v
	e.markChanged()
}

func (e *Effort) SetEffort(v int64) {
	e.effort = v
	e.markChanged()
}
