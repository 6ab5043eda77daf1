package node

import (
	"time"

	"reqgraph.dev/kind"
)

type Role struct {
	Base
	who string
}

func NewRole() *Role {
	return &Role{Base: NewBase(kind.Role)}
}

func (r *Role) Who() string { return r.who }

func (r *Role) SetWho(v string) {
	r.who = v
	r.markChanged()
}

type Actor struct {
	Base
	actor string
}

func NewActor() *Actor {
	return &Actor{Base: NewBase(kind.Actor)}
}

func (a *Actor) Actor() string { return a.actor }

func (a *Actor) SetActor(v string) {
	a.actor = v
	a.markChanged()
}

type Goal struct {
	Base
	action             string
	outcome            string
	context            string
	targetDate         time.Time
	targetDateConfidence string
	alignment          string
}

func NewGoal() *Goal {
	return &Goal{Base: NewBase(kind.Goal)}
}

func (g *Goal) Action() string               { return g.action }
func (g *Goal) Outcome() string              { return g.outcome }
func (g *Goal) Context() string              { return g.context }
func (g *Goal) TargetDate() time.Time        { return g.targetDate }
func (g *Goal) TargetDateConfidence() string { return g.targetDateConfidence }
func (g *Goal) Alignment() string            { return g.alignment }

func (g *Goal) SetAction(v string) {
	g.action = v
	g.markChanged()
}

func (g *Goal) SetOutcome(v string) {
	g.outcome = v
	g.markChanged()
}

func (g *Goal) SetContext(v string) {
	g.context = v
	g.markChanged()
}

func (g *Goal) SetTargetDate(v time.Time) {
	g.targetDate = v
	g.markChanged()
}

func (g *Goal) SetTargetDateConfidence(v string) {
	g.targetDateConfidence = v
	g.markChanged()
}

func (g *Goal) SetAlignment(v string) {
	g.alignment = v
	g.markChanged()
}

type Purpose struct {
	Base
	description        string
	deadline           time.Time
	deadlineConfidence string
}

func NewPurpose() *Purpose {
	return &Purpose{Base: NewBase(kind.Purpose)}
}

func (p *Purpose) Description() string        { return p.description }
func (p *Purpose) Deadline() time.Time        { return p.deadline }
func (p *Purpose) DeadlineConfidence() string { return p.deadlineConfidence }

func (p *Purpose) SetDescription(v string) {
	p.description = v
	p.markChanged()
}

func (p *Purpose) SetDeadline(v time.Time) {
	p.deadline = v
	p.markChanged()
}

func (p *Purpose) SetDeadlineConfidence(v string) {
	p.deadlineConfidence = v
	p.markChanged()
}
