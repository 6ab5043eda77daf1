package node

import "reqgraph.dev/kind"

// constructors allocates a blank, uninitialized node for every kind in
// the closed set: no identifier, no links, Committed false where the
// kind carries the overlay. Callers set the identifier themselves
// (Init for a fresh node, SetIdentifier for one loaded from storage or
// an archive), so a single map here serves both the serializer and the
// graph factory without either duplicating the kind-to-constructor
// switch on its own.
var constructors = map[kind.Kind]func() Node{
	kind.Node:                 func() Node { return NewPlainNode() },
	kind.GraphNode:            func() Node { return NewGraphNode() },
	kind.Organization:         func() Node { return NewOrganization() },
	kind.Project:              func() Node { return NewProject() },
	kind.Product:              func() Node { return NewProduct() },
	kind.Requirement:          func() Node { return NewRequirement() },
	kind.Story:                func() Node { return NewStory() },
	kind.UseCase:              func() Node { return NewUseCase() },
	kind.Text:                 func() Node { return NewText() },
	kind.Completed:            func() Node { return NewCompleted() },
	kind.KeyValue:             func() Node { return NewKeyValue() },
	kind.TimeEstimate:         func() Node { return NewTimeEstimate() },
	kind.Effort:               func() Node { return NewEffort() },
	kind.Role:                 func() Node { return NewRole() },
	kind.Actor:                func() Node { return NewActor() },
	kind.Goal:                 func() Node { return NewGoal() },
	kind.Purpose:              func() Node { return NewPurpose() },
	kind.Person:                func() Node { return NewPerson() },
	kind.EmailAddress:          func() Node { return NewEmailAddress() },
	kind.PhoneNumber:           func() Node { return NewPhoneNumber() },
	kind.InternationalAddress:  func() Node { return NewInternationalAddress() },
	kind.USAddress:             func() Node { return NewUSAddress() },
	kind.Event:                 func() Node { return NewEvent() },
	kind.RecurringTodo:         func() Node { return NewRecurringTodo() },
	kind.Todo:                  func() Node { return NewTodo() },
	kind.ServerLocatorNode:     func() Node { return NewServerLocatorNode() },
}

// New allocates a blank node for k, or a neutral PlainNode if k falls
// outside the closed set this package knows how to build - the same
// unknown-kind-falls-back-to-Node contract kind.FromName follows.
func New(k kind.Kind) Node {
	if ctor, ok := constructors[k]; ok {
		return ctor()
	}
	return NewPlainNode()
}
