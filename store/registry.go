package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"reqgraph.dev/kind"
	"reqgraph.dev/node"
)

// Codec is the four-operation contract the kind registry dispatches
// by runtime kind. Every implementation calls through to
// insertNodeAndEdges/updateNodeAndEdges/removeNodeAndEdges for the
// generic node and node_associations tables in addition to its own
// kind-specific table.
type Codec interface {
	Insert(ctx context.Context, tx pgx.Tx, n node.Node) error
	Update(ctx context.Context, tx pgx.Tx, n node.Node) error
	Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error)
	Remove(ctx context.Context, tx pgx.Tx, n node.Node) error
}

// Registry maps every persisted kind to its codec; ServerLocatorNode
// has no entry, so it takes the unknown-kind path below. Node itself is
// present: its row lives in the generic node table and it has no
// kind-specific table of its own, so its kind-specific step is a no-op
// beyond what insert/update/removeNodeAndEdges already do.
var Registry = map[kind.Kind]Codec{
	kind.Node:                 plainCodec{},
	kind.GraphNode:            graphNodeCodec{},
	kind.Organization:         organizationCodec{},
	kind.Product:               productCodec{},
	kind.Project:               projectCodec{},
	kind.Requirement:           requirementCodec{},
	kind.Story:                 storyCodec{},
	kind.UseCase:               useCaseCodec{},
	kind.Text:                  textCodec{},
	kind.Completed:             completedCodec{},
	kind.KeyValue:              keyValueCodec{},
	kind.TimeEstimate:          timeEstimateCodec{},
	kind.Effort:                effortCodec{},
	kind.Role:                  roleCodec{},
	kind.Actor:                 actorCodec{},
	kind.Goal:                  goalCodec{},
	kind.Purpose:               purposeCodec{},
	kind.Person:                personCodec{},
	kind.EmailAddress:          emailAddressCodec{},
	kind.PhoneNumber:           phoneNumberCodec{},
	kind.InternationalAddress:  internationalAddressCodec{},
	kind.USAddress:             usAddressCodec{},
	kind.Event:                 eventCodec{},
	kind.RecurringTodo:         recurringTodoCodec{},
	kind.Todo:                  todoCodec{},
}

// Insert dispatches to n's registered codec. Unknown kinds surface
// ErrUnknownKind.
func Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	c, ok := Registry[n.Kind()]
	if !ok {
		return ErrUnknownKind
	}
	return c.Insert(ctx, tx, n)
}

// Update dispatches to n's registered codec. Unknown kinds surface
// ErrUnknownKind.
func Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	c, ok := Registry[n.Kind()]
	if !ok {
		return ErrUnknownKind
	}
	return c.Update(ctx, tx, n)
}

// Load dispatches to n's registered codec. An unknown kind is a silent
// no-op returning false, not an error, so a raw node can always be
// fetched safely.
func Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	c, ok := Registry[n.Kind()]
	if !ok {
		return false, nil
	}
	return c.Load(ctx, tx, n)
}

// Remove dispatches to n's registered codec. Unknown kinds surface
// ErrUnknownKind.
func Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	c, ok := Registry[n.Kind()]
	if !ok {
		return ErrUnknownKind
	}
	return c.Remove(ctx, tx, n)
}
