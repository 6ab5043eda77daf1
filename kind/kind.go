// Package kind enumerates the closed set of node kinds and maps each one
// to its stable name and its relational table name. It carries no
// database or node-model dependency of its own: the per-kind codecs that
// actually touch storage live in the store package, and the node shapes
// live in the node package. Keeping this mapping isolated lets both of
// those packages depend on kind without depending on each other.
package kind

import "strings"

// Kind is the closed tag discriminating a node's attribute shape and its
// codec. The set is fixed at build time; there is no open registration.
type Kind string

// The full kind set named in the data model.
const (
	Node                 Kind = "Node"
	GraphNode            Kind = "GraphNode"
	Organization         Kind = "Organization"
	Product              Kind = "Product"
	Project              Kind = "Project"
	Requirement          Kind = "Requirement"
	Story                Kind = "Story"
	UseCase              Kind = "UseCase"
	Text                 Kind = "Text"
	Completed            Kind = "Completed"
	KeyValue             Kind = "KeyValue"
	TimeEstimate         Kind = "TimeEstimate"
	Effort               Kind = "Effort"
	Role                 Kind = "Role"
	Actor                Kind = "Actor"
	Goal                 Kind = "Goal"
	Purpose              Kind = "Purpose"
	Person               Kind = "Person"
	EmailAddress         Kind = "EmailAddress"
	PhoneNumber          Kind = "PhoneNumber"
	InternationalAddress Kind = "InternationalAddress"
	USAddress            Kind = "USAddress"
	Event                Kind = "Event"
	RecurringTodo        Kind = "RecurringTodo"
	Todo                 Kind = "Todo"
	ServerLocatorNode    Kind = "ServerLocatorNode"
)

// All lists every kind in the closed set, Node first, so callers that need
// to iterate (schema bootstrap, registry validation) have a stable order.
var All = []Kind{
	Node, GraphNode, Organization, Product, Project, Requirement, Story,
	UseCase, Text, Completed, KeyValue, TimeEstimate, Effort, Role, Actor,
	Goal, Purpose, Person, EmailAddress, PhoneNumber, InternationalAddress,
	USAddress, Event, RecurringTodo, Todo, ServerLocatorNode,
}

// fixedTableNames pins the table name of the renamed kinds. Most entries
// equal the snake_case default; USAddress and KeyValue are the ones
// splitting on capital letters would get wrong.
var fixedTableNames = map[Kind]string{
	GraphNode:            "graph_node",
	UseCase:              "use_case",
	EmailAddress:         "email_address",
	PhoneNumber:          "phone_number",
	InternationalAddress: "international_address",
	USAddress:            "us_address",
	TimeEstimate:         "time_estimate",
	RecurringTodo:        "recurring_todo",
	KeyValue:             "keyvalue",
}

// Table returns the relational table name for k: snake_case(kindName),
// with the fixed renames the spec calls out applied first.
func (k Kind) Table() string {
	if t, ok := fixedTableNames[k]; ok {
		return t
	}
	return snakeCase(string(k))
}

// String returns the stable kind name used as the JSON archive's
// discriminator property and as the name-index lookup key.
func (k Kind) String() string {
	return string(k)
}

// byName indexes every kind by its stable string name for deserialization
// and REST lookups that arrive as plain strings.
var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(All))
	for _, k := range All {
		m[string(k)] = k
	}
	return m
}()

// FromName resolves a stable kind name to a Kind. Unknown names fall back
// to Node (the neutral kind acts as fallback per the kind registry
// contract), with ok=false so callers can tell the difference from an
// explicit "Node" if needed.
func FromName(name string) (k Kind, ok bool) {
	if k, found := byName[name]; found {
		return k, true
	}
	return Node, false
}

// snakeCase lowercases a PascalCase identifier and inserts underscores
// before interior capitals, e.g. "KeyValue" -> "key_value".
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
