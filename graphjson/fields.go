package graphjson

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"reqgraph.dev/kind"
	"reqgraph.dev/node"
)

func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

type fieldMarshaler func(node.Node) map[string]interface{}
type fieldUnmarshaler func(n node.Node, fields map[string]interface{}, arena map[string]node.Node) error

var fieldMarshalers = map[kind.Kind]fieldMarshaler{
	kind.Node:                 func(node.Node) map[string]interface{} { return nil },
	kind.GraphNode:            marshalGraphNode,
	kind.Organization:         marshalOrganization,
	kind.Project:              marshalProject,
	kind.Product:              marshalProduct,
	kind.Requirement:          marshalRequirement,
	kind.Story:                marshalStory,
	kind.UseCase:              marshalUseCase,
	kind.Text:                 marshalText,
	kind.Completed:            marshalCompleted,
	kind.KeyValue:             marshalKeyValue,
	kind.TimeEstimate:         marshalTimeEstimate,
	kind.Effort:               marshalEffort,
	kind.Role:                 marshalRole,
	kind.Actor:                marshalActor,
	kind.Goal:                 marshalGoal,
	kind.Purpose:              marshalPurpose,
	kind.Person:               marshalPerson,
	kind.EmailAddress:         marshalEmailAddress,
	kind.PhoneNumber:          marshalPhoneNumber,
	kind.InternationalAddress: marshalInternationalAddress,
	kind.USAddress:            marshalUSAddress,
	kind.Event:                marshalEvent,
	kind.RecurringTodo:        marshalRecurringTodo,
	kind.Todo:                 marshalTodo,
	kind.ServerLocatorNode:    marshalServerLocatorNode,
}

var fieldUnmarshalers = map[kind.Kind]fieldUnmarshaler{
	kind.Node:                 func(node.Node, map[string]interface{}, map[string]node.Node) error { return nil },
	kind.GraphNode:            unmarshalGraphNode,
	kind.Organization:         unmarshalOrganization,
	kind.Project:              unmarshalProject,
	kind.Product:              unmarshalProduct,
	kind.Requirement:          unmarshalRequirement,
	kind.Story:                unmarshalStory,
	kind.UseCase:              unmarshalUseCase,
	kind.Text:                 unmarshalText,
	kind.Completed:            unmarshalCompleted,
	kind.KeyValue:             unmarshalKeyValue,
	kind.TimeEstimate:         unmarshalTimeEstimate,
	kind.Effort:               unmarshalEffort,
	kind.Role:                 unmarshalRole,
	kind.Actor:                unmarshalActor,
	kind.Goal:                 unmarshalGoal,
	kind.Purpose:              unmarshalPurpose,
	kind.Person:               unmarshalPerson,
	kind.EmailAddress:         unmarshalEmailAddress,
	kind.PhoneNumber:          unmarshalPhoneNumber,
	kind.InternationalAddress: unmarshalInternationalAddress,
	kind.USAddress:            unmarshalUSAddress,
	kind.Event:                unmarshalEvent,
	kind.RecurringTodo:        unmarshalRecurringTodo,
	kind.Todo:                 unmarshalTodo,
	kind.ServerLocatorNode:    unmarshalServerLocatorNode,
}

func marshalGraphNode(n node.Node) map[string]interface{} {
	g := n.(*node.GraphNode)
	return map[string]interface{}{"title": g.Title()}
}

func unmarshalGraphNode(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	g := n.(*node.GraphNode)
	if v, ok := stringField(f, "title"); ok {
		g.SetTitle(v)
	}
	return nil
}

func marshalOrganization(n node.Node) map[string]interface{} {
	o := n.(*node.Organization)
	return map[string]interface{}{"name": o.Name(), "locked": o.Locked()}
}

func unmarshalOrganization(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	o := n.(*node.Organization)
	if v, ok := stringField(f, "name"); ok {
		o.SetName(v)
	}
	o.SetLocked(boolField(f, "locked"))
	return nil
}

func marshalProject(n node.Node) map[string]interface{} {
	p := n.(*node.Project)
	return map[string]interface{}{"name": p.Name(), "description": p.Description()}
}

func unmarshalProject(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	p := n.(*node.Project)
	if v, ok := stringField(f, "name"); ok {
		p.SetName(v)
	}
	if v, ok := stringField(f, "description"); ok {
		p.SetDescription(v)
	}
	return nil
}

// commitableOverlayFields appends the changeParent/changeChild
// identifier references to m for a kind carrying the overlay. Called
// by each commitable kind's marshaler with its own ChangeParent/
// ChangeChild, which are promoted exported fields from node.Commitable
// and so only reachable once the caller has the concrete type.
func commitableOverlayFields(m map[string]interface{}, changeParent, changeChild node.Node) {
	if changeParent != nil {
		m["changeParent"] = changeParent.ID().String()
	}
	if changeChild != nil {
		m["changeChild"] = changeChild.ID().String()
	}
}

// resolveCommitableOverlay sets n's Committed flag and links its
// changeParent/changeChild back to the arena-shared node for those
// identifiers, if present. committed, changeParent and changeChild point
// at the concrete kind's own fields since Node carries no setter for
// them.
func resolveCommitableOverlay(f map[string]interface{}, arena map[string]node.Node, committed *bool,
	changeParent, changeChild *node.Node) {
	*committed = boolField(f, "committed")
	if id, ok := stringField(f, "changeParent"); ok {
		if ref, found := arena[id]; found {
			*changeParent = ref
		}
	}
	if id, ok := stringField(f, "changeChild"); ok {
		if ref, found := arena[id]; found {
			*changeChild = ref
		}
	}
}

func marshalProduct(n node.Node) map[string]interface{} {
	p := n.(*node.Product)
	m := map[string]interface{}{"title": p.Title(), "description": p.Description()}
	commitableOverlayFields(m, p.ChangeParent, p.ChangeChild)
	return m
}

func unmarshalProduct(n node.Node, f map[string]interface{}, arena map[string]node.Node) error {
	p := n.(*node.Product)
	// Setters are called before the commit flag is restored, since a
	// committed product would otherwise reject its own archived scalar
	// values.
	if v, ok := stringField(f, "title"); ok {
		_ = p.SetTitle(v)
	}
	if v, ok := stringField(f, "description"); ok {
		_ = p.SetDescription(v)
	}
	resolveCommitableOverlay(f, arena, &p.Committed, &p.ChangeParent, &p.ChangeChild)
	return nil
}

func marshalRequirement(n node.Node) map[string]interface{} {
	r := n.(*node.Requirement)
	m := map[string]interface{}{"title": r.Title(), "text": r.Text(), "functional": r.Functional()}
	commitableOverlayFields(m, r.ChangeParent, r.ChangeChild)
	return m
}

func unmarshalRequirement(n node.Node, f map[string]interface{}, arena map[string]node.Node) error {
	r := n.(*node.Requirement)
	if v, ok := stringField(f, "title"); ok {
		_ = r.SetTitle(v)
	}
	if v, ok := stringField(f, "text"); ok {
		_ = r.SetText(v)
	}
	_ = r.SetFunctional(boolField(f, "functional"))
	resolveCommitableOverlay(f, arena, &r.Committed, &r.ChangeParent, &r.ChangeChild)
	return nil
}

func marshalStory(n node.Node) map[string]interface{} {
	s := n.(*node.Story)
	m := map[string]interface{}{"title": s.Title(), "goal": s.Goal(), "benefit": s.Benefit()}
	commitableOverlayFields(m, s.ChangeParent, s.ChangeChild)
	return m
}

func unmarshalStory(n node.Node, f map[string]interface{}, arena map[string]node.Node) error {
	s := n.(*node.Story)
	if v, ok := stringField(f, "title"); ok {
		_ = s.SetTitle(v)
	}
	if v, ok := stringField(f, "goal"); ok {
		_ = s.SetGoal(v)
	}
	if v, ok := stringField(f, "benefit"); ok {
		_ = s.SetBenefit(v)
	}
	resolveCommitableOverlay(f, arena, &s.Committed, &s.ChangeParent, &s.ChangeChild)
	return nil
}

func marshalUseCase(n node.Node) map[string]interface{} {
	u := n.(*node.UseCase)
	m := map[string]interface{}{"name": u.Name()}
	commitableOverlayFields(m, u.ChangeParent, u.ChangeChild)
	return m
}

func unmarshalUseCase(n node.Node, f map[string]interface{}, arena map[string]node.Node) error {
	u := n.(*node.UseCase)
	if v, ok := stringField(f, "name"); ok {
		_ = u.SetName(v)
	}
	resolveCommitableOverlay(f, arena, &u.Committed, &u.ChangeParent, &u.ChangeChild)
	return nil
}

func marshalText(n node.Node) map[string]interface{} {
	t := n.(*node.Text)
	return map[string]interface{}{"text": t.Text()}
}

func unmarshalText(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	t := n.(*node.Text)
	if v, ok := stringField(f, "text"); ok {
		t.SetText(v)
	}
	return nil
}

func marshalCompleted(n node.Node) map[string]interface{} {
	c := n.(*node.Completed)
	return map[string]interface{}{"description": c.Description()}
}

func unmarshalCompleted(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	c := n.(*node.Completed)
	if v, ok := stringField(f, "description"); ok {
		c.SetDescription(v)
	}
	return nil
}

func marshalKeyValue(n node.Node) map[string]interface{} {
	k := n.(*node.KeyValue)
	return map[string]interface{}{"key": k.Key(), "value": k.Value()}
}

func unmarshalKeyValue(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	k := n.(*node.KeyValue)
	if v, ok := stringField(f, "key"); ok {
		k.SetKey(v)
	}
	if v, ok := stringField(f, "value"); ok {
		k.SetValue(v)
	}
	return nil
}

func marshalTimeEstimate(n node.Node) map[string]interface{} {
	t := n.(*node.TimeEstimate)
	m := map[string]interface{}{"text": t.Text(), "estimate": t.Estimate(), "started": t.Started()}
	if !t.Start().IsZero() {
		m["start"] = t.Start().Format(time.RFC3339)
	}
	return m
}

func unmarshalTimeEstimate(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	t := n.(*node.TimeEstimate)
	if v, ok := stringField(f, "text"); ok {
		t.SetText(v)
	}
	if v, ok := f["estimate"].(float64); ok {
		t.SetEstimate(int64(v))
	}
	t.SetStarted(boolField(f, "started"))
	if v, ok := stringField(f, "start"); ok {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("%w: time_estimate.start: %v", ErrDeserialization, err)
		}
		t.SetStart(parsed)
	}
	return nil
}

func marshalEffort(n node.Node) map[string]interface{} {
	e := n.(*node.Effort)
	return map[string]interface{}{"text": e.Text(), "effort": e.Effort()}
}

func unmarshalEffort(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	e := n.(*node.Effort)
	if v, ok := stringField(f, "text"); ok {
		e.SetText(v)
	}
	if v, ok := f["effort"].(float64); ok {
		e.SetEffort(int64(v))
	}
	return nil
}

func marshalRole(n node.Node) map[string]interface{} {
	r := n.(*node.Role)
	return map[string]interface{}{"who": r.Who()}
}

func unmarshalRole(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	r := n.(*node.Role)
	if v, ok := stringField(f, "who"); ok {
		r.SetWho(v)
	}
	return nil
}

func marshalActor(n node.Node) map[string]interface{} {
	a := n.(*node.Actor)
	return map[string]interface{}{"actor": a.Actor()}
}

func unmarshalActor(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	a := n.(*node.Actor)
	if v, ok := stringField(f, "actor"); ok {
		a.SetActor(v)
	}
	return nil
}

func marshalGoal(n node.Node) map[string]interface{} {
	g := n.(*node.Goal)
	m := map[string]interface{}{
		"action":               g.Action(),
		"outcome":              g.Outcome(),
		"context":              g.Context(),
		"targetDateConfidence": g.TargetDateConfidence(),
		"alignment":            g.Alignment(),
	}
	if !g.TargetDate().IsZero() {
		m["targetDate"] = g.TargetDate().Format(time.RFC3339)
	}
	return m
}

func unmarshalGoal(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	g := n.(*node.Goal)
	if v, ok := stringField(f, "action"); ok {
		g.SetAction(v)
	}
	if v, ok := stringField(f, "outcome"); ok {
		g.SetOutcome(v)
	}
	if v, ok := stringField(f, "context"); ok {
		g.SetContext(v)
	}
	if v, ok := stringField(f, "targetDateConfidence"); ok {
		g.SetTargetDateConfidence(v)
	}
	if v, ok := stringField(f, "alignment"); ok {
		g.SetAlignment(v)
	}
	if v, ok := stringField(f, "targetDate"); ok {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("%w: goal.targetDate: %v", ErrDeserialization, err)
		}
		g.SetTargetDate(parsed)
	}
	return nil
}

func marshalPurpose(n node.Node) map[string]interface{} {
	p := n.(*node.Purpose)
	m := map[string]interface{}{
		"description":        p.Description(),
		"deadlineConfidence": p.DeadlineConfidence(),
	}
	if !p.Deadline().IsZero() {
		m["deadline"] = p.Deadline().Format(time.RFC3339)
	}
	return m
}

func unmarshalPurpose(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	p := n.(*node.Purpose)
	if v, ok := stringField(f, "description"); ok {
		p.SetDescription(v)
	}
	if v, ok := stringField(f, "deadlineConfidence"); ok {
		p.SetDeadlineConfidence(v)
	}
	if v, ok := stringField(f, "deadline"); ok {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("%w: purpose.deadline: %v", ErrDeserialization, err)
		}
		p.SetDeadline(parsed)
	}
	return nil
}

func marshalPerson(n node.Node) map[string]interface{} {
	p := n.(*node.Person)
	return map[string]interface{}{"firstName": p.FirstName(), "lastName": p.LastName()}
}

func unmarshalPerson(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	p := n.(*node.Person)
	if v, ok := stringField(f, "firstName"); ok {
		p.SetFirstName(v)
	}
	if v, ok := stringField(f, "lastName"); ok {
		p.SetLastName(v)
	}
	return nil
}

func marshalEmailAddress(n node.Node) map[string]interface{} {
	e := n.(*node.EmailAddress)
	return map[string]interface{}{"address": e.Address()}
}

func unmarshalEmailAddress(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	e := n.(*node.EmailAddress)
	if v, ok := stringField(f, "address"); ok {
		e.SetAddress(v)
	}
	return nil
}

func marshalPhoneNumber(n node.Node) map[string]interface{} {
	p := n.(*node.PhoneNumber)
	return map[string]interface{}{
		"countryCode": p.CountryCode(),
		"number":      p.Number(),
		"phoneType":   p.PhoneType(),
	}
}

func unmarshalPhoneNumber(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	p := n.(*node.PhoneNumber)
	if v, ok := stringField(f, "countryCode"); ok {
		p.SetCountryCode(v)
	}
	if v, ok := stringField(f, "number"); ok {
		p.SetNumber(v)
	}
	if v, ok := stringField(f, "phoneType"); ok {
		p.SetPhoneType(v)
	}
	return nil
}

func marshalInternationalAddress(n node.Node) map[string]interface{} {
	a := n.(*node.InternationalAddress)
	m := map[string]interface{}{
		"countryCode": a.CountryCode(),
		"locality":    a.Locality(),
		"postalCode":  a.PostalCode(),
	}
	if a.AddressLines() != nil {
		m["addressLines"] = a.AddressLines().ID().String()
	}
	return m
}

func unmarshalInternationalAddress(n node.Node, f map[string]interface{}, arena map[string]node.Node) error {
	a := n.(*node.InternationalAddress)
	if v, ok := stringField(f, "countryCode"); ok {
		a.SetCountryCode(v)
	}
	if v, ok := stringField(f, "locality"); ok {
		a.SetLocality(v)
	}
	if v, ok := stringField(f, "postalCode"); ok {
		a.SetPostalCode(v)
	}
	if id, ok := stringField(f, "addressLines"); ok {
		if ref, found := arena[id]; found {
			if t, ok := ref.(*node.Text); ok {
				a.SetAddressLines(t)
			}
		}
	}
	return nil
}

func marshalUSAddress(n node.Node) map[string]interface{} {
	a := n.(*node.USAddress)
	m := map[string]interface{}{
		"city":    a.City(),
		"state":   a.State(),
		"zipcode": a.Zipcode(),
	}
	if a.AddressLines() != nil {
		m["addressLines"] = a.AddressLines().ID().String()
	}
	return m
}

func unmarshalUSAddress(n node.Node, f map[string]interface{}, arena map[string]node.Node) error {
	a := n.(*node.USAddress)
	if v, ok := stringField(f, "city"); ok {
		a.SetCity(v)
	}
	if v, ok := stringField(f, "state"); ok {
		a.SetState(v)
	}
	if v, ok := stringField(f, "zipcode"); ok {
		a.SetZipcode(v)
	}
	if id, ok := stringField(f, "addressLines"); ok {
		if ref, found := arena[id]; found {
			if t, ok := ref.(*node.Text); ok {
				a.SetAddressLines(t)
			}
		}
	}
	return nil
}

func marshalEvent(n node.Node) map[string]interface{} {
	e := n.(*node.Event)
	return map[string]interface{}{"name": e.Name(), "description": e.Description()}
}

func unmarshalEvent(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	e := n.(*node.Event)
	if v, ok := stringField(f, "name"); ok {
		e.SetName(v)
	}
	if v, ok := stringField(f, "description"); ok {
		e.SetDescription(v)
	}
	return nil
}

func marshalRecurringTodo(n node.Node) map[string]interface{} {
	r := n.(*node.RecurringTodo)
	m := map[string]interface{}{
		"description":       r.Description(),
		"recurringInterval": r.RecurringInterval(),
		"secondsFlag":       r.SecondsFlag(),
		"domFlag":           r.DomFlag(),
		"doyFlag":           r.DoyFlag(),
	}
	if !r.Created().IsZero() {
		m["created"] = r.Created().Format(time.RFC3339)
	}
	return m
}

func unmarshalRecurringTodo(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	r := n.(*node.RecurringTodo)
	if v, ok := stringField(f, "description"); ok {
		r.SetDescription(v)
	}
	if v, ok := f["recurringInterval"].(float64); ok {
		r.SetRecurringInterval(int64(v))
	}
	r.SetSecondsFlag(boolField(f, "secondsFlag"))
	r.SetDomFlag(boolField(f, "domFlag"))
	r.SetDoyFlag(boolField(f, "doyFlag"))
	if v, ok := stringField(f, "created"); ok {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("%w: recurring_todo.created: %v", ErrDeserialization, err)
		}
		r.SetCreated(parsed)
	}
	return nil
}

func marshalTodo(n node.Node) map[string]interface{} {
	t := n.(*node.Todo)
	m := map[string]interface{}{
		"description": t.Description(),
		"completed":   t.Completed(),
	}
	if !t.Created().IsZero() {
		m["created"] = t.Created().Format(time.RFC3339)
	}
	if !t.Due().IsZero() {
		m["due"] = t.Due().Format(time.RFC3339)
	}
	if !t.DateCompleted().IsZero() {
		m["dateCompleted"] = t.DateCompleted().Format(time.RFC3339)
	}
	if sf := t.SpawnedFrom(); sf != uuid.Nil {
		m["spawnedFrom"] = sf.String()
	}
	return m
}

func unmarshalTodo(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	t := n.(*node.Todo)
	if v, ok := stringField(f, "description"); ok {
		t.SetDescription(v)
	}
	t.SetCompleted(boolField(f, "completed"))
	if v, ok := stringField(f, "created"); ok {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("%w: todo.created: %v", ErrDeserialization, err)
		}
		t.SetCreated(parsed)
	}
	if v, ok := stringField(f, "due"); ok {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("%w: todo.due: %v", ErrDeserialization, err)
		}
		t.SetDue(parsed)
	}
	if v, ok := stringField(f, "dateCompleted"); ok {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("%w: todo.dateCompleted: %v", ErrDeserialization, err)
		}
		t.SetDateCompleted(parsed)
	}
	if v, ok := stringField(f, "spawnedFrom"); ok {
		id, err := parseUUID(v)
		if err != nil {
			return fmt.Errorf("%w: todo.spawnedFrom: %v", ErrDeserialization, err)
		}
		t.SetSpawnedFrom(id)
	}
	return nil
}

func marshalServerLocatorNode(n node.Node) map[string]interface{} {
	s := n.(*node.ServerLocatorNode)
	return map[string]interface{}{
		"graphUUID":    s.GraphUUID(),
		"graphTitle":   s.GraphTitle(),
		"graphAddress": s.GraphAddress(),
	}
}

func unmarshalServerLocatorNode(n node.Node, f map[string]interface{}, _ map[string]node.Node) error {
	s := n.(*node.ServerLocatorNode)
	if v, ok := stringField(f, "graphUUID"); ok {
		s.SetGraphUUID(v)
	}
	if v, ok := stringField(f, "graphTitle"); ok {
		s.SetGraphTitle(v)
	}
	if v, ok := stringField(f, "graphAddress"); ok {
		s.SetGraphAddress(v)
	}
	return nil
}
