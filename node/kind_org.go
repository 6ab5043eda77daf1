package node

import "reqgraph.dev/kind"

// Organization is the root-most kind in the usual org/project/product
// chain: "GCSE,Inc" connect Project connect Product connect Requirement.
type Organization struct {
	Base
	locked bool
	name   string
}

func NewOrganization() *Organization {
	return &Organization{Base: NewBase(kind.Organization)}
}

func (o *Organization) Locked() bool { return o.locked }
func (o *Organization) Name() string { return o.name }

func (o *Organization) SetLocked(v bool) {
	o.locked = v
	o.markChanged()
}

func (o *Organization) SetName(v string) {
	o.name = v
	o.markChanged()
}

// Project sits between Organization and Product in the usual chain. It
// does not carry the commitable overlay.
type Project struct {
	Base
	name        string
	description string
}

func NewProject() *Project {
	return &Project{Base: NewBase(kind.Project)}
}

func (p *Project) Name() string        { return p.name }
func (p *Project) Description() string { return p.description }

func (p *Project) SetName(v string) {
	p.name = v
	p.markChanged()
}

func (p *Project) SetDescription(v string) {
	p.description = v
	p.markChanged()
}

// Product carries the commitable overlay: once committed, Title and
// Description reject mutation, and GetChangeNode spawns a same-kind
// change child for a caller that needs to keep editing.
type Product struct {
	Base
	Commitable
	title       string
	description string
}

func NewProduct() *Product {
	return &Product{Base: NewBase(kind.Product)}
}

func (p *Product) Title() string       { return p.title }
func (p *Product) Description() string { return p.description }

func (p *Product) SetTitle(v string) error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	p.title = v
	p.markChanged()
	return nil
}

func (p *Product) SetDescription(v string) error {
	if err := p.guardMutable(); err != nil {
		return err
	}
	p.description = v
	p.markChanged()
	return nil
}

func (p *Product) DiscardChange() error { return p.discardChange() }
func (p *Product) ExtraRefs() []Node    { return p.extraRefs() }

// GetChangeNode returns the current change child, spawning one as a
// clone of p's current scalar state the first time it is called on a
// committed product with no change child yet.
func (p *Product) GetChangeNode() *Product {
	if p.ChangeChild != nil {
		if cc, ok := p.ChangeChild.(*Product); ok {
			return cc
		}
		return nil
	}
	if !p.Committed {
		return nil
	}
	nc := NewProduct()
	nc.Init()
	nc.title = p.title
	nc.description = p.description
	nc.ChangeParent = p
	p.ChangeChild = nc
	p.markChanged()
	return nc
}
