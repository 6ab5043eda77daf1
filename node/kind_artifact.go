package node

import "reqgraph.dev/kind"

// Requirement, Story and UseCase all carry the commitable overlay
// alongside Product; each spawns its own same-kind change node rather
// than sharing a generic implementation, since the clone step touches
// each kind's own scalar fields.

type Requirement struct {
	Base
	Commitable
	title      string
	text       string
	functional bool
}

func NewRequirement() *Requirement {
	return &Requirement{Base: NewBase(kind.Requirement)}
}

func (r *Requirement) Title() string    { return r.title }
func (r *Requirement) Text() string     { return r.text }
func (r *Requirement) Functional() bool { return r.functional }

func (r *Requirement) SetTitle(v string) error {
	if err := r.guardMutable(); err != nil {
		return err
	}
	r.title = v
	r.markChanged()
	return nil
}

func (r *Requirement) SetText(v string) error {
	if err := r.guardMutable(); err != nil {
		return err
	}
	r.text = v
	r.markChanged()
	return nil
}

func (r *Requirement) SetFunctional(v bool) error {
	if err := r.guardMutable(); err != nil {
		return err
	}
	r.functional = v
	r.markChanged()
	return nil
}

func (r *Requirement) DiscardChange() error { return r.discardChange() }
func (r *Requirement) ExtraRefs() []Node    { return r.extraRefs() }

func (r *Requirement) GetChangeNode() *Requirement {
	if r.ChangeChild != nil {
		if cc, ok := r.ChangeChild.(*Requirement); ok {
			return cc
		}
		return nil
	}
	if !r.Committed {
		return nil
	}
	nc := NewRequirement()
	nc.Init()
	nc.title = r.title
	nc.text = r.text
	nc.functional = r.functional
	nc.ChangeParent = r
	r.ChangeChild = nc
	r.markChanged()
	return nc
}

type Story struct {
	Base
	Commitable
	title   string
	goal    string
	benefit string
}

func NewStory() *Story {
	return &Story{Base: NewBase(kind.Story)}
}

func (s *Story) Title() string   { return s.title }
func (s *Story) Goal() string    { return s.goal }
func (s *Story) Benefit() string { return s.benefit }

func (s *Story) SetTitle(v string) error {
	if err := s.guardMutable(); err != nil {
		return err
	}
	s.title = v
	s.markChanged()
	return nil
}

func (s *Story) SetGoal(v string) error {
	if err := s.guardMutable(); err != nil {
		return err
	}
	s.goal = v
	s.markChanged()
	return nil
}

func (s *Story) SetBenefit(v string) error {
	if err := s.guardMutable(); err != nil {
		return err
	}
	s.benefit = v
	s.markChanged()
	return nil
}

func (s *Story) DiscardChange() error { return s.discardChange() }
func (s *Story) ExtraRefs() []Node    { return s.extraRefs() }

func (s *Story) GetChangeNode() *Story {
	if s.ChangeChild != nil {
		if cc, ok := s.ChangeChild.(*Story); ok {
			return cc
		}
		return nil
	}
	if !s.Committed {
		return nil
	}
	nc := NewStory()
	nc.Init()
	nc.title = s.title
	nc.goal = s.goal
	nc.benefit = s.benefit
	nc.ChangeParent = s
	s.ChangeChild = nc
	s.markChanged()
	return nc
}

type UseCase struct {
	Base
	Commitable
	name string
}

func NewUseCase() *UseCase {
	return &UseCase{Base: NewBase(kind.UseCase)}
}

func (u *UseCase) Name() string { return u.name }

func (u *UseCase) SetName(v string) error {
	if err := u.guardMutable(); err != nil {
		return err
	}
	u.name = v
	u.markChanged()
	return nil
}

func (u *UseCase) DiscardChange() error { return u.discardChange() }
func (u *UseCase) ExtraRefs() []Node    { return u.extraRefs() }

func (u *UseCase) GetChangeNode() *UseCase {
	if u.ChangeChild != nil {
		if cc, ok := u.ChangeChild.(*UseCase); ok {
			return cc
		}
		return nil
	}
	if !u.Committed {
		return nil
	}
	nc := NewUseCase()
	nc.Init()
	nc.name = u.name
	nc.ChangeParent = u
	u.ChangeChild = nc
	u.markChanged()
	return nc
}
