package node

import "reqgraph.dev/kind"

type Person struct {
	Base
	firstName string
	lastName  string
}

func NewPerson() *Person {
	return &Person{Base: NewBase(kind.Person)}
}

func (p *Person) FirstName() string { return p.firstName }
func (p *Person) LastName() string  { return p.lastName }

func (p *Person) SetFirstName(v string) {
	p.firstName = v
	p.markChanged()
}

func (p *Person) SetLastName(v string) {
	p.lastName = v
	p.markChanged()
}

type EmailAddress struct {
	Base
	address string
}

func NewEmailAddress() *EmailAddress {
	return &EmailAddress{Base: NewBase(kind.EmailAddress)}
}

func (e *EmailAddress) Address() string { return e.address }

func (e *EmailAddress) SetAddress(v string) {
	e.address = v
	e.markChanged()
}

type PhoneNumber struct {
	Base
	countryCode string
	number      string
	phoneType   string
}

func NewPhoneNumber() *PhoneNumber {
	return &PhoneNumber{Base: NewBase(kind.PhoneNumber)}
}

func (p *PhoneNumber) CountryCode() string { return p.countryCode }
func (p *PhoneNumber) Number() string      { return p.number }
func (p *PhoneNumber) PhoneType() string   { return p.phoneType }

func (p *PhoneNumber) SetCountryCode(v string) {
	p.countryCode = v
	p.markChanged()
}

func (p *PhoneNumber) SetNumber(v string) {
	p.number = v
	p.markChanged()
}

func (p *PhoneNumber) SetPhoneType(v string) {
	p.phoneType = v
	p.markChanged()
}

// InternationalAddress stores the identifier of its address_lines head
// Text node as a column, per the schema, but also keeps the live
// reference so traversal and serialization reach the chain without a
// second store round-trip; the store codec is responsible for keeping
// the column and the node_associations edge consistent with each
// other on every write.
type InternationalAddress struct {
	Base
	countryCode  string
	locality     string
	postalCode   string
	addressLines *Text
}

func NewInternationalAddress() *InternationalAddress {
	return &InternationalAddress{Base: NewBase(kind.InternationalAddress)}
}

func (a *InternationalAddress) CountryCode() string { return a.countryCode }
func (a *InternationalAddress) Locality() string    { return a.locality }
func (a *InternationalAddress) PostalCode() string  { return a.postalCode }
func (a *InternationalAddress) AddressLines() *Text { return a.addressLines }

func (a *InternationalAddress) SetCountryCode(v string) {
	a.countryCode = v
	a.markChanged()
}

func (a *InternationalAddress) SetLocality(v string) {
	a.locality = v
	a.markChanged()
}

func (a *InternationalAddress) SetPostalCode(v string) {
	a.postalCode = v
	a.markChanged()
}

func (a *InternationalAddress) SetAddressLines(v *Text) {
	a.addressLines = v
	a.markChanged()
}

func (a *InternationalAddress) ExtraRefs() []Node {
	if a.addressLines == nil {
		return nil
	}
	return []Node{a.addressLines}
}

// USAddress carries the same addressLines overlay as InternationalAddress.
type USAddress struct {
	Base
	city         string
	state        string
	zipcode      string
	addressLines *Text
}

func NewUSAddress() *USAddress {
	return &USAddress{Base: NewBase(kind.USAddress)}
}

func (a *USAddress) City() string       { return a.city }
func (a *USAddress) State() string      { return a.state }
func (a *USAddress) Zipcode() string    { return a.zipcode }
func (a *USAddress) AddressLines() *Text { return a.addressLines }

func (a *USAddress) SetCity(v string) {
	a.city = v
	a.markChanged()
}

func (a *USAddress) SetState(v string) {
	a.state = v
	a.markChanged()
}

func (a *USAddress) SetZipcode(v string) {
	a.zipcode = v
	a.markChanged()
}

func (a *USAddress) SetAddressLines(v *Text) {
	a.addressLines = v
	a.markChanged()
}

func (a *USAddress) ExtraRefs() []Node {
	if a.addressLines == nil {
		return nil
	}
	return []Node{a.addressLines}
}
