package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"reqgraph.dev/node"
)

type personCodec struct{}

func (personCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	p := n.(*node.Person)
	_, err := tx.Exec(ctx, `INSERT INTO person (id, first_name, last_name) VALUES ($1, $2, $3)`,
		p.ID(), p.FirstName(), p.LastName())
	return err
}

func (personCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	p := n.(*node.Person)
	_, err := tx.Exec(ctx, `UPDATE person SET first_name = $2, last_name = $3 WHERE id = $1`,
		p.ID(), p.FirstName(), p.LastName())
	return err
}

func (personCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	p := n.(*node.Person)
	var firstName, lastName string
	err := tx.QueryRow(ctx, `SELECT first_name, last_name FROM person WHERE id = $1`, p.ID()).
		Scan(&firstName, &lastName)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load person: %w", err)
	}
	p.SetFirstName(firstName)
	p.SetLastName(lastName)
	return true, nil
}

func (personCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM person WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove person row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type emailAddressCodec struct{}

func (emailAddressCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	e := n.(*node.EmailAddress)
	_, err := tx.Exec(ctx, `INSERT INTO email_address (id, address) VALUES ($1, $2)`, e.ID(), e.Address())
	return err
}

func (emailAddressCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	e := n.(*node.EmailAddress)
	_, err := tx.Exec(ctx, `UPDATE email_address SET address = $2 WHERE id = $1`, e.ID(), e.Address())
	return err
}

func (emailAddressCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	e := n.(*node.EmailAddress)
	var address string
	err := tx.QueryRow(ctx, `SELECT address FROM email_address WHERE id = $1`, e.ID()).Scan(&address)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load email_address: %w", err)
	}
	e.SetAddress(address)
	return true, nil
}

func (emailAddressCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM email_address WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove email_address row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type phoneNumberCodec struct{}

func (phoneNumberCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	p := n.(*node.PhoneNumber)
	_, err := tx.Exec(ctx, `INSERT INTO phone_number (id, countrycode, number, phone_type) VALUES ($1, $2, $3, $4)`,
		p.ID(), p.CountryCode(), p.Number(), p.PhoneType())
	return err
}

func (phoneNumberCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	p := n.(*node.PhoneNumber)
	_, err := tx.Exec(ctx, `UPDATE phone_number SET countrycode = $2, number = $3, phone_type = $4 WHERE id = $1`,
		p.ID(), p.CountryCode(), p.Number(), p.PhoneType())
	return err
}

func (phoneNumberCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	p := n.(*node.PhoneNumber)
	var countryCode, number, phoneType string
	err := tx.QueryRow(ctx, `SELECT countrycode, number, phone_type FROM phone_number WHERE id = $1`, p.ID()).
		Scan(&countryCode, &number, &phoneType)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load phone_number: %w", err)
	}
	p.SetCountryCode(countryCode)
	p.SetNumber(number)
	p.SetPhoneType(phoneType)
	return true, nil
}

func (phoneNumberCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM phone_number WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove phone_number row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

// addressLinesID returns the identifier to store in an address_lines
// column, or nil for an address with no lines set yet.
func addressLinesID(t *node.Text) interface{} {
	if t == nil {
		return nil
	}
	return t.ID()
}

// streamAddressLinesEdge records the address_lines reference in
// node_associations too, in the same codec call that writes the
// column, so the two can never drift apart. insertNodeAndEdges/
// updateNodeAndEdges already streamed every down-link on owner, so this
// skips lines when it's already one of those to avoid a duplicate row.
func streamAddressLinesEdge(ctx context.Context, tx pgx.Tx, owner node.Node, lines *node.Text) error {
	if lines == nil {
		return nil
	}
	for _, d := range owner.Down() {
		if d.ID() == lines.ID() {
			return nil
		}
	}
	_, err := tx.Exec(ctx, `INSERT INTO node_associations (id, neighbor, direction) VALUES ($1, $2, 'down')`,
		owner.ID(), lines.ID())
	return err
}

type internationalAddressCodec struct{}

func (internationalAddressCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	a := n.(*node.InternationalAddress)
	if _, err := tx.Exec(ctx, `INSERT INTO international_address (id, country_code, address_lines, locality, postal_code)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID(), a.CountryCode(), addressLinesID(a.AddressLines()), a.Locality(), a.PostalCode()); err != nil {
		return err
	}
	return streamAddressLinesEdge(ctx, tx, a, a.AddressLines())
}

func (internationalAddressCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	a := n.(*node.InternationalAddress)
	if _, err := tx.Exec(ctx, `UPDATE international_address SET country_code = $2, address_lines = $3,
		locality = $4, postal_code = $5 WHERE id = $1`,
		a.ID(), a.CountryCode(), addressLinesID(a.AddressLines()), a.Locality(), a.PostalCode()); err != nil {
		return err
	}
	return streamAddressLinesEdge(ctx, tx, a, a.AddressLines())
}

func (internationalAddressCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	a := n.(*node.InternationalAddress)
	var countryCode, locality, postalCode string
	err := tx.QueryRow(ctx, `SELECT country_code, locality, postal_code FROM international_address WHERE id = $1`, a.ID()).
		Scan(&countryCode, &locality, &postalCode)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load international_address: %w", err)
	}
	// addressLines is not set by this load, and the Graph Factory does not
	// set it either: the head Text node comes back only as an ordinary
	// down link through node_associations.
	a.SetCountryCode(countryCode)
	a.SetLocality(locality)
	a.SetPostalCode(postalCode)
	return true, nil
}

func (internationalAddressCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM international_address WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove international_address row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}

type usAddressCodec struct{}

func (usAddressCodec) Insert(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := insertNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	a := n.(*node.USAddress)
	if _, err := tx.Exec(ctx, `INSERT INTO us_address (id, address_lines, city, state, zipcode)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID(), addressLinesID(a.AddressLines()), a.City(), a.State(), a.Zipcode()); err != nil {
		return err
	}
	return streamAddressLinesEdge(ctx, tx, a, a.AddressLines())
}

func (usAddressCodec) Update(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if err := updateNodeAndEdges(ctx, tx, n); err != nil {
		return err
	}
	a := n.(*node.USAddress)
	if _, err := tx.Exec(ctx, `UPDATE us_address SET address_lines = $2, city = $3, state = $4, zipcode = $5
		WHERE id = $1`,
		a.ID(), addressLinesID(a.AddressLines()), a.City(), a.State(), a.Zipcode()); err != nil {
		return err
	}
	return streamAddressLinesEdge(ctx, tx, a, a.AddressLines())
}

func (usAddressCodec) Load(ctx context.Context, tx pgx.Tx, n node.Node) (bool, error) {
	a := n.(*node.USAddress)
	var city, state, zipcode string
	err := tx.QueryRow(ctx, `SELECT city, state, zipcode FROM us_address WHERE id = $1`, a.ID()).
		Scan(&city, &state, &zipcode)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load us_address: %w", err)
	}
	a.SetCity(city)
	a.SetState(state)
	a.SetZipcode(zipcode)
	return true, nil
}

func (usAddressCodec) Remove(ctx context.Context, tx pgx.Tx, n node.Node) error {
	if _, err := tx.Exec(ctx, `DELETE FROM us_address WHERE id = $1`, n.ID()); err != nil {
		return fmt.Errorf("store: remove us_address row: %w", err)
	}
	return removeNodeAndEdges(ctx, tx, n.ID())
}
