// Package schema holds the table-creation DDL for the graph store.
// Table creation itself is named in the specification's external
// interfaces as column semantics the codecs rely on, not as a subsystem
// of the hard engineering; Bootstrap exists so tests and the
// "graphserver migrate" command have a single place that creates them,
// not as a migration-versioning system.
package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Statements is the ordered list of CREATE TABLE statements. Order
// matters only in that it reads top-to-bottom the same way §6 of the
// schema does; there are no foreign keys for the database to enforce
// (referential integrity at the store is an explicit non-goal).
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS node (
		id UUID PRIMARY KEY,
		kind_name VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS node_associations (
		id UUID NOT NULL,
		neighbor UUID NOT NULL,
		direction VARCHAR NOT NULL CHECK (direction IN ('up', 'down'))
	)`,
	`CREATE INDEX IF NOT EXISTS node_associations_id_idx ON node_associations (id)`,
	`CREATE INDEX IF NOT EXISTS node_associations_neighbor_idx ON node_associations (neighbor)`,

	`CREATE TABLE IF NOT EXISTS organization (id UUID PRIMARY KEY, locked BOOLEAN, name VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS product (id UUID PRIMARY KEY, title VARCHAR, description VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS project (id UUID PRIMARY KEY, name VARCHAR, description VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS requirement (id UUID PRIMARY KEY, title VARCHAR, text VARCHAR, functional BOOLEAN)`,
	`CREATE TABLE IF NOT EXISTS story (id UUID PRIMARY KEY, title VARCHAR, goal VARCHAR, benefit VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS use_case (id UUID PRIMARY KEY, name VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS text (id UUID PRIMARY KEY, text VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS completed (id UUID PRIMARY KEY, description VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS keyvalue (id UUID PRIMARY KEY, key VARCHAR, value VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS time_estimate (id UUID PRIMARY KEY, text VARCHAR, estimate BIGINT, started BOOLEAN, start TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS effort (id UUID PRIMARY KEY, text VARCHAR, effort BIGINT)`,
	`CREATE TABLE IF NOT EXISTS role (id UUID PRIMARY KEY, who VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS actor (id UUID PRIMARY KEY, actor VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS goal (
		id UUID PRIMARY KEY, action VARCHAR, outcome VARCHAR, context VARCHAR,
		target_date TIMESTAMP, target_date_confidence VARCHAR, alignment VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS purpose (id UUID PRIMARY KEY, description VARCHAR, deadline TIMESTAMP, deadline_confidence VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS person (id UUID PRIMARY KEY, first_name VARCHAR, last_name VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS email_address (id UUID PRIMARY KEY, address VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS phone_number (id UUID PRIMARY KEY, countrycode VARCHAR, number VARCHAR, phone_type VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS international_address (
		id UUID PRIMARY KEY, country_code VARCHAR, address_lines UUID, locality VARCHAR, postal_code VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS us_address (id UUID PRIMARY KEY, address_lines UUID, city VARCHAR, state VARCHAR, zipcode VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS event (id UUID PRIMARY KEY, name VARCHAR, description VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS graph_node (id UUID PRIMARY KEY, title VARCHAR)`,
	`CREATE TABLE IF NOT EXISTS recurring_todo (
		id UUID PRIMARY KEY, description VARCHAR, created TIMESTAMP,
		recurring_interval BIGINT, seconds_flag BOOLEAN, dom_flag BOOLEAN, doy_flag BOOLEAN
	)`,
	`CREATE TABLE IF NOT EXISTS todo (
		id UUID PRIMARY KEY, description VARCHAR, created TIMESTAMP, due TIMESTAMP,
		completed BOOLEAN, date_completed TIMESTAMP, spawned_from UUID
	)`,
}

// Bootstrap creates every table the codecs need, idempotently.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range Statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: bootstrap: %w", err)
		}
	}
	return nil
}
