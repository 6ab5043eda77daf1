package store

import (
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// graphNodeRow is a narrow GORM projection over the graph_node table:
// just enough to list known graphs, not a general-purpose model for
// the kind. The rest of the store uses pgx directly; this is the one
// place GORM earns its keep, mirroring how a thin read-only listing is
// often left on the ORM side while hot-path writes go through the
// lower-level driver.
type graphNodeRow struct {
	ID    uuid.UUID `gorm:"column:id;primaryKey"`
	Title string    `gorm:"column:title"`
}

func (graphNodeRow) TableName() string { return "graph_node" }

// Locator is the (identifier, title) pair the REST listing endpoint
// turns into a graphUuid/graphTitle/graphAddress record by attaching a
// request-derived resource URL.
type Locator struct {
	GraphUUID  uuid.UUID
	GraphTitle string
}

// OpenGORM opens a GORM connection to the same database, used only for
// the locator listing query.
func OpenGORM(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Locators lists every known GraphNode as a locator pair.
func Locators(gdb *gorm.DB) ([]Locator, error) {
	var rows []graphNodeRow
	if err := gdb.Find(&rows).Error; err != nil {
		return nil, err
	}
	locators := make([]Locator, 0, len(rows))
	for _, r := range rows {
		locators = append(locators, Locator{GraphUUID: r.ID, GraphTitle: r.Title})
	}
	return locators, nil
}
