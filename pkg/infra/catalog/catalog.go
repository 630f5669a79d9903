package catalog

import (
	_ "embed"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

//go:embed club.toml
var embeddedCatalog []byte

type document struct {
	Club     model.ClubInfo   `toml:"club"`
	Events   []model.Event    `toml:"events"`
	Aircraft []model.Aircraft `toml:"aircraft"`
}

// Catalog holds the club data decoded at startup. It is never modified afterwards.
type Catalog struct {
	doc document
}

// Load decodes the catalog compiled into the binary
func Load() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Parse decodes a catalog from TOML data
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode club catalog")
	}

	if doc.Club.Name == "" {
		return nil, goerr.New("club catalog has no club name")
	}

	seen := make(map[int]struct{}, len(doc.Events))
	for _, ev := range doc.Events {
		if _, ok := seen[ev.ID]; ok {
			return nil, goerr.New("duplicated event id in club catalog", goerr.V("id", ev.ID))
		}
		seen[ev.ID] = struct{}{}
	}

	return &Catalog{doc: doc}, nil
}

// Club returns a copy of the club information
func (c *Catalog) Club() model.ClubInfo {
	club := c.doc.Club
	club.Activities = append([]string(nil), c.doc.Club.Activities...)
	return club
}

// Events returns a copy of the events in catalog order
func (c *Catalog) Events() []model.Event {
	return append([]model.Event(nil), c.doc.Events...)
}

// Aircraft returns a copy of the recommended aircraft in catalog order
func (c *Catalog) Aircraft() []model.Aircraft {
	return append([]model.Aircraft(nil), c.doc.Aircraft...)
}
