// Package catalog holds the static curated content of the journey: passages
// and companion practices, each tagged with a tradition. The data is compiled
// into the binary and never changes at runtime; the package offers lookups
// only and carries no business logic.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/velichkin/innerpath/models"
)

//go:embed catalog.json
var rawCatalog []byte

// Catalog is the in-memory index over the embedded content set.
type Catalog struct {
	traditions []string
	passages   []models.Passage
	practices  []models.Practice

	passageByID          map[int]models.Passage
	passagesByTradition  map[string][]models.Passage
	practicesByTradition map[string][]models.Practice
}

type catalogFile struct {
	Traditions []string          `json:"traditions"`
	Passages   []models.Passage  `json:"passages"`
	Practices  []models.Practice `json:"practices"`
}

// New parses the embedded catalog and builds the lookup indexes.
// It fails only on a malformed or incomplete embedded file, which would be a
// build defect rather than a runtime condition.
func New() (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(rawCatalog, &file); err != nil {
		return nil, fmt.Errorf("error parsing embedded catalog: %w", err)
	}

	if len(file.Traditions) == 0 || len(file.Passages) == 0 || len(file.Practices) == 0 {
		return nil, errors.New("embedded catalog is incomplete")
	}

	c := &Catalog{
		traditions:           file.Traditions,
		passages:             file.Passages,
		practices:            file.Practices,
		passageByID:          make(map[int]models.Passage, len(file.Passages)),
		passagesByTradition:  make(map[string][]models.Passage, len(file.Traditions)),
		practicesByTradition: make(map[string][]models.Practice, len(file.Traditions)),
	}

	for _, p := range file.Passages {
		c.passageByID[p.ID] = p
		c.passagesByTradition[p.Tradition] = append(c.passagesByTradition[p.Tradition], p)
	}
	for _, p := range file.Practices {
		c.practicesByTradition[p.Tradition] = append(c.practicesByTradition[p.Tradition], p)
	}

	return c, nil
}

// Traditions returns the full ordered tradition set. This is the default for
// users who selected nothing at onboarding; the order is part of the
// rotation contract and must stay stable.
func (c *Catalog) Traditions() []string {
	out := make([]string, len(c.traditions))
	copy(out, c.traditions)
	return out
}

// HasTradition reports whether the given tradition exists in the catalog.
func (c *Catalog) HasTradition(tradition string) bool {
	_, ok := c.passagesByTradition[tradition]
	return ok
}

// PassageByID looks up a passage by its catalog ID.
func (c *Catalog) PassageByID(id int) (models.Passage, bool) {
	p, ok := c.passageByID[id]
	return p, ok
}

// PassagesByTradition returns every passage tagged with the given tradition.
// An unknown tradition yields an empty slice.
func (c *Catalog) PassagesByTradition(tradition string) []models.Passage {
	return c.passagesByTradition[tradition]
}

// PracticesByTradition returns every practice tagged with the given tradition.
func (c *Catalog) PracticesByTradition(tradition string) []models.Practice {
	return c.practicesByTradition[tradition]
}

// Passages returns the complete passage list in catalog order.
func (c *Catalog) Passages() []models.Passage {
	out := make([]models.Passage, len(c.passages))
	copy(out, c.passages)
	return out
}

// Practices returns the complete practice list in catalog order.
func (c *Catalog) Practices() []models.Practice {
	out := make([]models.Practice, len(c.practices))
	copy(out, c.practices)
	return out
}
