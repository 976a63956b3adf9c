// Package features is the filterable product feature grid.
package features

import (
	"errors"
	"fmt"

	"github.com/gogetwell/website/internal/content"
)

// Category groups feature entries. All is the sentinel selecting every entry
// and is never the category of an entry itself.
type Category string

const (
	All        Category = "all"
	Engagement Category = "engagement"
	Operations Category = "operations"
	Analysis   Category = "analysis"
)

// Categories lists the selectable filters in chip order.
var Categories = []Category{All, Engagement, Operations, Analysis}

var ErrUnknownCategory = errors.New("unknown feature category")

// ParseCategory maps a query or event value to a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Label is the chip text shown for c.
func (c Category) Label() string {
	switch c {
	case All:
		return "All Features"
	case Engagement:
		return "Patient Engagement"
	case Operations:
		return "Operations"
	case Analysis:
		return "Analysis & Insights"
	}
	return string(c)
}

// Entry is a single feature card.
type Entry struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    Category `yaml:"category"`
	Color       string   `yaml:"color"`
	Icon        string   `yaml:"icon"`
}

// Catalog is the ordered, immutable list of feature entries.
type Catalog struct {
	Entries []Entry `yaml:"features"`
}

// LoadCatalog decodes the embedded feature catalog.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := content.Decode("features.yaml", &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every entry carries a concrete category and a title.
func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return errors.New("feature catalog is empty")
	}
	var errs []error
	for i, e := range c.Entries {
		if e.Title == "" {
			errs = append(errs, fmt.Errorf("feature %d: missing title", i))
		}
		switch e.Category {
		case Engagement, Operations, Analysis:
		default:
			errs = append(errs, fmt.Errorf("feature %d (%s): invalid category %q", i, e.Title, e.Category))
		}
	}
	return errors.Join(errs...)
}

// Filter returns the entries visible under sel, preserving catalog order.
func Filter(entries []Entry, sel Category) []Entry {
	if sel == All {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Category == sel {
			out = append(out, e)
		}
	}
	return out
}

// Counts reports how many entries fall under each selectable filter.
func (c *Catalog) Counts() map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, cat := range Categories {
		counts[cat] = len(Filter(c.Entries, cat))
	}
	return counts
}
