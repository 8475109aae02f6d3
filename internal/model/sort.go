package model

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewNameCollator returns the collator used for every name ordering in the
// app: case-insensitive English collation. Collators carry an internal
// buffer, so each sorting pass gets its own.
func NewNameCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}

// SortByName orders recipes by name ascending. This is the display-order
// invariant for recipe listings, independent of suggestion order.
func SortByName(recipes []*Recipe) {
	c := NewNameCollator()
	sort.SliceStable(recipes, func(i, j int) bool {
		return c.CompareString(recipes[i].Name, recipes[j].Name) < 0
	})
}
