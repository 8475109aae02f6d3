package suggest

import (
	"sort"
	"time"

	"github.com/cooknext/backend/internal/model"
)

// Ranked annotates a recipe with its staleness for one ranking pass. The
// annotation is recomputed from scratch on every call and never persisted.
type Ranked struct {
	Recipe         *model.Recipe
	DaysSinceEaten int
}

// Rank computes the suggestion order over recipes as of today: longest
// unvisited first (never-eaten and future-dated recipes sort before
// everything), ties broken by rating descending, then by name ascending so
// the order is a strict total order for any input. The input slice is not
// modified; an empty collection yields an empty ranking.
func Rank(recipes []*model.Recipe, today time.Time) []Ranked {
	ranked := make([]Ranked, 0, len(recipes))
	for _, r := range recipes {
		ranked = append(ranked, Ranked{
			Recipe:         r,
			DaysSinceEaten: DaysSince(today, r.LastEaten),
		})
	}

	c := model.NewNameCollator()
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.DaysSinceEaten != b.DaysSinceEaten {
			return a.DaysSinceEaten > b.DaysSinceEaten
		}
		if a.Recipe.Rating != b.Recipe.Rating {
			return a.Recipe.Rating > b.Recipe.Rating
		}
		return c.CompareString(a.Recipe.Name, b.Recipe.Name) < 0
	})
	return ranked
}
