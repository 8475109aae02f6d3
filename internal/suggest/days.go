// Package suggest implements the "what to cook next" engine: whole-day
// staleness arithmetic, the ranking order over recipes, and progressive
// disclosure of the ranked list. Everything here is pure and synchronous.
package suggest

import (
	"fmt"
	"math"
	"time"
)

// Unbounded is the staleness of a recipe that has never been eaten. A
// last-eaten date in the future also reports Unbounded: a future date must
// not read as "recently eaten" and suppress the recipe from suggestions.
const Unbounded = math.MaxInt

const dayMillis = 24 * 60 * 60 * 1000

// startOfDay truncates t to midnight of its local calendar day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole number of calendar days from past to
// reference. Both inputs are normalized to midnight first, so time-of-day
// never leaks into the result. If past is chronologically after reference
// the result is Unbounded rather than a negative count.
func DaysBetween(reference, past time.Time) int {
	diff := startOfDay(reference).Sub(startOfDay(past)).Milliseconds()
	days := int(diff / dayMillis)
	if days < 0 {
		return Unbounded
	}
	return days
}

// DaysSince is DaysBetween with an optional last-eaten date; nil means the
// recipe has never been eaten.
func DaysSince(today time.Time, lastEaten *time.Time) int {
	if lastEaten == nil {
		return Unbounded
	}
	return DaysBetween(today, *lastEaten)
}

// LastEatenPhrase renders a day count for the recipe detail view.
func LastEatenPhrase(days int) string {
	switch {
	case days == Unbounded:
		return "not eaten yet"
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// SuggestionPhrase renders the same day count for the suggestion view.
func SuggestionPhrase(days int) string {
	switch {
	case days == Unbounded:
		return "never eaten"
	case days == 0:
		return "last eaten today"
	case days == 1:
		return "last eaten yesterday"
	default:
		return fmt.Sprintf("last eaten %d days ago", days)
	}
}
