package suggest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDaysBetween(t *testing.T) {
	today := date(2024, time.June, 10)

	assert.Equal(t, 9, DaysBetween(today, date(2024, time.June, 1)))
	assert.Equal(t, 1, DaysBetween(today, date(2024, time.June, 9)))
	assert.Equal(t, 0, DaysBetween(today, today))
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	reference := time.Date(2024, time.June, 10, 23, 59, 0, 0, time.Local)
	past := time.Date(2024, time.June, 9, 0, 1, 0, 0, time.Local)
	assert.Equal(t, 1, DaysBetween(reference, past))

	// Late yesterday vs early today is still exactly one day.
	reference = time.Date(2024, time.June, 10, 0, 1, 0, 0, time.Local)
	past = time.Date(2024, time.June, 9, 23, 59, 0, 0, time.Local)
	assert.Equal(t, 1, DaysBetween(reference, past))
}

func TestDaysBetweenFutureDateIsUnbounded(t *testing.T) {
	today := date(2024, time.June, 10)
	assert.Equal(t, Unbounded, DaysBetween(today, date(2024, time.June, 11)))
	assert.Equal(t, Unbounded, DaysBetween(today, date(2025, time.January, 1)))
}

func TestDaysSince(t *testing.T) {
	today := date(2024, time.June, 10)

	assert.Equal(t, Unbounded, DaysSince(today, nil))

	eaten := date(2024, time.June, 3)
	assert.Equal(t, 7, DaysSince(today, &eaten))
}

func TestLastEatenPhrase(t *testing.T) {
	assert.Equal(t, "not eaten yet", LastEatenPhrase(Unbounded))
	assert.Equal(t, "today", LastEatenPhrase(0))
	assert.Equal(t, "yesterday", LastEatenPhrase(1))
	assert.Equal(t, "2 days ago", LastEatenPhrase(2))
	assert.Equal(t, "14 days ago", LastEatenPhrase(14))
}

func TestSuggestionPhrase(t *testing.T) {
	assert.Equal(t, "never eaten", SuggestionPhrase(Unbounded))
	assert.Equal(t, "last eaten today", SuggestionPhrase(0))
	assert.Equal(t, "last eaten yesterday", SuggestionPhrase(1))
	assert.Equal(t, "last eaten 3 days ago", SuggestionPhrase(3))
}
