package suggest

// DefaultPageSize is the length of the short suggestion list shown before
// the user reveals the full ranking.
const DefaultPageSize = 5

// Page is the visible portion of a ranked suggestion list. RemainingCount
// tells the caller whether a "show more" affordance is needed.
type Page struct {
	Visible        []Ranked
	RemainingCount int
}

// Paginate cuts the ranked list down to its visible prefix. With revealAll
// set the whole list is visible and nothing remains. pageSize values below
// one fall back to DefaultPageSize.
func Paginate(ranked []Ranked, revealAll bool, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if revealAll || len(ranked) <= pageSize {
		return Page{Visible: ranked, RemainingCount: 0}
	}
	return Page{
		Visible:        ranked[:pageSize],
		RemainingCount: len(ranked) - pageSize,
	}
}
