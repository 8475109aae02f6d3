package types

// LoginRequest represents the request body for the login endpoint
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// CreateRecipeRequest represents the request body for creating a recipe.
// The last-eaten date is deliberately absent: new recipes always start as
// "never eaten" and the date changes only through log-meal or the explicit
// date-correction endpoint.
type CreateRecipeRequest struct {
	Name         string   `json:"name" binding:"required"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Rating       int      `json:"rating"`
}

// UpdateRecipeRequest represents the request body for the edit path. Only
// these fields may change through it; id and last-eaten date never do.
// Pointers distinguish "leave unchanged" from explicit values.
type UpdateRecipeRequest struct {
	Name         *string   `json:"name"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	Rating       *int      `json:"rating"`
}

// SetLastEatenRequest represents the request body for the date-correction
// endpoint. Date is a calendar date in YYYY-MM-DD form; null clears the
// record back to "never eaten". Future dates are tolerated here; the
// ranking engine treats them as never eaten.
type SetLastEatenRequest struct {
	Date *string `json:"date"`
}

// SetExpandedRequest represents the request body for the per-recipe
// "details expanded" display flag.
type SetExpandedRequest struct {
	Expanded bool `json:"expanded"`
}
