package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cooknext/backend/internal/model"
	"github.com/cooknext/backend/internal/service"
	"github.com/cooknext/backend/internal/suggest"
)

type SuggestionHandler struct {
	recipeService *service.RecipeService
	viewState     ViewState
}

func NewSuggestionHandler(recipeService *service.RecipeService, viewState ViewState) *SuggestionHandler {
	return &SuggestionHandler{
		recipeService: recipeService,
		viewState:     viewState,
	}
}

func (h *SuggestionHandler) RegisterRoutes(router *gin.RouterGroup) {
	suggestions := router.Group("/suggestions")
	{
		suggestions.GET("", h.GetSuggestions)
		suggestions.POST("/reveal", h.Reveal)
	}
}

// suggestionView is one entry of the ranked suggestion list.
type suggestionView struct {
	*model.Recipe
	Staleness string `json:"staleness"`
}

// GetSuggestions recomputes the full ranking from the stored collection
// and cuts it down to the visible page. An empty collection is a valid
// "nothing to suggest" response, not an error.
func (h *SuggestionHandler) GetSuggestions(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to fetch recipes"})
		return
	}

	revealAll, err := h.viewState.RevealAll(c.Request.Context())
	if err != nil {
		// Degrade to the short list rather than failing the render.
		log.Printf("view state unavailable: %v", err)
		revealAll = false
	}

	ranked := suggest.Rank(recipes, time.Now())
	page := suggest.Paginate(ranked, revealAll, suggest.DefaultPageSize)

	visible := make([]suggestionView, len(page.Visible))
	for i, r := range page.Visible {
		visible[i] = suggestionView{
			Recipe:    r.Recipe,
			Staleness: suggest.SuggestionPhrase(r.DaysSinceEaten),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions":     visible,
		"remaining_count": page.RemainingCount,
		"total":           len(ranked),
	})
}

// Reveal expands the suggestion list until the next mutation collapses it
func (h *SuggestionHandler) Reveal(c *gin.Context) {
	if err := h.viewState.SetRevealAll(c.Request.Context(), true); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save display state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reveal_all": true})
}
