package api

import (
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cooknext/backend/internal/middleware"
	"github.com/cooknext/backend/internal/model"
	"github.com/cooknext/backend/internal/service"
	"github.com/cooknext/backend/internal/suggest"
	"github.com/cooknext/backend/internal/types"
)

const maxPhotoBytes = 10 << 20

type RecipeHandler struct {
	recipeService *service.RecipeService
	viewState     ViewState
	imageService  *service.ImageService
}

// NewRecipeHandler creates the handler set for recipe records. The image
// service may be nil when photo storage is not configured.
func NewRecipeHandler(recipeService *service.RecipeService, viewState ViewState, imageService *service.ImageService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		viewState:     viewState,
		imageService:  imageService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id/expanded", h.SetExpanded)
		recipes.POST("", middleware.AuthMiddleware(validator), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(validator), h.UpdateRecipe)
		recipes.PUT("/:id/last-eaten", middleware.AuthMiddleware(validator), h.SetLastEaten)
		recipes.POST("/:id/log-meal", middleware.AuthMiddleware(validator), h.LogMeal)
		recipes.POST("/:id/photo", middleware.AuthMiddleware(validator), h.UploadPhoto)
		recipes.DELETE("/:id", middleware.AuthMiddleware(validator), h.DeleteRecipe)
	}
}

// recipeView decorates a record with its rendered staleness and display
// state for the detail/list presentation.
type recipeView struct {
	*model.Recipe
	LastEatenPhrase string `json:"last_eaten_phrase"`
	Expanded        bool   `json:"expanded"`
}

func (h *RecipeHandler) view(recipe *model.Recipe, expanded map[string]bool) recipeView {
	days := suggest.DaysSince(time.Now(), recipe.LastEaten)
	return recipeView{
		Recipe:          recipe,
		LastEatenPhrase: suggest.LastEatenPhrase(days),
		Expanded:        expanded[recipe.ID.String()],
	}
}

// expandedIDs fetches display state, tolerating view-state failures: the
// listing must still render when redis is down.
func (h *RecipeHandler) expandedIDs(c *gin.Context) map[string]bool {
	expanded, err := h.viewState.ExpandedIDs(c.Request.Context())
	if err != nil {
		log.Printf("view state unavailable: %v", err)
		return map[string]bool{}
	}
	return expanded
}

// resetRevealAll collapses the suggestion list after a successful
// mutation. A view-state failure is logged, not surfaced: the store
// mutation already happened.
func (h *RecipeHandler) resetRevealAll(c *gin.Context) {
	if err := h.viewState.SetRevealAll(c.Request.Context(), false); err != nil {
		log.Printf("failed to reset reveal-all state: %v", err)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var (
		recipes []*model.Recipe
		err     error
	)
	if q := c.Query("q"); q != "" {
		recipes, err = h.recipeService.SearchRecipes(c.Request.Context(), q)
	} else {
		recipes, err = h.recipeService.ListRecipes(c.Request.Context())
	}
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to fetch recipes"})
		return
	}

	expanded := h.expandedIDs(c)
	views := make([]recipeView, len(recipes))
	for i, r := range recipes {
		views[i] = h.view(r, expanded)
	}

	c.JSON(http.StatusOK, gin.H{"recipes": views})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.view(recipe, h.expandedIDs(c)))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.resetRevealAll(c)
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.resetRevealAll(c)
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) SetLastEaten(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.SetLastEatenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.ParseInLocation("2006-01-02", *req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
			return
		}
		date = &parsed
	}

	recipe, err := h.recipeService.SetLastEaten(c.Request.Context(), id, date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.resetRevealAll(c)
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) LogMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.LogMeal(c.Request.Context(), id, time.Now())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.resetRevealAll(c)
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	// The record is gone, so its display state goes too.
	if err := h.viewState.SetExpanded(c.Request.Context(), id.String(), false); err != nil {
		log.Printf("failed to clear expanded state for %s: %v", id, err)
	}
	h.resetRevealAll(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"id":      id.String(),
	})
}

func (h *RecipeHandler) SetExpanded(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.SetExpandedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.viewState.SetExpanded(c.Request.Context(), id.String(), req.Expanded); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save display state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id.String(), "expanded": req.Expanded})
}

func (h *RecipeHandler) UploadPhoto(c *gin.Context) {
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo storage not configured"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo exceeds the 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is not an image"})
		return
	}

	url, err := h.imageService.UploadRecipePhoto(c.Request.Context(), data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		return
	}

	recipe, err := h.recipeService.SetImageURL(c.Request.Context(), id, url)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.resetRevealAll(c)
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}
