package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cooknext/backend/internal/model"
	"github.com/cooknext/backend/internal/types"
)

// RecipeService is the durable store facade for recipe records
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns every recipe ordered by name ascending. The ordering
// is collation-aware, so it happens in memory rather than in SQL.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreRead, err)
	}

	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	model.SortByName(result)
	return result, nil
}

// SearchRecipes returns recipes matching the query. On postgres the result
// is ordered by embedding distance; other dialects fall back to a plain
// keyword match ordered by name.
func (s *RecipeService) SearchRecipes(ctx context.Context, query string) ([]*model.Recipe, error) {
	if strings.TrimSpace(query) == "" {
		return s.ListRecipes(ctx)
	}

	like := "%" + strings.ToLower(query) + "%"
	dbQuery := s.db.WithContext(ctx)

	if s.db.Dialector.Name() == "postgres" {
		vec := GenerateEmbedding(query)
		dbQuery = dbQuery.
			Where("LOWER(name) LIKE ? OR LOWER(ingredients::text) LIKE ?", like, like).
			Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
			})
	} else {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(ingredients) LIKE ?", like, like)
	}

	var recipes []model.Recipe
	if err := dbQuery.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreRead, err)
	}

	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	if s.db.Dialector.Name() != "postgres" {
		model.SortByName(result)
	}
	return result, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreRead, err)
	}
	return &recipe, nil
}

// CreateRecipe creates a new recipe. The store assigns the identifier and
// the record always starts as never eaten.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*model.Recipe, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	recipe := model.Recipe{
		Name:         name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Rating:       req.Rating,
		Embedding:    GenerateEmbedding(name + " " + strings.Join(req.Ingredients, " ")),
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return &recipe, nil
}

// UpdateRecipe applies a partial edit. Only name, ingredients,
// instructions and rating can change through this path.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*model.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		updates["name"] = name
		recipe.Name = name
	}
	if req.Ingredients != nil {
		updates["ingredients"] = model.JSONBStringArray(*req.Ingredients)
		recipe.Ingredients = *req.Ingredients
	}
	if req.Instructions != nil {
		updates["instructions"] = model.JSONBStringArray(*req.Instructions)
	}
	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return nil, err
		}
		updates["rating"] = *req.Rating
	}
	if len(updates) == 0 {
		return recipe, nil
	}

	if req.Name != nil || req.Ingredients != nil {
		updates["embedding"] = GenerateEmbedding(
			recipe.Name + " " + strings.Join(recipe.Ingredients, " "))
	}

	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return s.GetRecipe(ctx, id)
}

// SetLastEaten corrects the last-eaten date directly. Nil clears the
// record back to never eaten. Future dates are stored as given; the
// ranking engine tolerates them.
func (s *RecipeService) SetLastEaten(ctx context.Context, id uuid.UUID, date *time.Time) (*model.Recipe, error) {
	if _, err := s.GetRecipe(ctx, id); err != nil {
		return nil, err
	}

	var value interface{}
	if date != nil {
		day := toCalendarDay(*date)
		value = &day
	}
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Update("last_eaten", value).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return s.GetRecipe(ctx, id)
}

// LogMeal marks the recipe as eaten on the current calendar day
func (s *RecipeService) LogMeal(ctx context.Context, id uuid.UUID, now time.Time) (*model.Recipe, error) {
	return s.SetLastEaten(ctx, id, &now)
}

// DeleteRecipe deletes a recipe permanently
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetRecipe(ctx, id); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return nil
}

// SetImageURL records the stored photo location for a recipe
func (s *RecipeService) SetImageURL(ctx context.Context, id uuid.UUID, url string) (*model.Recipe, error) {
	if _, err := s.GetRecipe(ctx, id); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Update("image_url", url).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return s.GetRecipe(ctx, id)
}

func validateRating(rating int) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}
	return nil
}

func toCalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
