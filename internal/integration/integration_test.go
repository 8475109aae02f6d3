package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooknext/backend/internal/service"
	"github.com/cooknext/backend/internal/suggest"
	"github.com/cooknext/backend/internal/testdb"
	"github.com/cooknext/backend/internal/types"
)

// TestRecipeLifecycle drives the full flow against a real postgres store:
// create, rank, correct a date, log a meal, search, delete.
func TestRecipeLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testdb.SetupTestDB(t)
	recipes := service.NewRecipeService(db.DB)
	ctx := context.Background()

	chili, err := recipes.CreateRecipe(ctx, &types.CreateRecipeRequest{
		Name:         "Chili con Carne",
		Ingredients:  []string{"beef", "beans", "chili"},
		Instructions: []string{"brown the beef", "simmer"},
		Rating:       4,
	})
	require.NoError(t, err)
	assert.Nil(t, chili.LastEaten)

	gnocchi, err := recipes.CreateRecipe(ctx, &types.CreateRecipeRequest{
		Name:        "Gnocchi",
		Ingredients: []string{"potato", "flour"},
		Rating:      5,
	})
	require.NoError(t, err)

	// Correct the gnocchi date back two weeks; chili stays never-eaten.
	twoWeeksAgo := time.Now().AddDate(0, 0, -14)
	_, err = recipes.SetLastEaten(ctx, gnocchi.ID, &twoWeeksAgo)
	require.NoError(t, err)

	all, err := recipes.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Chili con Carne", all[0].Name)

	ranked := suggest.Rank(all, time.Now())
	require.Len(t, ranked, 2)
	assert.Equal(t, "Chili con Carne", ranked[0].Recipe.Name)
	assert.Equal(t, suggest.Unbounded, ranked[0].DaysSinceEaten)
	assert.Equal(t, 14, ranked[1].DaysSinceEaten)

	// Search goes through the pgvector distance ordering on postgres.
	found, err := recipes.SearchRecipes(ctx, "beans")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Chili con Carne", found[0].Name)

	logged, err := recipes.LogMeal(ctx, chili.ID, time.Now())
	require.NoError(t, err)
	require.NotNil(t, logged.LastEaten)
	assert.Equal(t, 0, suggest.DaysSince(time.Now(), logged.LastEaten))

	require.NoError(t, recipes.DeleteRecipe(ctx, gnocchi.ID))
	remaining, err := recipes.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
