package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipe(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name":         "Test Recipe",
		"ingredients":  []string{"ingredient1", "ingredient2"},
		"instructions": []string{"step1", "step2"},
		"rating":       4,
	}, true)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Contains(t, response, "recipe")
	recipe := response["recipe"].(map[string]interface{})
	assert.NotEmpty(t, recipe["id"])
	assert.Nil(t, recipe["last_eaten_date"])
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name": "No Token",
	}, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRecipeValidation(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name": "",
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name":   "Too Good",
		"rating": 7,
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipe(t *testing.T) {
	env := setupTestEnv(t)
	id := env.createRecipe(t, "Bouillabaisse", 3)

	w := env.doJSON(t, http.MethodGet, "/api/v1/recipes/"+id, nil, false)
	assert.Equal(t, http.StatusOK, w.Code)

	var recipe map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, "Bouillabaisse", recipe["name"])
	assert.Equal(t, "not eaten yet", recipe["last_eaten_phrase"])
	assert.Equal(t, false, recipe["expanded"])
}

func TestGetRecipeNotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/v1/recipes/"+uuid.NewString(), nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/v1/recipes/not-a-uuid", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRecipeEditPathIgnoresLastEaten(t *testing.T) {
	env := setupTestEnv(t)
	id := env.createRecipe(t, "Pad Thai", 2)

	// A client trying to smuggle a date through the edit path gets the
	// field silently dropped.
	w := env.doJSON(t, http.MethodPut, "/api/v1/recipes/"+id, map[string]interface{}{
		"name":            "Pad See Ew",
		"rating":          5,
		"last_eaten_date": "2020-01-01T00:00:00Z",
	}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	recipe := response["recipe"].(map[string]interface{})
	assert.Equal(t, "Pad See Ew", recipe["name"])
	assert.Equal(t, float64(5), recipe["rating"])
	assert.Nil(t, recipe["last_eaten_date"])
}

func TestSetLastEaten(t *testing.T) {
	env := setupTestEnv(t)
	id := env.createRecipe(t, "Bibimbap", 4)

	w := env.doJSON(t, http.MethodPut, "/api/v1/recipes/"+id+"/last-eaten", map[string]interface{}{
		"date": "2024-06-01",
	}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	recipe := response["recipe"].(map[string]interface{})
	assert.NotNil(t, recipe["last_eaten_date"])

	// Null clears it back to never eaten.
	w = env.doJSON(t, http.MethodPut, "/api/v1/recipes/"+id+"/last-eaten", map[string]interface{}{
		"date": nil,
	}, true)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	recipe = response["recipe"].(map[string]interface{})
	assert.Nil(t, recipe["last_eaten_date"])
}

func TestSetLastEatenBadFormat(t *testing.T) {
	env := setupTestEnv(t)
	id := env.createRecipe(t, "Laksa", 4)

	w := env.doJSON(t, http.MethodPut, "/api/v1/recipes/"+id+"/last-eaten", map[string]interface{}{
		"date": "June 1st",
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogMeal(t *testing.T) {
	env := setupTestEnv(t)
	id := env.createRecipe(t, "Katsu Curry", 5)

	w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/"+id+"/log-meal", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	recipe, err := env.recipes.GetRecipe(context.Background(), uuid.MustParse(id))
	require.NoError(t, err)
	require.NotNil(t, recipe.LastEaten)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.True(t, recipe.LastEaten.Equal(today))
}

func TestDeleteRecipe(t *testing.T) {
	env := setupTestEnv(t)
	id := env.createRecipe(t, "Tonkotsu Ramen", 5)

	// Expanded display state should not outlive the record.
	require.NoError(t, env.viewState.SetExpanded(context.Background(), id, true))

	w := env.doJSON(t, http.MethodDelete, "/api/v1/recipes/"+id, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/v1/recipes/"+id, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	expanded, err := env.viewState.ExpandedIDs(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, expanded, id)
}

func TestListRecipes(t *testing.T) {
	env := setupTestEnv(t)

	env.createRecipe(t, "zuppa toscana", 1)
	idApple := env.createRecipe(t, "Apple Crumble", 2)
	env.createRecipe(t, "miso ramen", 3)

	w := env.doJSON(t, http.MethodPut, "/api/v1/recipes/"+idApple+"/expanded", map[string]interface{}{
		"expanded": true,
	}, false)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/v1/recipes", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Recipes []struct {
			Name            string `json:"name"`
			LastEatenPhrase string `json:"last_eaten_phrase"`
			Expanded        bool   `json:"expanded"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Recipes, 3)

	// Name-ascending, case-insensitive display order.
	assert.Equal(t, "Apple Crumble", response.Recipes[0].Name)
	assert.Equal(t, "miso ramen", response.Recipes[1].Name)
	assert.Equal(t, "zuppa toscana", response.Recipes[2].Name)

	assert.True(t, response.Recipes[0].Expanded)
	assert.False(t, response.Recipes[1].Expanded)
	assert.Equal(t, "not eaten yet", response.Recipes[0].LastEatenPhrase)
}

func TestListRecipesSearch(t *testing.T) {
	env := setupTestEnv(t)

	env.createRecipe(t, "Chicken Tikka", 4)
	env.createRecipe(t, "Beef Rendang", 5)

	w := env.doJSON(t, http.MethodGet, "/api/v1/recipes?q=tikka", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Recipes []struct {
			Name string `json:"name"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Recipes, 1)
	assert.Equal(t, "Chicken Tikka", response.Recipes[0].Name)
}

func TestUploadPhotoNotConfigured(t *testing.T) {
	env := setupTestEnv(t)
	id := env.createRecipe(t, "Focaccia", 3)

	w := env.doJSON(t, http.MethodPost, "/api/v1/recipes/"+id+"/photo", nil, true)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLogin(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"password": testPassword,
	}, false)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["token"])

	w = env.doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"password": "wrong",
	}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
