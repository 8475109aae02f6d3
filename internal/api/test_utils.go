package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cooknext/backend/internal/model"
	"github.com/cooknext/backend/internal/service"
)

// memoryViewState is an in-memory ViewState for handler tests.
type memoryViewState struct {
	revealAll bool
	expanded  map[string]bool
}

func newMemoryViewState() *memoryViewState {
	return &memoryViewState{expanded: map[string]bool{}}
}

func (m *memoryViewState) RevealAll(ctx context.Context) (bool, error) {
	return m.revealAll, nil
}

func (m *memoryViewState) SetRevealAll(ctx context.Context, revealAll bool) error {
	m.revealAll = revealAll
	return nil
}

func (m *memoryViewState) ExpandedIDs(ctx context.Context) (map[string]bool, error) {
	out := make(map[string]bool, len(m.expanded))
	for k, v := range m.expanded {
		out[k] = v
	}
	return out, nil
}

func (m *memoryViewState) SetExpanded(ctx context.Context, recipeID string, expanded bool) error {
	if expanded {
		m.expanded[recipeID] = true
	} else {
		delete(m.expanded, recipeID)
	}
	return nil
}

type testEnv struct {
	router    *gin.Engine
	recipes   *service.RecipeService
	viewState *memoryViewState
	token     string
}

const testPassword = "test-password"

func setupTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	authService := service.NewAuthService(string(hash), "test-secret")

	recipeService := service.NewRecipeService(db)
	viewState := newMemoryViewState()

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, viewState, nil).RegisterRoutes(v1, authService)
	NewSuggestionHandler(recipeService, viewState).RegisterRoutes(v1)

	token, err := authService.Login(testPassword)
	require.NoError(t, err)

	return &testEnv{
		router:    router,
		recipes:   recipeService,
		viewState: viewState,
		token:     token,
	}
}

// doJSON issues a request with an optional JSON body and auth token.
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createRecipe(t *testing.T, name string, rating int) string {
	w := e.doJSON(t, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name":         name,
		"ingredients":  []string{"something"},
		"instructions": []string{"cook it"},
		"rating":       rating,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	recipe := response["recipe"].(map[string]interface{})
	return recipe["id"].(string)
}
