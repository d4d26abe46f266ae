package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/api"
	"github.com/pageza/recipe-catalog/internal/model"
	"github.com/pageza/recipe-catalog/internal/router"
	"github.com/pageza/recipe-catalog/internal/service"
	"github.com/pageza/recipe-catalog/internal/storage"
)

func testConfig(path string) *config.Config {
	return &config.Config{
		Env: config.Test,
		Storage: config.StorageConfig{
			Driver:     config.DriverSQLite,
			Path:       path,
			Key:        "recipes",
			LegacyKey:  "recipeBook",
			QuotaBytes: 5 * 1024 * 1024,
		},
		DefaultCategory:     "General",
		ViewGroupByCategory: true,
	}
}

// boot wires the app the same way cmd/api does and returns a router plus a
// function that stops it.
func boot(t *testing.T, cfg *config.Config) (*gin.Engine, *service.RecipeService, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adapter, backend, err := storage.NewAdapterFromConfig(cfg)
	require.NoError(t, err)

	svc := service.NewRecipeService(adapter, service.WithDefaultCategory(cfg.DefaultCategory))
	require.NoError(t, svc.Init(context.Background()))

	r := router.SetupRouter(svc, api.HandlerOptions{
		DefaultCategory: cfg.DefaultCategory,
		GroupByCategory: cfg.ViewGroupByCategory,
		Ping:            backend.Ping,
	})
	return r, svc, func() { require.NoError(t, backend.Close()) }
}

func post(r *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRecipesSurviveRestart(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "recipes.db"))

	r, _, stop := boot(t, cfg)
	assert.Equal(t, http.StatusOK, get(r, "/healthz").Code)

	w := post(r, "/recipes", url.Values{
		"title":       {"Tomato Soup"},
		"ingredients": {"tomatoes\nsalt"},
		"steps":       {"simmer\nblend"},
		"prep_time":   {"25"},
		"difficulty":  {"medium"},
		"category":    {"Soups"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	id := strings.TrimPrefix(w.Header().Get("Location"), "/recipes/")

	stop()

	r, svc, stop := boot(t, cfg)
	defer stop()

	all := svc.List(context.Background(), model.Filter{Difficulty: model.AllDifficulties})
	require.Len(t, all, 3)
	assert.Equal(t, id, all[0].ID)
	assert.Equal(t, model.DifficultyMedium, all[0].Difficulty)

	w = get(r, "/?category=Soups")
	assert.Contains(t, w.Body.String(), "Tomato Soup")
}

func TestLegacyDataIsMigratedOnBoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.db")
	cfg := testConfig(path)

	// Write a legacy-shaped value straight into the store.
	backend, err := storage.Open(cfg.Storage)
	require.NoError(t, err)
	legacy, err := json.Marshal(map[string]interface{}{
		"recipes": []map[string]interface{}{
			{"id": 1700000000000, "title": "Old Pancakes", "ingredients": []string{"flour"}, "steps": []string{"fry"}, "difficulty": "Easy"},
		},
	})
	require.NoError(t, err)
	require.NoError(t, backend.Store.Set(context.Background(), "recipeBook", string(legacy)))
	require.NoError(t, backend.Close())

	r, svc, stop := boot(t, cfg)
	defer stop()

	all := svc.List(context.Background(), model.Filter{Difficulty: model.AllDifficulties})
	require.Len(t, all, 1)
	assert.Equal(t, "1700000000000", all[0].ID)
	assert.Equal(t, "General", all[0].Category)
	assert.Equal(t, 30.0, all[0].PrepTime)

	w := get(r, "/recipes/1700000000000")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Old Pancakes")
}

func TestCorruptDataIsBackedUpOnBoot(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "recipes.db"))

	backend, err := storage.Open(cfg.Storage)
	require.NoError(t, err)
	require.NoError(t, backend.Store.Set(context.Background(), "recipes", "{not json"))
	require.NoError(t, backend.Close())

	_, svc, stop := boot(t, cfg)
	all := svc.List(context.Background(), model.Filter{Difficulty: model.AllDifficulties})
	assert.Len(t, all, 2)
	stop()

	adapter, backend, err := storage.NewAdapterFromConfig(cfg)
	require.NoError(t, err)
	defer backend.Close()

	backups, err := adapter.Backups(context.Background())
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.True(t, strings.HasPrefix(backups[0], "recipes_backup_"))

	raw, ok, err := backend.Store.Get(context.Background(), backups[0])
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{not json", raw)
}
