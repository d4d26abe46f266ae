package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/recipe-catalog/internal/api"
	"github.com/pageza/recipe-catalog/internal/kv"
	"github.com/pageza/recipe-catalog/internal/middleware"
	"github.com/pageza/recipe-catalog/internal/service"
	"github.com/pageza/recipe-catalog/internal/storage"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewRecipeService(storage.NewAdapter(kv.NewMemoryStore(), "recipes"))
	router := SetupRouter(svc, api.HandlerOptions{DefaultCategory: "General"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, w.Body.String(), "No recipes found.")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/no/such/page", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
