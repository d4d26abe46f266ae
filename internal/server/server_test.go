package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/kv"
	"github.com/pageza/recipe-catalog/internal/service"
	"github.com/pageza/recipe-catalog/internal/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:                 config.Test,
		ServerHost:          "127.0.0.1",
		ServerPort:          "0",
		DefaultCategory:     "General",
		ViewGroupByCategory: true,
	}
}

func TestNew(t *testing.T) {
	svc := service.NewRecipeService(storage.NewAdapter(kv.NewMemoryStore(), "recipes"))
	require.NoError(t, svc.Init(context.Background()))

	server := New(testConfig(), svc, nil)
	require.NotNil(t, server)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/healthz", nil)
	server.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/", nil)
	server.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Masala Chai")
}

func TestStartAndShutdown(t *testing.T) {
	svc := service.NewRecipeService(storage.NewAdapter(kv.NewMemoryStore(), "recipes"))
	server := New(testConfig(), svc, nil)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	// Give ListenAndServe a moment before shutting down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
