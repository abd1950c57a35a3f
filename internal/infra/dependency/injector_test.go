package dependency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Environment:    "development",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			URL:            "file::memory:",
			MaxOpenConns:   1,
			MaxIdleConns:   1,
			ConnectTimeout: time.Second,
		},
		RateLimit: config.RateLimitConfig{
			Backend:     config.RateLimitBackendMemory,
			MaxRequests: 2,
			Window:      time.Minute,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	t.Setenv("ENV", cfg.Server.Environment)

	database, err := db.Open(context.Background(), &cfg.Database)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.AutoMigrate(persistence.Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	injector := NewInjector(cfg, database.DB(), database.HealthCheck, middleware.NewMemoryRateLimitStore())
	return injector.Router.Setup("test")
}

func TestInjector_Routes(t *testing.T) {
	handler := newTestServer(t, newTestConfig())

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/v1/categories", http.StatusOK},
		{http.MethodGet, "/api/v1/transactions", http.StatusOK},
		{http.MethodGet, "/api/v1/budgets?month=2024-01", http.StatusOK},
		{http.MethodGet, "/api/v1/dashboard?month=2024-01", http.StatusOK},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("expected a request id header")
			}
		})
	}
}

func TestInjector_MutationsAreRateLimited(t *testing.T) {
	handler := newTestServer(t, newTestConfig())

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(`{"name":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if got := post(); got != http.StatusBadRequest {
			t.Fatalf("request %d: expected 400, got %d", i+1, got)
		}
	}
	if got := post(); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the limit is reached, got %d", got)
	}

	// Reads are never limited.
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected reads to pass, got %d", w.Code)
	}
}

func TestInjector_CORS(t *testing.T) {
	handler := newTestServer(t, newTestConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/transactions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected allowed origin header, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected unknown origin to be rejected, got %d", w.Code)
	}
}
