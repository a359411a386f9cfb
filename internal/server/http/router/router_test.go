package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vmesquit/mesapos/internal/server/http/handlers"
	"github.com/vmesquit/mesapos/internal/test/facadetest"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(facadetest.PosFacadeStub{}, logger)

	body, _ := json.Marshal(map[string]any{"pinCode": "1234", "password": "secret", "restaurantId": 1})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/waiters/auth", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for waiter auth, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/tables", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for tables, got %d", resp.Code)
	}
}

func TestSetupProtectedRoutesRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(facadetest.PosFacadeStub{}, logger)

	for _, path := range []string{"/api/v1/orders", "/api/v1/tables", "/api/v1/reports/daily-metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401 for %s, got %d", path, resp.Code)
		}
	}
}

func TestSetupPublicOrderCreation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(facadetest.PosFacadeStub{}, logger)

	body, _ := json.Marshal(map[string]any{
		"restaurantId":  1,
		"transactionId": "tx-1",
		"items":         []map[string]any{{"menuItemId": 1, "quantity": 2}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 without token, got %d", resp.Code)
	}
}

var _ handlers.PosFacade = (*facadetest.PosFacadeStub)(nil)
