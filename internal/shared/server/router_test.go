package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/config"
)

const testGuestID = "5a4b3c2d-1e0f-4a9b-8c7d-6e5f4a3b2c1d"

type exportStub struct{}

func (exportStub) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/export", func(c *gin.Context) { c.Status(http.StatusOK) })
	rg.GET("/resume", func(c *gin.Context) { c.Status(http.StatusOK) })
}

func newTestRouter(t *testing.T, exportLimit int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		Config: config.Config{
			Env:             "dev",
			CORSAllowOrigin: []string{"http://localhost:5173"},
			StorageBackend:  "memory",
			ObjectStoreType: "local",
			ExportRateLimit: exportLimit,
		},
		Handlers: []RouteRegistrar{exportStub{}},
	})
}

func TestHealthIsPublic(t *testing.T) {
	router := newTestRouter(t, 10)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["ok"] != true || body["storage"] != "memory" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestMeReturnsGuestIdentity(t *testing.T) {
	router := newTestRouter(t, 10)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("X-Guest-Id", testGuestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["userId"] != "guest:"+testGuestID || body["isGuest"] != true {
		t.Fatalf("unexpected me body: %v", body)
	}
}

func TestExportRouteIsRateLimited(t *testing.T) {
	router := newTestRouter(t, 1)

	do := func(path string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("X-Guest-Id", testGuestID)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp.Code
	}
	if code := do("/api/v1/resume/export"); code != http.StatusOK {
		t.Fatalf("first export: expected 200, got %d", code)
	}
	if code := do("/api/v1/resume/export"); code != http.StatusTooManyRequests {
		t.Fatalf("second export: expected 429, got %d", code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	req.Header.Set("X-Guest-Id", testGuestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("edits must not share the export limit, got %d", resp.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, 10)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "resume_saves_total") {
		t.Fatalf("expected metrics output, got %s", resp.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
