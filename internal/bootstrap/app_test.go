package bootstrap_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/bootstrap"
	"resume-builder/internal/exports"
	"resume-builder/internal/shared/config"
)

type fakeExporter struct{}

// RenderPDF returns a one-page blank document regardless of the page.
func (fakeExporter) RenderPDF(_ context.Context, html []byte) ([]byte, error) {
	if len(html) == 0 {
		return nil, fmt.Errorf("empty page")
	}
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] >>",
	}
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes(), nil
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
		StorageBackend:  "memory",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		PersistSlot:     "resumeData",
		ExportRateLimit: 10,
	}
}

func call(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Guest-Id", "7b0f2c1e-3b7a-4a47-9f0e-2d1c3b4a5e6f")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func summaryOf(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Resume struct {
			AboutContent string `json:"aboutContent"`
		} `json:"resume"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return payload.Resume.AboutContent
}

func TestEditSaveExportFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(testConfig(t), bootstrap.WithExporter(fakeExporter{}))
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	router := app.Router

	resp := call(t, router, http.MethodPut, "/api/v1/resume/summary", `{"value":"Builds things."}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp = call(t, router, http.MethodPost, "/api/v1/resume/save", ""); resp.Code != http.StatusOK {
		t.Fatalf("save: expected 200, got %d", resp.Code)
	}

	resp = call(t, router, http.MethodPost, "/api/v1/resume/export", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	exportID := resp.Header().Get("X-Export-Id")
	if exportID == "" {
		t.Fatalf("expected export id")
	}

	resp = call(t, router, http.MethodGet, "/api/v1/exports/"+exportID+"/download", "")
	if resp.Code != http.StatusOK || !bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("download: expected PDF, got %d", resp.Code)
	}

	resp = call(t, router, http.MethodGet, "/api/v1/resume", "")
	if got := summaryOf(t, resp); got != "Builds things." {
		t.Fatalf("export must not change the document, got %q", got)
	}
}

func TestSQLiteBackendRestoresOnNewApp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	cfg.StorageBackend = "sqlite"
	cfg.SQLitePath = filepath.Join(t.TempDir(), "resume.db")

	first, err := bootstrap.Build(cfg, bootstrap.WithExporter(fakeExporter{}))
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	defer first.Close()
	call(t, first.Router, http.MethodPut, "/api/v1/resume/summary", `{"value":"persisted in sqlite"}`)
	if resp := call(t, first.Router, http.MethodPost, "/api/v1/resume/save", ""); resp.Code != http.StatusOK {
		t.Fatalf("save: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	second, err := bootstrap.Build(cfg, bootstrap.WithExporter(fakeExporter{}))
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	defer second.Close()
	resp := call(t, second.Router, http.MethodGet, "/api/v1/resume", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("current: expected 200, got %d", resp.Code)
	}
	if got := summaryOf(t, resp); got != "persisted in sqlite" {
		t.Fatalf("expected restored summary, got %q", got)
	}
}

func TestSQLiteBackendKeepsHandleForHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	cfg.StorageBackend = "sqlite"
	cfg.SQLitePath = filepath.Join(t.TempDir(), "resume.db")

	app, err := bootstrap.Build(cfg, bootstrap.WithExporter(fakeExporter{}))
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	if app.DB == nil {
		t.Fatalf("expected sqlite handle on app")
	}
	if _, ok := app.ExportsRepo.(*exports.MemoryRepo); !ok {
		t.Fatalf("sqlite backend keeps export history in memory, got %T", app.ExportsRepo)
	}

	resp := call(t, app.Router, http.MethodGet, "/api/v1/health", "")
	var status struct {
		OK       bool   `json:"ok"`
		Database string `json:"database"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if !status.OK || status.Database != "up" {
		t.Fatalf("expected sqlite ping in health, got %+v", status)
	}

	if err := app.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := app.DB.Ping(); err == nil {
		t.Fatalf("expected closed handle")
	}
}
