package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/vitrine/internal/catalog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type demoSource struct{}

func (demoSource) Items() []catalog.Item { return catalog.Demo() }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	srv := NewServer("", demoSource{})
	srv.startTime = time.Now()

	r := gin.New()
	r.Use(gin.Recovery())
	srv.registerRoutes(r)
	return r
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("health status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health status = %v, want ok", body["status"])
	}
	if body["item_count"] != float64(8) {
		t.Errorf("item_count = %v, want 8", body["item_count"])
	}
}

func TestItemsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("items status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Items []catalog.Item `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal items: %v", err)
	}
	if len(body.Items) != 8 {
		t.Fatalf("items = %d, want 8", len(body.Items))
	}
}

func TestItemsEndpoint_CategoryQuery(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/items?category=Smartphones", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body struct {
		Items []catalog.Item `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal items: %v", err)
	}
	if len(body.Items) != 3 {
		t.Fatalf("smartphone items = %d, want 3", len(body.Items))
	}
	for _, it := range body.Items {
		if it.Category != "Smartphones" {
			t.Fatalf("item %q has category %q, want Smartphones", it.Name, it.Category)
		}
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal categories: %v", err)
	}
	if len(body.Categories) != 4 {
		t.Fatalf("categories = %v, want 4 entries", body.Categories)
	}
}

func TestItemsEndpoint_WrongMethod(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Gin without a method-not-allowed handler falls through to 404.
	if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
		t.Errorf("items POST status = %d, want 405 or 404", w.Code)
	}
}
