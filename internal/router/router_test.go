package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/postline/internal/db"
	"gorm.io/gorm/logger"
)

func setupRouterTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano()), logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.DB = gdb
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

func TestSetupRouterPing(t *testing.T) {
	setupRouterTestDB(t)
	r := SetupRouter(Options{SessionSecret: "test-secret"})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "pong") {
		t.Fatalf("unexpected body, got %q", rr.Body.String())
	}
}

func TestSetupRouterRedirectsRoot(t *testing.T) {
	setupRouterTestDB(t)
	r := SetupRouter(Options{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/posts/" {
		t.Fatalf("expected redirect to /posts/, got %q", got)
	}
}

func TestSetupRouterUnknownPathRendersNotFound(t *testing.T) {
	setupRouterTestDB(t)
	r := SetupRouter(Options{SiteName: "Field Notes"})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Page not found") {
		t.Fatalf("expected 404 template, got %q", body)
	}
	if !strings.Contains(body, "Field Notes") {
		t.Fatalf("expected configured site name in layout")
	}
}

func TestSetupRouterRegistersBlogRoutes(t *testing.T) {
	setupRouterTestDB(t)
	r := SetupRouter(Options{})

	want := map[string]bool{
		"GET /posts/":                          false,
		"GET /posts/tag/:tag_slug/":            false,
		"GET /posts/:year/share/":              false,
		"POST /posts/:year/share/":             false,
		"GET /posts/:year/:month/:day/:slug/":  false,
		"POST /posts/:year/:month/:day/:slug/": false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, found := range want {
		if !found {
			t.Fatalf("expected route %s to be registered", key)
		}
	}
}
