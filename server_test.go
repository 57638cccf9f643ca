package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/volttrack/mis_backend/models"
)

func TestReadinessGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(readinessGate())
	r.GET("/api/records", listRecordsHandler())

	// the startup probe passes before anything is wired
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("healthz = %d, want 204", w.Code)
	}

	// app routes are closed until the store is published
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/records", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("pre-publish = %d, want 503", w.Code)
	}

	recordStore.Store(models.NewRecordStore(nil))
	defer recordStore.Store(nil)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/records", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("post-publish = %d, want 200", w.Code)
	}
}
