package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() (*gin.Engine, *string) {
	var seen string
	r := gin.New()
	r.Use(Gin(GinConfig{SkipPaths: []string{"/health"}, Module: "test", TracerName: "test"}))
	r.Use(PanicRecoveryGin())
	r.GET("/ok", func(c *gin.Context) {
		seen = logging.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	r.GET("/health", func(c *gin.Context) {
		seen = logging.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	r.GET("/boom", func(*gin.Context) {
		panic("boom")
	})
	return r, &seen
}

func TestGin_RequestID(t *testing.T) {
	valid := uuid.NewString()

	tests := []struct {
		name      string
		path      string
		header    string
		wantEqual bool
	}{
		{name: "keeps valid id", path: "/ok", header: valid, wantEqual: true},
		{name: "replaces invalid id", path: "/ok", header: "not-a-uuid"},
		{name: "generates missing id", path: "/ok"},
		{name: "skip path still gets id", path: "/health", header: valid, wantEqual: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, seen := newRouter()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(requestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(requestIDHeader)
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("response request id %q is not a uuid", got)
			}
			if *seen != got {
				t.Errorf("context request id = %q, response header = %q", *seen, got)
			}
			if tt.wantEqual && got != tt.header {
				t.Errorf("request id = %q, want %q", got, tt.header)
			}
			if !tt.wantEqual && got == tt.header {
				t.Errorf("request id %q should have been replaced", got)
			}
		})
	}
}

func TestPanicRecoveryGin(t *testing.T) {
	r, _ := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
