package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chatrelay/pkg/config"
	"chatrelay/pkg/providers"
	"chatrelay/pkg/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// stubProvider returns a fixed stream for every invocation.
type stubProvider struct {
	stream string
}

func (p *stubProvider) Stream(ctx context.Context, req *providers.ResponsesRequest) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(p.stream)), nil
}

func (p *stubProvider) GetName() string { return "stub" }
func (p *stubProvider) Close() error    { return nil }

func testServer(t *testing.T) *Server {
	t.Helper()

	staticDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>chat ui</html>"), 0o600); err != nil {
		t.Fatalf("failed to write index.html: %v", err)
	}

	cfg := config.NewConfig()
	cfg.Provider.APIKey = "k"
	config.ApplyDefaults(cfg)
	cfg.Static.Dir = staticDir

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, prometheus.NewRegistry())

	return NewServer(cfg, &stubProvider{stream: "data: hi\n\ndata: [DONE]\n\n"}, collector)
}

func TestServerRoutes(t *testing.T) {
	handler := testServer(t).Handler()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantInBody string
	}{
		{
			name:       "static index",
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
			wantInBody: "chat ui",
		},
		{
			name:       "chat relay",
			method:     http.MethodPost,
			path:       "/api/chat",
			body:       `{"messages":[{"role":"user","content":"hi"}]}`,
			wantStatus: http.StatusOK,
			wantInBody: "data: hi",
		},
		{
			name:       "chat wrong method",
			method:     http.MethodGet,
			path:       "/api/chat",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown api path",
			method:     http.MethodGet,
			path:       "/api/nope",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "healthz",
			method:     http.MethodGet,
			path:       "/healthz",
			wantStatus: http.StatusOK,
			wantInBody: `"status":"ok"`,
		},
		{
			name:       "metrics endpoint",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
			wantInBody: "chatrelay_requests_total",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantInBody != "" && !strings.Contains(rec.Body.String(), tt.wantInBody) {
				t.Errorf("body %q missing %q", rec.Body.String(), tt.wantInBody)
			}
		})
	}
}

func TestServerRequestIDOnResponses(t *testing.T) {
	handler := testServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID missing from response")
	}
}

func TestServerChatStreamHeaders(t *testing.T) {
	handler := testServer(t).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/event-stream; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/event-stream; charset=utf-8", got)
	}
}

func TestGatewayOptionsConversion(t *testing.T) {
	srv := testServer(t)

	if got := srv.gatewayOptions(); got != nil {
		t.Errorf("gatewayOptions() = %+v, want nil when unset", got)
	}

	srv.config.Provider.Gateway.Order = []string{"vertex"}
	got := srv.gatewayOptions()
	if got == nil || len(got.Order) != 1 || got.Order[0] != "vertex" {
		t.Errorf("gatewayOptions() = %+v, want order [vertex]", got)
	}
}

func TestMetricsDisabled(t *testing.T) {
	srv := testServer(t)
	srv.config.Telemetry.Metrics.Enabled = false

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	// With metrics disabled the path falls through to the static
	// collaborator, which has no such file.
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
