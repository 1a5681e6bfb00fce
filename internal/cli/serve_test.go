package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/identicon/pkg/pipeline"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(nil, nil, nil, logger)
	return newServeRouter(runner, logger)
}

func TestServeHealthz(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q, want to contain %q", rec.Body.String(), "ok")
	}
}

func TestServeIdenticonPNG(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/identicon/banana", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q, want %q", got, "image/png")
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("body is not a PNG")
	}
}

func TestServeIdenticonSVG(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/identicon/banana?format=svg", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want %q", got, "image/svg+xml")
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not an SVG")
	}
}

func TestServeIdenticonDeterministic(t *testing.T) {
	router := testRouter(t)

	fetch := func() []byte {
		req := httptest.NewRequest(http.MethodGet, "/identicon/banana", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		return rec.Body.Bytes()
	}

	if !bytes.Equal(fetch(), fetch()) {
		t.Error("same input produced different bytes")
	}
}

func TestServeIdenticonBadRequest(t *testing.T) {
	router := testRouter(t)

	tests := []struct {
		name string
		url  string
	}{
		{"bad format", "/identicon/banana?format=gif"},
		{"negative size", "/identicon/banana?size=-1"},
		{"non-numeric size", "/identicon/banana?size=big"},
		{"oversized", "/identicon/banana?size=99999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestServeUnknownRoute(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
