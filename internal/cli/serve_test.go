package cli

import (
	"image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/standings/pkg/config"
	"github.com/matzehuels/standings/pkg/errors"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c := New(io.Discard, LogInfo)

	cfg := config.Default()
	cfg.UseFixtureData = true
	cfg.NoCache = true
	b, err := c.newBuilder(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(newRouter(b, func() int { return 2026 }, log.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv
}

func TestServeHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK || string(body) != "ok\n" {
		t.Errorf("GET /healthz = %d %q", resp.StatusCode, body)
	}
}

func TestServeImage(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/standings/AL/E.jpg")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("Content-Type = %q", ct)
	}
	expires, err := http.ParseTime(resp.Header.Get("Expires"))
	if err != nil {
		t.Errorf("Expires header: %v", err)
	} else if !expires.After(time.Now()) {
		t.Errorf("Expires = %v, want a future time", expires)
	}

	cfg, err := jpeg.DecodeConfig(resp.Body)
	if err != nil {
		t.Fatalf("body is not a JPEG: %v", err)
	}
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("image is %dx%d", cfg.Width, cfg.Height)
	}
}

func TestServeImageErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path string
		want int
	}{
		{"/standings/XL/E.jpg", http.StatusBadRequest},
		{"/standings/AL/Q.jpg", http.StatusBadRequest},
		{"/standings/AL/E.png", http.StatusNotFound},
		{"/standings/AL", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("GET %s = %d, want %d", tt.path, resp.StatusCode, tt.want)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeInvalidSeason, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeIncompleteData, "x"), http.StatusServiceUnavailable},
		{errors.New(errors.ErrCodeFetchFailed, "x"), http.StatusBadGateway},
		{errors.New(errors.ErrCodeParseFailed, "x"), http.StatusBadGateway},
		{errors.New(errors.ErrCodeInternal, "x"), http.StatusInternalServerError},
		{io.EOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
