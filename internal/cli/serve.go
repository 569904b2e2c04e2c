package cli

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/standings/pkg/builder"
	"github.com/matzehuels/standings/pkg/errors"
)

const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve division images over HTTP",
		Long: `Serve renders images on request. The standings snapshot is shared with
the other commands through the cache, so the feed is still fetched at most
once a day.

Routes:
  GET /standings/{conf}/{div}.jpg   one division image, e.g. /standings/AL/E.jpg
  GET /healthz                      liveness probe`,
		Example: `  standings serve --addr :9000
  standings serve --fixtures`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Serve.Addr = addr
			}

			b, err := c.newBuilder(cfg, nil)
			if err != nil {
				return err
			}
			season := func() int { return cfg.SeasonAt(time.Now()) }
			return c.listen(cmd.Context(), cfg.Serve.Addr, newRouter(b, season, c.Logger))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

// listen serves h on addr until ctx is cancelled, then shuts down gracefully.
func (c *CLI) listen(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("serving", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}

// newRouter builds the HTTP routes. season is evaluated per request so a
// long-running server rolls over to the new year.
func newRouter(b *builder.Builder, season func() int, logger *log.Logger) http.Handler {
	h := &imageHandler{builder: b, season: season}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	r.Get("/standings/{conf}/{div}.jpg", h.serveImage)

	return r
}

type imageHandler struct {
	builder *builder.Builder
	season  func() int
}

func (h *imageHandler) serveImage(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	t, err := parseTarget(chi.URLParam(r, "conf"), chi.URLParam(r, "div"))
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	img, err := h.builder.Image(r.Context(), h.season(), t.Conference, t.Division)
	if err != nil {
		status := statusFor(err)
		logger.Warn("no image", "file", t.FileName(), "status", status, "err", err)
		http.Error(w, errors.UserMessage(err), status)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	if !img.Expires.IsZero() {
		w.Header().Set("Expires", img.Expires.UTC().Format(http.TimeFormat))
	}
	w.Write(img.Data)
}

// statusFor maps a builder error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.IsBadInput(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeIncompleteData):
		return http.StatusServiceUnavailable
	case errors.Is(err, errors.ErrCodeFetchFailed), errors.Is(err, errors.ErrCodeParseFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// requestLogger logs one line per request and stores a request-scoped logger
// in the request context.
func requestLogger(l *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			rl := l.With("req", middleware.GetReqID(r.Context()))

			next.ServeHTTP(ww, r.WithContext(withLogger(r.Context(), rl)))

			rl.Info("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"took", time.Since(start).Round(time.Millisecond))
		})
	}
}
