package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/pipeline"
	"github.com/matzehuels/identicon/pkg/render"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	listen  string
	noCache bool
}

// newServeCmd creates the serve command, which exposes identicon rendering
// over HTTP.
func newServeCmd() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve identicons over HTTP",
		Long: `Serve starts an HTTP server that renders identicons on demand:

  GET /identicon/{input}            PNG at 250x250
  GET /identicon/{input}?format=svg SVG
  GET /identicon/{input}?size=500   resized PNG
  GET /healthz                      liveness check

Responses are cached by the configured artifact cache. Nothing is
written to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.listen, "listen", "", "listen address (default: config server.listen)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	runner, err := newRunner(ctx, runnerOpts{
		noCache: opts.noCache,
		noStore: true,
		scope:   "http",
	})
	if err != nil {
		return err
	}
	defer runner.Close()

	listen := opts.listen
	if listen == "" {
		listen = cfg.Server.Listen
	}

	srv := &http.Server{
		Addr:              listen,
		Handler:           newServeRouter(runner, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		printInfo("Server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newServeRouter builds the HTTP routes for the identicon service.
func newServeRouter(runner *pipeline.Runner, logger *log.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	r.Get("/identicon/{input}", handleIdenticon(runner, logger))

	return r
}

// requestLogger logs one line per request with method, path, status, and latency.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)
			logger.Info("request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}

func handleIdenticon(runner *pipeline.Runner, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		input := chi.URLParam(req, "input")

		size := 0
		if raw := req.URL.Query().Get("size"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "invalid size parameter", http.StatusBadRequest)
				return
			}
			size = n
		}

		opts := pipeline.Options{
			Input:  input,
			Format: req.URL.Query().Get("format"),
			Size:   size,
			Logger: logger,
		}

		result, err := runner.Generate(req.Context(), opts)
		if err != nil {
			switch apperrors.GetCode(err) {
			case apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidSize, apperrors.ErrCodeInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				logger.Error("render failed", "input", input, "err", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		if opts.Format == render.FormatSVG {
			w.Header().Set("Content-Type", "image/svg+xml")
		} else {
			w.Header().Set("Content-Type", "image/png")
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Write(result.Data)
	}
}
