package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgscene/pkg/scene"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string // listen address
}

// newServeCmd creates the serve command, which serves a scene file over
// HTTP. The scene is re-read and re-rendered on every request, so edits to
// the file show up on refresh.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a scene over HTTP, re-rendering on every request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", ":8080", "listen address")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	// Fail fast on an unreadable or malformed scene before binding the port.
	if _, err := scene.Load(input); err != nil {
		printError("Failed to load scene: %v", err)
		return err
	}

	r := chi.NewRouter()
	r.Use(requestLogger(ctx))
	r.Get("/", sceneHandler(input))

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Infof("Serving %s on http://localhost%s", input, opts.addr)
	printSuccess("Server started on %s", opts.addr)

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// sceneHandler renders the scene at path into the response. Rendering is
// cheap enough to do per request, and re-reading the file makes the server
// a live preview during editing.
func sceneHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		f, err := scene.Load(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		doc, err := f.Document()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		if _, err := doc.WriteTo(w); err != nil {
			// Headers are already sent; nothing left to do but log.
			return
		}
	}
}

// requestLogger logs each request with a short random ID and its duration.
func requestLogger(ctx context.Context) func(http.Handler) http.Handler {
	logger := loggerFromContext(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := uuid.NewString()[:8]
			start := time.Now()
			next.ServeHTTP(w, req)
			logger.Debug(fmt.Sprintf("%s %s", req.Method, req.URL.Path),
				"request_id", id, "duration", time.Since(start).Round(time.Millisecond))
		})
	}
}
