package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/specialistvlad/passgraph/internal/ctxlog"
	"github.com/specialistvlad/passgraph/internal/script"
)

// inspectHandler routes the inspection API.
func (a *App) inspectHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.HandleFunc("GET /graphs", a.listGraphsHandler)
	mux.HandleFunc("GET /graphs/{name}", a.graphDOTHandler)
	mux.HandleFunc("GET /graphs/{name}/script", a.graphScriptHandler)
	return mux
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) listGraphsHandler(w http.ResponseWriter, r *http.Request) {
	sums, err := a.summaries()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if sums == nil {
		sums = []*graphSummary{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sums); err != nil {
		a.logger.Error("Failed to encode graph list.", "error", err)
	}
}

func (a *App) graphDOTHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	g, ok := a.store.Graph(name)
	if !ok {
		http.Error(w, fmt.Sprintf("graph %q not found", name), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	if err := g.WriteDOT(w); err != nil {
		a.logger.Error("Failed to write DOT.", "graph", name, "error", err)
	}
}

func (a *App) graphScriptHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	g, ok := a.store.Graph(name)
	if !ok {
		http.Error(w, fmt.Sprintf("graph %q not found", name), http.StatusNotFound)
		return
	}
	src, err := script.Write(g, a.registry)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(src)
}

// serveInspection runs the inspection server until ctx is cancelled.
func (a *App) serveInspection(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	addr := fmt.Sprintf(":%d", a.config.InspectPort)
	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           a.inspectHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🔎 Inspection server starting", "address", fmt.Sprintf("http://localhost%s/graphs", addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("inspection server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	logger.Info("🔎 Shutting down inspection server...")
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("inspection server shutdown failed: %w", err)
	}
	logger.Debug("Inspection server shut down gracefully.")
	return nil
}
