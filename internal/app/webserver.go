package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vk/crmdeck/internal/component"
	"github.com/vk/crmdeck/internal/ctxlog"
	"github.com/vk/crmdeck/internal/registry"
	"github.com/vk/crmdeck/internal/resolver"
)

// routes builds the dashboard API. The browser dashboard is the only
// intended consumer.
func (a *App) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /api/components", a.handleComponents)
	mux.HandleFunc("GET /api/render/{name}", a.handleRender)
	if a.hub != nil {
		mux.Handle("GET /ws/reload", a.hub)
	}
	return mux
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// handleComponents lists all registered components with their descriptive
// metadata.
func (a *App) handleComponents(w http.ResponseWriter, _ *http.Request) {
	type item struct {
		Name  string `json:"name"`
		Kind  string `json:"kind,omitempty"`
		Title string `json:"title,omitempty"`
	}

	// An empty registry serializes as [], not null.
	items := []item{}
	for name := range a.registry.Names() {
		entry, err := a.registry.Get(name)
		if err != nil {
			continue // unregistered between snapshot and lookup
		}
		it := item{Name: name}
		if kind, ok := entry.Metadata["kind"].(string); ok {
			it.Kind = kind
		}
		if title, ok := entry.Metadata["title"].(string); ok {
			it.Title = title
		}
		items = append(items, it)
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"components": items})
}

// handleRender resolves the named component against the request's query
// parameters and renders it. A resolution failure is answered with a
// placeholder fragment rather than an error status: the dashboard renders
// the fallback and the page survives.
func (a *App) handleRender(w http.ResponseWriter, r *http.Request) {
	ctx := ctxlog.WithLogger(r.Context(), a.logger)
	name := r.PathValue("name")

	rctx := resolver.Context{}
	props := component.Props{}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		rctx[key] = values[0]
		props[key] = values[0]
	}

	res, err := a.resolver.Resolve(ctx, name, rctx)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) || errors.Is(err, resolver.ErrLoad) {
			a.logger.Warn("Component resolution failed, rendering placeholder.", "name", name, "error", err)
			a.writeJSON(w, http.StatusOK, component.Placeholder(name, err.Error()))
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	frag, err := res.Component.Render(ctx, props)
	if err != nil {
		a.logger.Error("Component render failed.", "name", name, "error", err)
		http.Error(w, fmt.Sprintf("rendering %q failed", name), http.StatusInternalServerError)
		return
	}
	a.writeJSON(w, http.StatusOK, frag)
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("Failed to encode response", "error", err)
	}
}
