package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/crmdeck/internal/catalog"
	"github.com/vk/crmdeck/internal/ctxlog"
	"github.com/vk/crmdeck/internal/devreload"
	"github.com/vk/crmdeck/internal/factory"
	"github.com/vk/crmdeck/internal/manifest"
	"github.com/vk/crmdeck/internal/registry"
	"github.com/vk/crmdeck/internal/resolver"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	resolver *resolver.Resolver
	loader   manifest.Loader
	catalog  *catalog.Client
	hub      *devreload.Hub
	watcher  *devreload.Watcher
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, loader manifest.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all component manifests into the format-agnostic model first.
	model, err := loader.Load(ctx, appConfig.ManifestsPath)
	if err != nil {
		// A failure to load manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load component manifests: %w", err))
	}
	logger.Debug("Component manifests loaded into unified model.")

	// Create and populate the registry with the compiled-in components.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreComponents
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All builtin components registered.", "count", len(modules))

	reg.PopulateDefinitions(model)
	logger.Debug("Registry definitions populated from manifest model.")

	// Validate the integrity of the registry. A mismatch between Go code
	// and manifests is a programmer error, so we panic.
	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	// On-demand loading: manifest-built components first, then the remote
	// catalog when one is configured.
	sources := []resolver.Source{factory.NewDefinitionSource(reg, nil)}
	var catalogClient *catalog.Client
	if appConfig.CatalogURL != "" {
		catalogClient = catalog.NewClient(appConfig.CatalogURL, reg)
		sources = append(sources, catalogClient)
	}
	res := resolver.New(reg, resolver.NewLoader(reg, sources...))

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		resolver: res,
		loader:   loader,
		catalog:  catalogClient,
	}
	if appConfig.Dev {
		a.hub = devreload.NewHub()
		a.watcher = devreload.NewWatcher(reg, loader, nil, a.hub)
	}
	return a
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Resolver returns the application's resolver. This is primarily for testing.
func (a *App) Resolver() *resolver.Resolver {
	return a.resolver
}
