package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/crmdeck/internal/ctxlog"
	"github.com/vk/crmdeck/internal/fsutil"
	"github.com/vk/crmdeck/internal/manifest"
	"github.com/vk/crmdeck/internal/schema"
)

// Loader is the HCL-specific implementation of the manifest.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers .hcl manifest files under the given paths, parses them, and
// translates every component declaration into the format-agnostic model.
// Later declarations of the same component name overwrite earlier ones.
func (l *Loader) Load(ctx context.Context, paths ...string) (*manifest.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := &manifest.Model{
		Components: make(map[string]*manifest.Definition),
	}

	parser := hclparse.NewParser()
	for _, path := range paths {
		filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			logger.Error("Failed to walk manifests path", "path", path, "error", err)
			return nil, err
		}
		if len(filePaths) == 0 {
			logger.Warn("No .hcl manifest files found in path", "path", path)
			continue
		}
		logger.Debug("Found manifest files to load", "path", path, "files", filePaths)

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
			}

			var cfg schema.ManifestConfig
			if diags := gohcl.DecodeBody(hclFile.Body, nil, &cfg); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
			}

			for _, comp := range cfg.Components {
				def, err := l.translateComponent(ctx, comp)
				if err != nil {
					return nil, fmt.Errorf("in manifest file %s: %w", filePath, err)
				}
				model.Components[def.Name] = def
			}
			logger.Debug("Loaded component definitions from manifest file", "file", filePath)
		}
	}

	logger.Info("Manifests loaded successfully.", "component_definitions", len(model.Components))
	return model, nil
}
