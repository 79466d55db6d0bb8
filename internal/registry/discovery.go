package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/griffnb/ts-swag/internal/console"
)

// manifestNames are the file names probed inside each handler directory, in
// preference order.
var manifestNames = []string{"handler.yaml", "handler.yml", "handler.json"}

// Discover scans handlersDir for subdirectories carrying a handler manifest
// and returns a registry of the descriptors found. A missing directory is
// nothing to do. Per-directory failures are logged and skipped so one broken
// handler never aborts document assembly.
func Discover(handlersDir string) (*Registry, error) {
	reg := NewRegistry()

	entries, err := os.ReadDir(handlersDir)
	if err != nil {
		if os.IsNotExist(err) {
			console.Logger.Debug("handlers dir %s does not exist, skipping discovery", handlersDir)
			return reg, nil
		}
		return nil, fmt.Errorf("failed to read handlers dir %s: %w", handlersDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(handlersDir, entry.Name())

		desc, err := loadManifest(dir)
		if err != nil {
			console.Logger.Warn("skipping handler %s: %v", entry.Name(), err)
			continue
		}
		if desc == nil {
			console.Logger.Debug("no handler manifest in %s", dir)
			continue
		}

		if desc.Name == "" {
			desc.Name = entry.Name()
		}
		if err := reg.Register(*desc); err != nil {
			console.Logger.Warn("skipping handler %s: %v", entry.Name(), err)
		}
	}

	console.Logger.Debug("discovered %d handlers in %s", reg.Len(), handlersDir)

	return reg, nil
}

// loadManifest reads the first manifest file present in dir. Returns nil when
// the directory has no manifest.
func loadManifest(dir string) (*Descriptor, error) {
	for _, name := range manifestNames {
		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var desc Descriptor
		if err := yaml.Unmarshal(raw, &desc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return &desc, nil
	}
	return nil, nil
}
