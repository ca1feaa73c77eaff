package preset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/pixelgridgo/internal/fsutil"
)

// loaderFor selects the format-specific loader for a file path by its
// extension.
func loaderFor(path string) (Loader, error) {
	switch filepath.Ext(path) {
	case ".hcl":
		return HCLLoader{}, nil
	case ".yaml", ".yml":
		return YAMLLoader{}, nil
	default:
		return nil, fmt.Errorf("unsupported preset format for %s: expected .hcl, .yaml, or .yml", path)
	}
}

// LoadPath loads presets from a single file or, for a directory, from every
// preset file found under it.
func LoadPath(ctx context.Context, path string) ([]*Preset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = fsutil.FindFilesByExtensions(path, ".hcl", ".yaml", ".yml")
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no preset files found in %s", path)
		}
	}

	var all []*Preset
	for _, p := range paths {
		loader, err := loaderFor(p)
		if err != nil {
			return nil, err
		}
		presets, err := loader.Load(ctx, p)
		if err != nil {
			return nil, err
		}
		all = append(all, presets...)
	}
	return all, nil
}
