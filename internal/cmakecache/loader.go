package cmakecache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevindugan/dependencyTree/internal/config"
	"github.com/kevindugan/dependencyTree/internal/ctxlog"
	"github.com/kevindugan/dependencyTree/internal/fsutil"
)

// Loader is the CMake cache implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new CMake cache loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses each path. A file is parsed whatever its name; a directory is
// searched recursively for CMakeCache.txt files, skipping caches nested
// inside a directory that already holds one.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("CMake cache loader started.", "path_count", len(paths))

	model := config.NewModel()
	for _, path := range paths {
		files, err := l.cacheFiles(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			m, err := ParseFile(file)
			if err != nil {
				return nil, err
			}
			logger.Debug("Parsed CMake cache.", "file", file, "components", m.Len())
			model.Append(m)
		}
	}

	logger.Debug("CMake cache loading complete.", "components", model.Len())
	return model, nil
}

func (l *Loader) cacheFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := fsutil.FindFiles(path, func(name string) bool { return name == CacheFileName })
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s found under %s", CacheFileName, path)
	}
	return outermostCaches(files), nil
}

// outermostCaches drops caches that live below another cache's directory.
// Those belong to nested builds (FetchContent or ExternalProject sub-builds)
// and repeat the outer build's target names. Order is preserved.
func outermostCaches(files []string) []string {
	buildDirs := make([]string, 0, len(files))
	for _, file := range files {
		buildDirs = append(buildDirs, filepath.Dir(file))
	}

	var kept []string
	for _, file := range files {
		if !insideAny(filepath.Dir(file), buildDirs) {
			kept = append(kept, file)
		}
	}
	return kept
}

// insideAny reports whether dir is strictly below one of parents.
func insideAny(dir string, parents []string) bool {
	for _, parent := range parents {
		rel, err := filepath.Rel(parent, dir)
		if err == nil && rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
