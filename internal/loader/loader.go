// Package loader picks the right component loader for every input path and
// merges what they produce into one model.
package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevindugan/dependencyTree/internal/cmakecache"
	"github.com/kevindugan/dependencyTree/internal/config"
	"github.com/kevindugan/dependencyTree/internal/ctxlog"
	"github.com/kevindugan/dependencyTree/internal/fsutil"
	"github.com/kevindugan/dependencyTree/internal/hclmanifest"
	"github.com/sourcegraph/conc/pool"
)

// DefaultConcurrency bounds the number of inputs loaded at once when the
// caller does not choose a limit.
const DefaultConcurrency = 4

// Loader implements config.Loader over a mix of CMake caches and HCL
// manifests.
type Loader struct {
	cmake       config.Loader
	hcl         config.Loader
	concurrency int
}

// Option configures a Loader.
type Option func(*Loader)

// WithConcurrency sets how many inputs may be loaded in parallel. Values
// below one are ignored.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithCMakeLoader replaces the loader used for CMake cache inputs.
func WithCMakeLoader(cl config.Loader) Option {
	return func(l *Loader) { l.cmake = cl }
}

// WithHCLLoader replaces the loader used for HCL manifest inputs.
func WithHCLLoader(hl config.Loader) Option {
	return func(l *Loader) { l.hcl = hl }
}

// New creates a Loader backed by the CMake cache and HCL manifest loaders.
func New(opts ...Option) *Loader {
	l := &Loader{
		cmake:       cmakecache.NewLoader(),
		hcl:         hclmanifest.NewLoader(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load loads every path concurrently and merges the results in the order
// the paths were given, so output does not depend on scheduling. The first
// failure cancels the remaining loads and is returned.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading inputs.", "count", len(paths), "concurrency", l.concurrency)

	models := make([]*config.Model, len(paths))
	p := pool.New().
		WithMaxGoroutines(l.concurrency).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for i, path := range paths {
		i, path := i, path
		p.Go(func(ctx context.Context) error {
			m, err := l.loaderFor(path).Load(ctx, path)
			if err != nil {
				return err
			}
			models[i] = m
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	merged := config.NewModel()
	for _, m := range models {
		merged.Append(m)
	}
	logger.Debug("Inputs loaded.", "components", merged.Len())
	return merged, nil
}

// loaderFor picks the HCL loader for .hcl files and for directories that
// hold manifests, and the CMake cache loader for everything else.
func (l *Loader) loaderFor(path string) config.Loader {
	if strings.EqualFold(filepath.Ext(path), hclmanifest.Extension) {
		return l.hcl
	}
	if isManifestDir(path) {
		return l.hcl
	}
	return l.cmake
}

func isManifestDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	files, err := fsutil.FindFilesByExtension(path, hclmanifest.Extension)
	return err == nil && len(files) > 0
}
