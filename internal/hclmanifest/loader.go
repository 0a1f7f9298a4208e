package hclmanifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/kevindugan/dependencyTree/internal/config"
	"github.com/kevindugan/dependencyTree/internal/ctxlog"
	"github.com/kevindugan/dependencyTree/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Extension is the file suffix of component manifests.
const Extension = ".hcl"

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and merges their
// component blocks, in file order, into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := config.NewModel()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Components {
			c, err := translateComponent(ctx, block, file)
			if err != nil {
				return nil, err
			}
			model.Add(c)
		}
	}

	logger.Debug("HCL loading complete.", "components", model.Len())
	return model, nil
}

// findAllHCLFiles walks all given paths and returns a flat, de-duplicated
// list of manifest files.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, Extension)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			allFiles = append(allFiles, f)
		}
	}
	return allFiles, nil
}

// translateComponent converts the HCL schema into the agnostic model.
func translateComponent(ctx context.Context, block *Component, source string) (*config.Component, error) {
	_, logger := ctxlog.With(ctx, "component", block.Name, "file", source)
	logger.Debug("Translating HCL component.", "depends_on", block.DependsOn)

	attrs, err := decodeAttributes(block.Attributes)
	if err != nil {
		return nil, fmt.Errorf("component %q in %s: %w", block.Name, source, err)
	}

	return &config.Component{
		Name:       block.Name,
		DependsOn:  append([]string(nil), block.DependsOn...),
		Attributes: attrs,
		Source:     source,
	}, nil
}

// decodeAttributes evaluates the optional attributes expression as a map of
// strings. Numbers and bools are converted to their string form.
func decodeAttributes(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid attributes: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("attributes must be known at load time")
	}

	converted, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("attributes must be a map of strings: %w", err)
	}

	var attrs map[string]string
	if err := gocty.FromCtyValue(converted, &attrs); err != nil {
		return nil, fmt.Errorf("attributes must be a map of strings: %w", err)
	}
	return attrs, nil
}
