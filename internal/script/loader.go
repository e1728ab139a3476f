package script

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/passgraph/internal/config"
	"github.com/specialistvlad/passgraph/internal/ctxlog"
	"github.com/specialistvlad/passgraph/internal/fsutil"
	"github.com/specialistvlad/passgraph/internal/pass"
)

// Extension is the file extension of graph scripts.
const Extension = ".hcl"

// ErrPathNotFound is returned when a path given to Load does not exist.
var ErrPathNotFound = errors.New("script path not found")

// Loader is the HCL implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a loader whose option expressions can reference the
// given enums.
func NewLoader(enums []*pass.Enum) *Loader {
	return &Loader{evalCtx: newEvalContext(enums)}
}

// Load parses every script found under the given files and directories.
// Every path must exist.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := findAllScripts(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered script files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse script %s: %w", file, diags)
		}
		if err := l.decodeInto(ctx, model, file, hclFile.Body); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "graphs", len(model.Graphs))
	return model, nil
}

// Parse decodes a single in-memory script.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse script %s: %w", filename, diags)
	}
	model := &config.Model{}
	if err := l.decodeInto(ctx, model, filename, hclFile.Body); err != nil {
		return nil, err
	}
	return model, nil
}

func (l *Loader) decodeInto(ctx context.Context, model *config.Model, file string, body hcl.Body) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode script %s: %w", file, diags)
	}

	for _, block := range root.Graphs {
		script, err := l.translateGraph(ctx, file, block)
		if err != nil {
			return err
		}
		if existing, dup := model.Graph(script.Name); dup {
			return fmt.Errorf("graph %q declared in %s is already declared in %s", script.Name, file, existing.Source)
		}
		model.Graphs = append(model.Graphs, script)
	}
	return nil
}

// findAllScripts walks all given paths and returns a flat, de-duplicated list
// of script files.
func findAllScripts(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == Extension {
				add(path)
			}
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, Extension)
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return all, nil
}
