// Package generate runs one generation: it loads a schema, walks it with a
// type generating handler and writes the resulting files.
package generate

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cmmoran/srcgen/internal/loader"
	"github.com/cmmoran/srcgen/internal/model"
	"github.com/cmmoran/srcgen/pkg/classgen"
	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/fabric"
	"github.com/cmmoran/srcgen/pkg/workspace"
)

// Options control a generation run.
//
// Schema            – a .yaml schema or a directory holding a Go package
// Language          – java, cpp or go
// Framework         – annotation framework; empty selects the language default
// Out               – output root
// Subdir            – inserted between Out and the package directories
// Package           – overrides the package of the schema
// Prefixes          – package prefix to directory, "prefix=dir"
// ModulePath        – overrides the go.mod module path for Go output
// ExcludeTypes      – names of types to skip (case-insensitive)
// ExcludeDeprecated – skip types and fields documented as deprecated
type Options struct {
	Schema            string            `json:"schema,omitempty" yaml:"schema,omitempty" mapstructure:"schema,omitempty"`
	Language          string            `json:"language,omitempty" yaml:"language,omitempty" mapstructure:"language,omitempty"`
	Framework         string            `json:"framework,omitempty" yaml:"framework,omitempty" mapstructure:"framework,omitempty"`
	Out               string            `json:"out,omitempty" yaml:"out,omitempty" mapstructure:"out,omitempty"`
	Subdir            string            `json:"subdir,omitempty" yaml:"subdir,omitempty" mapstructure:"subdir,omitempty"`
	Package           string            `json:"package,omitempty" yaml:"package,omitempty" mapstructure:"package,omitempty"`
	Prefixes          map[string]string `json:"prefixes,omitempty" yaml:"prefixes,omitempty" mapstructure:"prefixes,omitempty"`
	ModulePath        string            `json:"module_path,omitempty" yaml:"module_path,omitempty" mapstructure:"module_path,omitempty"`
	ExcludeTypes      []string          `json:"exclude_types,omitempty" yaml:"exclude_types,omitempty" mapstructure:"exclude_types,omitempty"`
	ExcludeDeprecated bool              `json:"exclude_deprecated,omitempty" yaml:"exclude_deprecated,omitempty" mapstructure:"exclude_deprecated,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		Language: classgen.Java,
		Out:      "generated",
	}
}

// Normalize parses "prefix=dir" pairs into Prefixes and fills defaults.
func (o *Options) Normalize(prefixStrings ...string) error {
	for _, s := range prefixStrings {
		prefix, dir, ok := strings.Cut(s, "=")
		if !ok || prefix == "" {
			return errors.WithHint(errors.IllegalArgumentf("bad package prefix %q", s), "use prefix=dir")
		}
		if o.Prefixes == nil {
			o.Prefixes = map[string]string{}
		}
		o.Prefixes[prefix] = dir
	}
	if o.Schema == "" {
		return errors.IllegalArgumentf("no schema given")
	}
	if o.Language == "" {
		o.Language = classgen.Java
	}
	o.Language = strings.ToLower(o.Language)
	if o.Out == "" {
		o.Out = "generated"
	}
	if strings.Contains(o.Out, ".") {
		o.Out, _ = filepath.Abs(o.Out)
	}
	return nil
}

// Result describes a finished run.
type Result struct {
	// Written holds the written paths in generation order.
	Written   []string
	Workspace *workspace.Workspace
}

// LoadSchema loads opts.Schema with the exclusions of opts applied.
func LoadSchema(opts *Options) (*model.Schema, error) {
	var lopts []loader.Option
	if len(opts.ExcludeTypes) > 0 {
		lopts = append(lopts, loader.WithExcludeTypes(opts.ExcludeTypes...))
	}
	if opts.ExcludeDeprecated {
		lopts = append(lopts, loader.WithExcludeDeprecated())
	}
	return loader.Load(opts.Schema, lopts...)
}

// Generate loads opts.Schema and writes one source file per complex type.
func Generate(ctx context.Context, opts *Options) (*Result, error) {
	s, err := LoadSchema(opts)
	if err != nil {
		return nil, err
	}

	strategy, err := classgen.New(opts.Language, classgen.WithFramework(opts.Framework))
	if err != nil {
		return nil, err
	}

	ws := workspace.New(
		workspace.WithRoot(opts.Out),
		workspace.WithSubdir(opts.Subdir),
		workspace.WithPackagePrefixes(opts.Prefixes),
		workspace.WithModulePath(opts.ModulePath),
	)
	var hopts []fabric.HandlerOption
	if opts.Package != "" {
		hopts = append(hopts, fabric.WithPackage(opts.Package))
	}
	if err = fabric.Walk(s, fabric.NewTypeGenHandler(strategy, ws, hopts...)); err != nil {
		return nil, errors.Wrapf(err, "schema %s", s.Name)
	}

	written, err := ws.Generate(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("generated sources",
		slog.String("schema", s.Name),
		slog.String("language", opts.Language),
		slog.Int("files", len(written)))
	return &Result{Written: written, Workspace: ws}, nil
}
