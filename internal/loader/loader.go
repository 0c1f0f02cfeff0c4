// Package loader reads schemas from YAML documents and from Go packages
// whose structs carry encoding/xml tags.
package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cmmoran/srcgen/internal/model"
	"github.com/cmmoran/srcgen/pkg/errors"
)

// Options control loading.
//
// ExcludeTypes      – names of types to skip (case-insensitive).
// ExcludeDeprecated – skip types and fields whose comment mentions "deprecated".
type Options struct {
	ExcludeTypes      []string `yaml:"exclude_types,omitempty" mapstructure:"exclude_types,omitempty"`
	ExcludeDeprecated bool     `yaml:"exclude_deprecated,omitempty" mapstructure:"exclude_deprecated,omitempty"`
}

type Option func(*Options)

func WithExcludeTypes(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			o.ExcludeTypes = append(o.ExcludeTypes, strings.TrimSpace(n))
		}
	}
}

func WithExcludeDeprecated() Option { return func(o *Options) { o.ExcludeDeprecated = true } }

func newOptions(opts []Option) *Options {
	o := &Options{}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

func (o *Options) excluded(name, comment string) bool {
	if o.ExcludeDeprecated && strings.Contains(strings.ToLower(comment), "deprecated") {
		return true
	}
	for _, ex := range o.ExcludeTypes {
		if strings.EqualFold(ex, name) {
			return true
		}
	}
	return false
}

// Load reads path: a directory is loaded as a Go package, a .yaml or .yml
// file as a YAML schema.
func Load(path string, opts ...Option) (*model.Schema, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load schema %s", path)
	}
	if fi.IsDir() {
		return LoadGo(path, opts...)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path, opts...)
	}
	return nil, errors.WithHint(
		errors.IllegalArgumentf("cannot load schema from %s", path),
		"pass a .yaml file or a directory holding a Go package")
}

// finish drops excluded types and validates s.
func finish(s *model.Schema, o *Options) (*model.Schema, error) {
	kept := s.Types[:0]
	for _, t := range s.Types {
		if o.excluded(t.Name, t.Comment) {
			continue
		}
		kept = append(kept, t)
	}
	s.Types = kept
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
