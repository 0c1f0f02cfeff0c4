// Package classgen turns an AttributeContainer into a class of a target
// language: a private field, a setter and a getter per member, with the
// annotations of the selected XML binding framework.
package classgen

import (
	"sort"
	"strings"

	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/workspace"
)

// Target languages.
const (
	Java = "java"
	Cpp  = "cpp"
	Go   = "go"
)

// Strategy generates the class of one target language.
type Strategy interface {
	Language() string
	// GenerateClassObject builds the class for c. Restrictions are not
	// applied.
	GenerateClassObject(c *container.AttributeContainer) (workspace.Element, error)
	// ApplyRestrictions prepends guard code for restricted members of c to
	// the setters of e.
	ApplyRestrictions(e workspace.Element, c *container.AttributeContainer) error
	// NewSourceFile wraps e in a file of package pkg.
	NewSourceFile(e workspace.Element, pkg string) (workspace.File, error)
}

// Options configures a strategy.
type Options struct {
	// Framework names the annotation framework. Empty selects the default of
	// the language; C++ uses none.
	Framework string
}

type Option func(*Options)

func WithFramework(name string) Option {
	return func(o *Options) { o.Framework = name }
}

// Factory builds a Strategy.
type Factory func(Options) (Strategy, error)

var factories = map[string]Factory{
	Java: func(o Options) (Strategy, error) { return NewJavaStrategy(o.Framework) },
	Cpp: func(o Options) (Strategy, error) {
		if o.Framework != "" {
			return nil, errors.UnsupportedFrameworkf("C++ output takes no framework, got %s", o.Framework)
		}
		return NewCppStrategy(), nil
	},
	Go: func(o Options) (Strategy, error) { return NewGoStrategy(o.Framework) },
}

// Languages lists the supported target languages.
func Languages() []string {
	out := make([]string, 0, len(factories))
	for l := range factories {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// New returns the strategy of language.
func New(language string, opts ...Option) (Strategy, error) {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	f, ok := factories[strings.ToLower(language)]
	if !ok {
		return nil, errors.WithHintf(
			errors.IllegalArgumentf("unsupported target language %q", language),
			"supported languages: %s", strings.Join(Languages(), ", "))
	}
	return f(o)
}
