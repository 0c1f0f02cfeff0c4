// Package annotation maps XML binding frameworks to the annotations (or struct
// tags) a generated class carries. Frameworks are registered by name and
// resolved when a Mapper is created.
package annotation

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
)

// Key selects the annotation for a class or a member kind.
type Key int

const (
	Root Key = iota
	Attribute
	Element
	ElementArray
)

func (k Key) String() string {
	switch k {
	case Root:
		return "root"
	case Attribute:
		return "attribute"
	case Element:
		return "element"
	case ElementArray:
		return "elementArray"
	}
	return "unknown"
}

// KeyFor returns the key of a member kind.
func KeyFor(kind container.Kind) Key {
	switch kind {
	case container.Attribute:
		return Attribute
	case container.ElementArray:
		return ElementArray
	default:
		return Element
	}
}

// Annotation is a template plus the import its type requires. A template
// containing %s receives the XML name of the annotated node.
type Annotation struct {
	Template string
	Import   string
}

// Text renders the annotation for name.
func (a Annotation) Text(name string) string {
	if strings.Contains(a.Template, "%s") {
		return fmt.Sprintf(a.Template, name)
	}
	return a.Template
}

// Framework describes one binding framework.
type Framework struct {
	Name string
	// Language is the target the annotations are written for, "java" or "go".
	Language    string
	Annotations map[Key]Annotation
}

// Factory builds a Framework.
type Factory func() Framework

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register makes a framework available under name, replacing any previous
// registration.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = f
}

// Frameworks lists registered names, sorted.
func Frameworks() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Mapper resolves annotations of one framework.
type Mapper struct {
	fw Framework
}

// NewMapper resolves name in the registry. Unknown names fail here, never at
// lookup time.
func NewMapper(name string) (*Mapper, error) {
	mu.RLock()
	f, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, errors.WithHintf(
			errors.UnsupportedFrameworkf("unsupported XML framework %q", name),
			"registered frameworks: %s", strings.Join(Frameworks(), ", "))
	}
	return &Mapper{fw: f()}, nil
}

func (m *Mapper) Framework() string { return m.fw.Name }
func (m *Mapper) Language() string  { return m.fw.Language }

// Lookup returns the annotation for key.
func (m *Mapper) Lookup(key Key) (Annotation, bool) {
	a, ok := m.fw.Annotations[key]
	return a, ok
}
