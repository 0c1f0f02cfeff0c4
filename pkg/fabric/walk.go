// Package fabric turns schemas into generated classes. Walk traverses a
// schema and drives a Handler; TypeGenHandler answers the callbacks with a
// stack of container builders and a class generation strategy.
package fabric

import (
	"github.com/cmmoran/srcgen/internal/model"
	"github.com/cmmoran/srcgen/pkg/errors"
)

// Handler receives the traversal of a schema. Start and End calls nest: every
// Start is matched by its End after the children have been visited. The
// first error stops the walk.
type Handler interface {
	StartSchema(s *model.Schema) error
	EndSchema(s *model.Schema) error

	StartTopLevelElement(e *model.Element) error
	EndTopLevelElement(e *model.Element) error
	StartLocalElement(e *model.Element) error
	EndLocalElement(e *model.Element) error
	StartElementReference(e *model.Element) error
	EndElementReference(e *model.Element) error

	StartTopLevelSimpleType(t *model.Type) error
	EndTopLevelSimpleType(t *model.Type) error
	StartTopLevelComplexType(t *model.Type) error
	EndTopLevelComplexType(t *model.Type) error
	StartLocalSimpleType(t *model.Type) error
	EndLocalSimpleType(t *model.Type) error
	StartLocalComplexType(t *model.Type) error
	EndLocalComplexType(t *model.Type) error

	// Attribute visits an attribute of the complex type being walked.
	Attribute(a *model.Attribute) error
}

// Walk visits s in declaration order: named types, then top-level elements.
// Inline types are visited inside the element or attribute declaring them.
func Walk(s *model.Schema, h Handler) error {
	if s == nil {
		return errors.IllegalArgumentf("nil schema")
	}
	w := &walker{h: h}
	w.do(func() error { return h.StartSchema(s) })
	for _, t := range s.Types {
		if t.Kind() == model.KindSimple {
			pair(w, t, h.StartTopLevelSimpleType, h.EndTopLevelSimpleType, nil)
			continue
		}
		pair(w, t, h.StartTopLevelComplexType, h.EndTopLevelComplexType, func() { w.members(t) })
	}
	for _, e := range s.Elements {
		pair(w, e, h.StartTopLevelElement, h.EndTopLevelElement, func() { w.inline(e) })
	}
	w.do(func() error { return h.EndSchema(s) })
	return w.err
}

type walker struct {
	h   Handler
	err error
}

func (w *walker) do(fn func() error) {
	if w.err == nil {
		w.err = fn()
	}
}

// pair calls start, then body, then end.
func pair[T any](w *walker, v T, start, end func(T) error, body func()) {
	w.do(func() error { return start(v) })
	if body != nil {
		body()
	}
	w.do(func() error { return end(v) })
}

func (w *walker) members(t *model.Type) {
	for _, a := range t.Attributes {
		w.do(func() error { return w.h.Attribute(a) })
		if a.SimpleType != nil {
			pair(w, a.SimpleType, w.h.StartLocalSimpleType, w.h.EndLocalSimpleType, nil)
		}
	}
	for _, e := range t.Elements {
		if e.IsReference() {
			pair(w, e, w.h.StartElementReference, w.h.EndElementReference, nil)
			continue
		}
		pair(w, e, w.h.StartLocalElement, w.h.EndLocalElement, func() { w.inline(e) })
	}
}

func (w *walker) inline(e *model.Element) {
	switch {
	case e.SimpleType != nil:
		pair(w, e.SimpleType, w.h.StartLocalSimpleType, w.h.EndLocalSimpleType, nil)
	case e.ComplexType != nil:
		t := e.ComplexType
		pair(w, t, w.h.StartLocalComplexType, w.h.EndLocalComplexType, func() { w.members(t) })
	}
}
