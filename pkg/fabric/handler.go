package fabric

import (
	"log/slog"
	"unicode"

	"github.com/cmmoran/srcgen/internal/model"
	"github.com/cmmoran/srcgen/pkg/classgen"
	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/workspace"
)

// TypeGenHandler generates one class per complex type. Each complex type
// pushes a container builder, its attributes and elements become members of
// the builder on top, and the end of the type pops the builder and hands the
// container to the strategy. The class lands in a new source file registered
// in the workspace.
//
// Simple types never become classes: members typed with them take the
// builtin they derive from and carry their facets.
type TypeGenHandler struct {
	strategy classgen.Strategy
	ws       *workspace.Workspace
	pkg      string

	schema   *model.Schema
	stack    []*container.Builder
	elements []*model.Element
}

var _ Handler = (*TypeGenHandler)(nil)

type HandlerOption func(*TypeGenHandler)

// WithPackage sets the package of generated files, overriding the package of
// the schema.
func WithPackage(pkg string) HandlerOption {
	return func(h *TypeGenHandler) { h.pkg = pkg }
}

func NewTypeGenHandler(s classgen.Strategy, ws *workspace.Workspace, opts ...HandlerOption) *TypeGenHandler {
	h := &TypeGenHandler{strategy: s, ws: ws}
	for _, fn := range opts {
		fn(h)
	}
	return h
}

// Depth is the number of open containers.
func (h *TypeGenHandler) Depth() int { return len(h.stack) }

// CreateNewContainer pushes a builder for a class named name.
func (h *TypeGenHandler) CreateNewContainer(name string) {
	slog.Debug("create container", slog.String("name", name), slog.Int("depth", len(h.stack)))
	h.stack = append(h.stack, container.NewBuilder().SetName(name))
}

// AddMemberVariable adds m to the builder on top. Without an open container
// it does nothing.
func (h *TypeGenHandler) AddMemberVariable(m container.MemberVariable) {
	if len(h.stack) == 0 {
		slog.Debug("member outside of a container ignored", slog.String("member", m.Name))
		return
	}
	h.stack[len(h.stack)-1].AddMember(m)
}

// BuildCurrentContainer pops the builder on top and generates its class.
// Without an open container it does nothing.
func (h *TypeGenHandler) BuildCurrentContainer() error {
	if len(h.stack) == 0 {
		slog.Debug("build without an open container ignored")
		return nil
	}
	b := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]

	c, err := b.Build()
	if err != nil {
		return err
	}
	e, err := h.strategy.GenerateClassObject(c)
	if err != nil {
		return errors.Wrapf(err, "generate %s", c.Name())
	}
	if err = h.strategy.ApplyRestrictions(e, c); err != nil {
		return errors.Wrapf(err, "restrict %s", c.Name())
	}
	f, err := h.strategy.NewSourceFile(e, h.pkg)
	if err != nil {
		return errors.Wrapf(err, "source file for %s", c.Name())
	}
	if err = h.ws.Add(f); err != nil {
		return err
	}
	slog.Debug("built container",
		slog.String("name", c.Name()),
		slog.Int("members", c.Len()),
		slog.String("file", workspace.FullyQualifiedName(f)+f.Extension()))
	return nil
}

func (h *TypeGenHandler) StartSchema(s *model.Schema) error {
	h.schema = s
	if h.pkg == "" {
		h.pkg = s.Package
	}
	return nil
}

func (h *TypeGenHandler) EndSchema(s *model.Schema) error {
	if len(h.stack) > 0 {
		return errors.CodeValidationf("schema %s ended with %d open containers", s.Name, len(h.stack))
	}
	return nil
}

func (h *TypeGenHandler) StartTopLevelElement(e *model.Element) error {
	h.elements = append(h.elements, e)
	return nil
}

func (h *TypeGenHandler) EndTopLevelElement(*model.Element) error {
	h.elements = h.elements[:len(h.elements)-1]
	return nil
}

func (h *TypeGenHandler) StartLocalElement(e *model.Element) error {
	m, err := h.member(e, e.Name, e.MaxOccurs)
	if err != nil {
		return err
	}
	h.AddMemberVariable(m)
	h.elements = append(h.elements, e)
	return nil
}

func (h *TypeGenHandler) EndLocalElement(*model.Element) error {
	h.elements = h.elements[:len(h.elements)-1]
	return nil
}

// StartElementReference adds a member for the referenced top-level element
// with the occurrence bounds of the reference.
func (h *TypeGenHandler) StartElementReference(e *model.Element) error {
	target := h.schema.ElementByName(e.Ref)
	if target == nil {
		return errors.NotFoundf("element %s not found", e.Ref)
	}
	m, err := h.member(target, target.Name, e.MaxOccurs)
	if err != nil {
		return err
	}
	h.AddMemberVariable(m)
	return nil
}

func (h *TypeGenHandler) EndElementReference(*model.Element) error { return nil }

func (h *TypeGenHandler) StartTopLevelSimpleType(t *model.Type) error {
	slog.Debug("simple type resolved into members", slog.String("type", t.Name))
	return nil
}

func (h *TypeGenHandler) EndTopLevelSimpleType(*model.Type) error { return nil }

func (h *TypeGenHandler) StartTopLevelComplexType(t *model.Type) error {
	h.CreateNewContainer(t.Name)
	return nil
}

func (h *TypeGenHandler) EndTopLevelComplexType(*model.Type) error {
	return h.BuildCurrentContainer()
}

func (h *TypeGenHandler) StartLocalSimpleType(*model.Type) error { return nil }
func (h *TypeGenHandler) EndLocalSimpleType(*model.Type) error   { return nil }

// StartLocalComplexType opens a container named after the element declaring
// the type.
func (h *TypeGenHandler) StartLocalComplexType(*model.Type) error {
	if len(h.elements) == 0 {
		return errors.CodeValidationf("anonymous complex type outside of an element")
	}
	h.CreateNewContainer(className(h.elements[len(h.elements)-1].Name))
	return nil
}

func (h *TypeGenHandler) EndLocalComplexType(*model.Type) error {
	return h.BuildCurrentContainer()
}

func (h *TypeGenHandler) Attribute(a *model.Attribute) error {
	var (
		typ string
		r   *container.Restriction
		err error
	)
	if a.SimpleType != nil {
		typ, r, err = h.schema.ResolveInline(a.SimpleType)
	} else {
		typ, r, err = h.schema.Resolve(a.Type)
	}
	if err != nil {
		return err
	}
	h.AddMemberVariable(container.MemberVariable{
		Kind:        container.Attribute,
		Type:        typ,
		Name:        a.Name,
		Value:       a.Default,
		Restriction: a.Restriction.Overlay(r),
	})
	return nil
}

// member describes the element e under name, repeated per occurs.
func (h *TypeGenHandler) member(e *model.Element, name string, occurs model.Occurs) (container.MemberVariable, error) {
	var (
		typ string
		r   *container.Restriction
		err error
	)
	switch {
	case e.ComplexType != nil:
		typ = className(e.Name)
	case e.SimpleType != nil:
		typ, r, err = h.schema.ResolveInline(e.SimpleType)
	default:
		typ, r, err = h.schema.Resolve(e.Type)
	}
	if err != nil {
		return container.MemberVariable{}, err
	}
	m := container.MemberVariable{
		Kind:        container.Element,
		Type:        typ,
		Name:        name,
		Value:       e.Default,
		Restriction: e.Restriction.Overlay(r),
	}
	if occurs > 1 {
		m.Kind = container.ElementArray
		m.Size = int(occurs)
		m.Value = ""
	}
	return m, nil
}

func className(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return name
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
