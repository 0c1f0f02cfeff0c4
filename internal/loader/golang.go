package loader

import (
	"go/ast"
	"go/token"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/jinzhu/inflection"
	"golang.org/x/tools/go/packages"

	"github.com/cmmoran/srcgen/internal/model"
	"github.com/cmmoran/srcgen/pkg/errors"
)

// builtins maps Go basic types to XML Schema builtins.
var builtins = map[string]string{
	"string":  "string",
	"bool":    "boolean",
	"int":     "int",
	"int8":    "byte",
	"int16":   "short",
	"int32":   "int",
	"int64":   "long",
	"uint":    "long",
	"uint8":   "short",
	"uint16":  "int",
	"uint32":  "long",
	"uint64":  "integer",
	"float32": "float",
	"float64": "double",
}

// LoadGo reads the Go package in dir. Every struct becomes a complex type;
// a named basic type becomes a simple type. Fields follow their encoding/xml
// tags: ",attr" makes an attribute, "-" skips the field and XMLName declares
// the struct as a top-level element. Slices and arrays are repeated
// elements, named after the singular of the field when the tag has no name.
//
// Two more tags are read: default:"v" and facets:"k=v;...".
func LoadGo(dir string, opts ...Option) (*model.Schema, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  dir,
		Fset: token.NewFileSet(),
	}, ".")
	if err != nil {
		return nil, errors.Wrapf(err, "load package in %s", dir)
	}
	if len(pkgs) != 1 {
		return nil, errors.NotFoundf("expected one package in %s, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, errors.Wrapf(pkg.Errors[0], "load package %s", pkg.PkgPath)
	}

	o := newOptions(opts)
	s := &model.Schema{Name: pkg.Name, Package: pkg.PkgPath}
	for _, file := range pkg.Syntax {
		if err = collectTypes(s, file, o); err != nil {
			return nil, errors.Wrapf(err, "package %s", pkg.PkgPath)
		}
	}
	return finish(s, o)
}

func collectTypes(s *model.Schema, file *ast.File, o *Options) error {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		genComment := commentText(gen.Doc)
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Assign.IsValid() || ts.TypeParams != nil || !ts.Name.IsExported() {
				continue
			}
			comment := genComment
			if doc := commentText(ts.Doc); doc != "" {
				comment = strings.TrimSpace(comment + "\n" + doc)
			}
			if o.excluded(ts.Name.Name, comment) {
				continue
			}

			switch t := ts.Type.(type) {
			case *ast.Ident:
				if base, ok := builtins[t.Name]; ok {
					s.Types = append(s.Types, &model.Type{Name: ts.Name.Name, Comment: comment, Base: base})
				}
			case *ast.StructType:
				typ := &model.Type{Name: ts.Name.Name, Comment: comment}
				for _, fld := range t.Fields.List {
					if err := addField(s, typ, fld, o); err != nil {
						return errors.Wrapf(err, "type %s", typ.Name)
					}
				}
				s.Types = append(s.Types, typ)
			}
		}
	}
	return nil
}

func addField(s *model.Schema, typ *model.Type, fld *ast.Field, o *Options) error {
	if len(fld.Names) == 0 {
		slog.Debug("embedded field skipped", slog.String("type", typ.Name))
		return nil
	}
	if o.ExcludeDeprecated &&
		(strings.Contains(commentText(fld.Doc), "Deprecated") || strings.Contains(commentText(fld.Comment), "Deprecated")) {
		return nil
	}

	var tag reflect.StructTag
	if fld.Tag != nil {
		raw, err := strconv.Unquote(fld.Tag.Value)
		if err != nil {
			return errors.Wrapf(err, "tag %s", fld.Tag.Value)
		}
		tag = reflect.StructTag(raw)
	}
	xt := parseXMLTag(tag)
	facets, err := parseFacets(tag.Get("facets"))
	if err != nil {
		return err
	}

	for _, id := range fld.Names {
		if !id.IsExported() || xt.omit {
			continue
		}
		if id.Name == "XMLName" {
			name := xt.name
			if name == "" {
				name = typ.Name
			}
			s.Elements = append(s.Elements, &model.Element{Name: name, Type: typ.Name})
			continue
		}

		ref, ok := typeOf(fld.Type)
		if !ok {
			slog.Warn("field type not representable, skipped",
				slog.String("type", typ.Name), slog.String("field", id.Name))
			continue
		}
		name := xt.name
		if name == "" {
			name = id.Name
			if ref.occurs > 1 {
				name = inflection.Singular(name)
			}
		}

		if xt.attr {
			if ref.occurs > 1 {
				return errors.CodeValidationf("attribute %s cannot repeat", id.Name)
			}
			typ.Attributes = append(typ.Attributes, &model.Attribute{
				Name: name, Type: ref.name, Default: tag.Get("default"), Restriction: facets.Clone(),
			})
			continue
		}
		e := &model.Element{
			Name:        name,
			Type:        ref.name,
			Default:     tag.Get("default"),
			MaxOccurs:   ref.occurs,
			Restriction: facets.Clone(),
		}
		if ref.optional {
			zero := 0
			e.MinOccurs = &zero
		}
		typ.Elements = append(typ.Elements, e)
	}
	return nil
}

type typeRef struct {
	name     string
	occurs   model.Occurs
	optional bool
}

// typeOf maps a field type expression to a schema type. Pointers are
// optional, slices unbounded and arrays bounded by their length.
func typeOf(expr ast.Expr) (typeRef, bool) {
	switch t := expr.(type) {
	case *ast.Ident:
		if base, ok := builtins[t.Name]; ok {
			return typeRef{name: base}, true
		}
		if t.IsExported() {
			return typeRef{name: t.Name}, true
		}
	case *ast.StarExpr:
		ref, ok := typeOf(t.X)
		if !ok || ref.occurs > 1 {
			return typeRef{}, false
		}
		ref.optional = true
		return ref, true
	case *ast.ArrayType:
		elem, ok := typeOf(t.Elt)
		if !ok || elem.occurs > 1 {
			return typeRef{}, false
		}
		elem.occurs = model.Unbounded
		if t.Len != nil {
			lit, ok := t.Len.(*ast.BasicLit)
			if !ok || lit.Kind != token.INT {
				return typeRef{}, false
			}
			n, err := strconv.Atoi(lit.Value)
			if err != nil {
				return typeRef{}, false
			}
			elem.occurs = model.Occurs(n)
		}
		return elem, true
	}
	return typeRef{}, false
}

func commentText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range cg.List {
		txt := strings.TrimSpace(strings.Trim(strings.TrimPrefix(strings.TrimPrefix(c.Text, "//"), "/*"), "*/"))
		b.WriteString(txt)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
