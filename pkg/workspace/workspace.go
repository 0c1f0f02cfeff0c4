// Package workspace collects the source files of one generation run and
// writes them below an output root.
package workspace

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
)

// Element is a class-shaped declaration produced by a generation strategy.
type Element interface {
	Name() string
	FullyQualifiedName() string
	Render(sb *strings.Builder, depth int)
	String() string
}

// File is a source file ready to be written.
type File interface {
	// String renders the whole file.
	String() string
	FileName() string
	// PackageName is the Java package, the C++ namespace or the Go import path.
	PackageName() string
	Extension() string
}

// Workspace aggregates files for one run. It is not safe for concurrent use.
type Workspace struct {
	opts     Options
	files    []File
	byKey    map[string]File
	modPath  string
	modFound bool
}

func New(opts ...Option) *Workspace {
	return NewWithOpts(NewOptions(opts...))
}

func NewWithOpts(opts Options) *Workspace {
	return &Workspace{opts: opts, byKey: map[string]File{}}
}

func (w *Workspace) Options() Options { return w.opts }

// FullyQualifiedName returns the dotted package and file name of f.
func FullyQualifiedName(f File) string {
	pkg := dotted(f.PackageName())
	if pkg == "" {
		return f.FileName()
	}
	return pkg + "." + f.FileName()
}

func dotted(pkg string) string {
	pkg = strings.ReplaceAll(pkg, "::", ".")
	return strings.Trim(strings.ReplaceAll(pkg, "/", "."), ".")
}

func key(f File) string { return FullyQualifiedName(f) + f.Extension() }

// Add registers f. Two files with the same fully qualified name and
// extension are duplicates.
func (w *Workspace) Add(f File) error {
	if f == nil {
		return errors.IllegalArgumentf("nil file")
	}
	if f.FileName() == "" {
		return errors.IllegalArgumentf("file in package %q has no name", f.PackageName())
	}
	k := key(f)
	if _, ok := w.byKey[k]; ok {
		return errors.Duplicatef("file %s already registered", k)
	}
	w.byKey[k] = f
	w.files = append(w.files, f)
	return nil
}

// Lookup returns the first file whose fully qualified name is fqn, with or
// without its extension.
func (w *Workspace) Lookup(fqn string) (File, bool) {
	if f, ok := w.byKey[fqn]; ok {
		return f, true
	}
	for _, f := range w.files {
		if FullyQualifiedName(f) == fqn {
			return f, true
		}
	}
	return nil, false
}

// Files returns the registered files in insertion order.
func (w *Workspace) Files() []File { return append([]File(nil), w.files...) }

// Path returns where f is written: root, subdirectory, the package mapped to
// a directory, then the file name and extension.
func (w *Workspace) Path(f File) (string, error) {
	dir, err := w.packageDir(f)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.opts.Root, w.opts.Subdir, dir, f.FileName()+f.Extension()), nil
}

func (w *Workspace) packageDir(f File) (string, error) {
	pkg := f.PackageName()
	if pkg == "" {
		return "", nil
	}
	if mapped, rest, ok := w.mapPrefix(pkg); ok {
		return filepath.Join(filepath.FromSlash(mapped), rest), nil
	}
	if f.Extension() == ".go" {
		return w.goPackageDir(pkg)
	}
	return filepath.Join(strings.Split(dotted(pkg), ".")...), nil
}

// mapPrefix applies the longest configured package prefix that matches pkg.
func (w *Workspace) mapPrefix(pkg string) (string, string, bool) {
	norm := dotted(pkg)
	prefixes := make([]string, 0, len(w.opts.Prefixes))
	for p := range w.opts.Prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(dotted(prefixes[i])) > len(dotted(prefixes[j])) })
	for _, p := range prefixes {
		dp := dotted(p)
		switch {
		case norm == dp:
			return w.opts.Prefixes[p], "", true
		case strings.HasPrefix(norm, dp+"."):
			rest := strings.Split(strings.TrimPrefix(norm, dp+"."), ".")
			return w.opts.Prefixes[p], filepath.Join(rest...), true
		}
	}
	return "", "", false
}

// goPackageDir strips the module path of the nearest go.mod above the output
// root from an import path.
func (w *Workspace) goPackageDir(importPath string) (string, error) {
	if !w.modFound {
		mod := w.opts.ModulePath
		if mod == "" {
			var err error
			if mod, err = modulePath(w.opts.Root); err != nil && !errors.Is(err, errors.ErrNotFound) {
				return "", err
			}
		}
		w.modPath, w.modFound = mod, true
	}
	switch {
	case w.modPath == "":
		return filepath.FromSlash(importPath), nil
	case importPath == w.modPath:
		return "", nil
	case strings.HasPrefix(importPath, w.modPath+"/"):
		return filepath.FromSlash(strings.TrimPrefix(importPath, w.modPath+"/")), nil
	}
	return "", errors.IllegalArgumentf("package %s is outside module %s", importPath, w.modPath)
}

// Generate renders every file and writes it, followed by a newline. It
// returns the written paths in insertion order. The context is checked
// between files.
func (w *Workspace) Generate(ctx context.Context) ([]string, error) {
	written := make([]string, 0, len(w.files))
	for _, f := range w.files {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		path, err := w.Path(f)
		if err != nil {
			return written, errors.Wrapf(err, "resolving path of %s", FullyQualifiedName(f))
		}
		if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, errors.Wrapf(err, "creating directory for %s", path)
		}
		text := f.String() + "\n"
		if err = os.WriteFile(path, []byte(text), 0o644); err != nil {
			return written, errors.Wrapf(err, "writing %s", path)
		}
		slog.Debug("wrote source file", slog.String("path", path), slog.Int("bytes", len(text)))
		written = append(written, path)
	}
	return written, nil
}
