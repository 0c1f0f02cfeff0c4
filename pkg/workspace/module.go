package workspace

import (
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/cmmoran/srcgen/pkg/errors"
)

// findGoModDir walks up from dir until it finds go.mod.
func findGoModDir(dir string) (string, error) {
	from, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err = os.Stat(filepath.Join(from, "go.mod")); err == nil {
			return from, nil
		}
		parent := filepath.Dir(from)
		if parent == from {
			return "", errors.NotFoundf("no go.mod found above %s", dir)
		}
		from = parent
	}
}

// modulePath reads the module path of the nearest go.mod above dir.
func modulePath(dir string) (string, error) {
	modDir, err := findGoModDir(dir)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(modDir, "go.mod"))
	if err != nil {
		return "", err
	}
	mf, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil {
		return "", errors.Wrapf(err, "parsing %s", filepath.Join(modDir, "go.mod"))
	}
	if mf.Module == nil {
		return "", errors.NotFoundf("%s declares no module", filepath.Join(modDir, "go.mod"))
	}
	return mf.Module.Mod.Path, nil
}
