// Package snapshot records generation runs in a manifest. Each run keeps a
// txtar archive of the files it wrote so that runs can be compared later.
package snapshot

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/cmmoran/srcgen/pkg/action/generate"
	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/manifest"
	"github.com/cmmoran/srcgen/pkg/workspace"
)

// ArchiveDir holds the archives, next to the manifest.
const ArchiveDir = "snapshots"

// Generate runs a generation and records it in the manifest under version.
// It returns the path of the written archive.
func Generate(ctx context.Context, opts *generate.Options, manifestPath, version string) (string, error) {
	if version == "" {
		return "", errors.IllegalArgumentf("no snapshot version given")
	}
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	res, err := generate.Generate(ctx, opts)
	if err != nil {
		return "", err
	}

	ar, err := Archive(res.Workspace)
	if err != nil {
		return "", err
	}
	rel := filepath.Join(ArchiveDir, version+".txtar")
	path := filepath.Join(filepath.Dir(manifestPath), rel)
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrap(err, "create snapshot directory")
	}
	if err = os.WriteFile(path, txtar.Format(ar), 0o644); err != nil {
		return "", errors.Wrap(err, "write snapshot")
	}

	m.AddRun(manifest.Run{
		Version:   version,
		Schema:    opts.Schema,
		Language:  opts.Language,
		Framework: opts.Framework,
		Archive:   filepath.ToSlash(rel),
		Files:     res.Written,
	})
	if err = m.Save(manifestPath); err != nil {
		return "", err
	}
	return path, nil
}

// Archive renders every file of ws into an archive keyed by the path
// relative to the output root.
func Archive(ws *workspace.Workspace) (*txtar.Archive, error) {
	root := ws.Options().Root
	ar := &txtar.Archive{}
	for _, f := range ws.Files() {
		path, err := ws.Path(f)
		if err != nil {
			return nil, err
		}
		if rel, err := filepath.Rel(root, path); err == nil {
			path = rel
		}
		ar.Files = append(ar.Files, txtar.File{Name: filepath.ToSlash(path), Data: []byte(f.String() + "\n")})
	}
	return ar, nil
}

// List returns all runs recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the archives of the
// current and previous runs and returns a diff of their files.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", errors.WithHint(errors.NotFoundf("no current/previous runs recorded"), "record two snapshots first")
	}

	current, err := readArchive(manifestPath, m, m.CurrentVersion)
	if err != nil {
		return "", err
	}
	previous, err := readArchive(manifestPath, m, m.PreviousVersion)
	if err != nil {
		return "", err
	}

	return cmp.Diff(previous, current), nil
}

// readArchive returns the files of the run version keyed by path.
func readArchive(manifestPath string, m *manifest.Manifest, version string) (map[string]string, error) {
	r, ok := m.RunByVersion(version)
	if !ok || r.Archive == "" {
		return nil, errors.NotFoundf("run %s not found in manifest", version)
	}
	ar, err := txtar.ParseFile(filepath.Join(filepath.Dir(manifestPath), filepath.FromSlash(r.Archive)))
	if err != nil {
		return nil, errors.Wrapf(err, "read snapshot %s", version)
	}
	files := make(map[string]string, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = string(f.Data)
	}
	return files, nil
}
