package manifest

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cmmoran/srcgen/pkg/errors"
)

// Run is one recorded generation run. Archive names the txtar snapshot of
// every generated file, relative to the manifest.
type Run struct {
	Version   string   `yaml:"version" json:"version"`
	Schema    string   `yaml:"schema" json:"schema"`
	Language  string   `yaml:"language" json:"language"`
	Framework string   `yaml:"framework,omitempty" json:"framework,omitempty"`
	Archive   string   `yaml:"archive" json:"archive"`
	Files     []string `yaml:"files" json:"files"`
}

// Manifest tracks the generation runs of a project.
type Manifest struct {
	CurrentVersion  string `yaml:"current_version" json:"current_version"`
	PreviousVersion string `yaml:"previous_version" json:"previous_version"`
	Runs            []Run  `yaml:"runs" json:"runs"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "unmarshal manifest")
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create manifest directory")
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "marshal manifest")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write manifest")
	}

	return nil
}

// AddRun records a run, updating version pointers. A run with the version
// of a recorded run replaces it.
func (m *Manifest) AddRun(r Run) {
	if m.CurrentVersion != "" && m.CurrentVersion != r.Version {
		m.PreviousVersion = m.CurrentVersion
	}
	m.CurrentVersion = r.Version

	for i := range m.Runs {
		if m.Runs[i].Version == r.Version {
			m.Runs[i] = r
			return
		}
	}

	m.Runs = append(m.Runs, r)
}

// RunByVersion returns the run recorded for version.
func (m *Manifest) RunByVersion(version string) (Run, bool) {
	for _, r := range m.Runs {
		if r.Version == version {
			return r, true
		}
	}
	return Run{}, false
}
