package modules

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest is a project's sindarin.yaml (§4.8, C10): a small declarative
// file naming additional import search roots, the same "small declarative
// project file" concern as the teacher's funxy.yaml
// (funxy/internal/ext/config.go), parsed with the same library.
type Manifest struct {
	Name  string   `yaml:"name"`
	Roots []string `yaml:"roots"`
}

// LoadManifest reads and parses the sindarin.yaml at path. A missing file
// is not an error: it yields a zero-value Manifest, since a project
// without one simply has no additional search roots beyond each
// importing file's own directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ResolveRoots turns m.Roots (paths relative to the manifest's own
// directory, manifestDir) into absolute paths for Resolver.
func (m *Manifest) ResolveRoots(manifestDir string) []string {
	abs := make([]string, 0, len(m.Roots))
	for _, r := range m.Roots {
		if filepath.IsAbs(r) {
			abs = append(abs, r)
		} else {
			abs = append(abs, filepath.Join(manifestDir, r))
		}
	}
	return abs
}
