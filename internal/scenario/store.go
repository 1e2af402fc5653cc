// Package scenario provides file-backed persistence for saved
// simulation inputs.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/qcfin/qcsim/internal/domain"
)

// FileStore keeps all scenarios in a single YAML file. Writes go
// through a temp file and rename so a crash cannot truncate the store.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the per-user scenario file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "qcsim", "scenarios.yaml"), nil
}

type storeFile struct {
	Scenarios []domain.Scenario `yaml:"scenarios"`
}

// Save writes the scenario, replacing any existing one with the same name.
func (s *FileStore) Save(scenario domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	scenarios, err := s.List()
	if err != nil {
		return err
	}

	replaced := false
	for i := range scenarios {
		if scenarios[i].Name == scenario.Name {
			scenarios[i] = scenario
			replaced = true
			break
		}
	}
	if !replaced {
		scenarios = append(scenarios, scenario)
	}

	return s.write(scenarios)
}

// List returns all saved scenarios sorted by name. A missing store file
// is an empty store, not an error.
func (s *FileStore) List() ([]domain.Scenario, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var file storeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	sort.Slice(file.Scenarios, func(i, j int) bool {
		return file.Scenarios[i].Name < file.Scenarios[j].Name
	})
	return file.Scenarios, nil
}

// Delete removes the named scenario. Deleting a name that does not
// exist is an error so the caller can surface a typo.
func (s *FileStore) Delete(name string) error {
	scenarios, err := s.List()
	if err != nil {
		return err
	}

	kept := scenarios[:0]
	found := false
	for _, sc := range scenarios {
		if sc.Name == name {
			found = true
			continue
		}
		kept = append(kept, sc)
	}
	if !found {
		return fmt.Errorf("scenario %q not found", name)
	}

	return s.write(kept)
}

func (s *FileStore) write(scenarios []domain.Scenario) error {
	data, err := yaml.Marshal(storeFile{Scenarios: scenarios})
	if err != nil {
		return fmt.Errorf("failed to encode scenarios: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create scenario directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace scenario file: %w", err)
	}
	return nil
}
