// Package adapter contains infrastructure adapters for the pvc CLI.
package adapter

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/jeqcho/pvc-playground/internal/model"
)

// ProfileStore abstracts where preference profiles come from and go to, so
// the workflow logic can be tested without touching the disk. The core
// itself is persistence-free; a profile is loaded wholesale per invocation.
type ProfileStore interface {
	// Load reads a profile document from path.
	Load(ctx context.Context, path m.Path) (m.Profile, error)

	// Save writes a profile document to path.
	Save(ctx context.Context, path m.Path, profile m.Profile) error
}

// profileDoc is the on-disk YAML shape of a profile.
type profileDoc struct {
	Alternatives []string   `yaml:"alternatives"`
	Rankings     [][]string `yaml:"rankings"`
}

type yamlProfileStore struct{}

// NewYAMLProfileStore returns a ProfileStore backed by YAML files.
func NewYAMLProfileStore() ProfileStore {
	return &yamlProfileStore{}
}

func (s *yamlProfileStore) Load(ctx context.Context, path m.Path) (m.Profile, error) {
	if err := ctx.Err(); err != nil {
		return m.Profile{}, err
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.Profile{}, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var doc profileDoc
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return m.Profile{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	profile := m.Profile{
		Alternatives: make([]m.Alternative, len(doc.Alternatives)),
		Rankings:     make([]m.Ranking, len(doc.Rankings)),
	}

	for i, alt := range doc.Alternatives {
		profile.Alternatives[i] = m.Alternative(alt)
	}

	for v, ranking := range doc.Rankings {
		profile.Rankings[v] = make(m.Ranking, len(ranking))
		for i, alt := range ranking {
			profile.Rankings[v][i] = m.Alternative(alt)
		}
	}

	return profile, nil
}

func (s *yamlProfileStore) Save(ctx context.Context, path m.Path, profile m.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := profileDoc{
		Alternatives: make([]string, profile.M()),
		Rankings:     make([][]string, profile.N()),
	}

	for i, alt := range profile.Alternatives {
		doc.Alternatives[i] = string(alt)
	}

	for v, ranking := range profile.Rankings {
		doc.Rankings[v] = make([]string, len(ranking))
		for i, alt := range ranking {
			doc.Rankings[v][i] = string(alt)
		}
	}

	content, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := os.WriteFile(string(path), content, 0o644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}

	return nil
}
