package repos

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Johannes-Berggren/repodash/internal/models"
)

// Source supplies the records shown by the dashboard.
type Source interface {
	Repositories() ([]models.Repository, error)
}

// Static is an in-memory dataset.
type Static []models.Repository

// Repositories returns a copy so callers cannot mutate the dataset.
func (s Static) Repositories() ([]models.Repository, error) {
	out := make([]models.Repository, len(s))
	copy(out, s)
	return out, nil
}

// Reference returns the built-in dataset.
func Reference() Static {
	return Static{
		{Name: "one", Branches: models.Text("two"), PRs: models.Text("three"), Workspaces: "four", LastCommit: "five"},
		{Name: "one - 2", Branches: nil, PRs: nil, Workspaces: "four - 2", LastCommit: "five - 2"},
		{Name: "one - 3", Branches: models.Text("two - 3"), PRs: models.Text("three - 3"), Workspaces: "four - 3", LastCommit: "five - 3"},
	}
}

// File reads a YAML dataset from disk on every call, so a reload picks up edits.
type File struct {
	Path string
}

func (f File) Repositories() ([]models.Repository, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	repos, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return repos, nil
}

// Open picks the dataset: a scan of scanRoot, the YAML file at path, or the
// reference dataset when both are empty.
func Open(path, scanRoot string) Source {
	switch {
	case scanRoot != "":
		return Scan{Root: scanRoot}
	case path != "":
		return File{Path: path}
	}
	return Reference()
}

type document struct {
	Repositories []models.Repository `yaml:"repositories"`
}

// ErrDuplicateName is returned when two records share a name.
var ErrDuplicateName = errors.New("duplicate repository name")

// Decode parses a dataset document:
//
//	repositories:
//	  - name: api
//	    branches: "3"
//	    prs: null
//	    workspaces: "2"
//	    lastCommit: 2h ago
//
// Missing fields decode as empty and are rendered as empty cells.
func Decode(r io.Reader) ([]models.Repository, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Repository{}, nil
		}
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Repositories))
	for _, repo := range doc.Repositories {
		if repo.Name == "" {
			continue
		}
		if _, ok := seen[repo.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, repo.Name)
		}
		seen[repo.Name] = struct{}{}
	}

	if doc.Repositories == nil {
		return []models.Repository{}, nil
	}
	return doc.Repositories, nil
}
