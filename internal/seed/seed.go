// Package seed provides the task list a fresh process starts with.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tasklist/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

var (
	ErrDuplicateID = errors.New("duplicate task id")
	ErrEmptyTitle  = errors.New("empty task title")
	ErrEmptyID     = errors.New("empty task id")
	ErrBadPriority = errors.New("invalid priority")
)

type file struct {
	Tasks []domain.Task `yaml:"tasks"`
}

// Default returns the embedded seed tasks.
func Default() []domain.Task {
	tasks, err := Parse(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded seed: %v", err))
	}
	return tasks
}

// Load reads a seed file. An empty path yields the embedded seed.
func Load(path string) ([]domain.Task, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	tasks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return tasks, nil
}

func Parse(data []byte) ([]domain.Task, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Tasks))
	for i, t := range f.Tasks {
		if t.ID == "" {
			return nil, fmt.Errorf("task %d: %w", i, ErrEmptyID)
		}
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("task %s: %w", t.ID, ErrEmptyTitle)
		}
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("task %s: %w", t.ID, ErrDuplicateID)
		}
		seen[t.ID] = struct{}{}

		if t.Priority == "" {
			f.Tasks[i].Priority = domain.PriorityMedium
		} else if !t.Priority.Valid() {
			return nil, fmt.Errorf("task %s: %w %q", t.ID, ErrBadPriority, t.Priority)
		}
	}

	if f.Tasks == nil {
		f.Tasks = []domain.Task{}
	}
	return f.Tasks, nil
}
