package seed

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/runoshun/todo/internal/domain"
	"gopkg.in/yaml.v3"
)

// fileData is the YAML layout of a seed file.
//
//	tasks:
//	  - text: Buy milk
//	  - id: report
//	    text: Write report
//	    completed: true
//	    createdAt: 2026-01-02T09:00:00Z
//	    completedAt: 2026-01-03T18:30:00Z
type fileData struct {
	Tasks []fileTask `yaml:"tasks"`
}

// Fields are ordered to minimize memory padding.
type fileTask struct {
	CreatedAt   *time.Time `yaml:"createdAt"`
	CompletedAt *time.Time `yaml:"completedAt"`
	ID          string     `yaml:"id"`
	Text        string     `yaml:"text"`
	Completed   bool       `yaml:"completed"`
}

// LoadFile reads seed tasks from a YAML file.
func LoadFile(path string, ids domain.IDGenerator, now time.Time) ([]*domain.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	tasks, err := Load(f, ids, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}

// Load decodes seed tasks from r, in display order (first entry on top).
// Missing ids are generated and a missing createdAt defaults to now.
func Load(r io.Reader, ids domain.IDGenerator, now time.Time) ([]*domain.Task, error) {
	var data fileData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSeed, err)
	}

	seen := make(map[string]struct{}, len(data.Tasks))
	tasks := make([]*domain.Task, 0, len(data.Tasks))
	for i, ft := range data.Tasks {
		task, err := ft.toDomain(ids, now)
		if err != nil {
			return nil, fmt.Errorf("%w: task #%d: %w", domain.ErrInvalidSeed, i+1, err)
		}
		if _, dup := seen[task.ID]; dup {
			return nil, fmt.Errorf("%w: task #%d: duplicate id %q", domain.ErrInvalidSeed, i+1, task.ID)
		}
		seen[task.ID] = struct{}{}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (ft fileTask) toDomain(ids domain.IDGenerator, now time.Time) (*domain.Task, error) {
	text, err := domain.NormalizeText(ft.Text)
	if err != nil {
		return nil, err
	}
	if ft.Completed != (ft.CompletedAt != nil) {
		return nil, fmt.Errorf("completed and completedAt disagree")
	}

	id := ft.ID
	if id == "" {
		id, err = ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate id: %w", err)
		}
	}

	createdAt := now
	if ft.CreatedAt != nil {
		createdAt = *ft.CreatedAt
	}

	task := domain.NewTask(id, text, createdAt)
	task.Completed = ft.Completed
	if ft.CompletedAt != nil {
		at := *ft.CompletedAt
		task.CompletedAt = &at
	}
	return task, nil
}
