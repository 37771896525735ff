// Package memstore provides an in-memory implementation of TaskRepository.
// The collection lives for the lifetime of the Store; nothing is written to disk.
package memstore

import (
	"fmt"
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements the repository ports.
var (
	_ domain.TaskRepository = (*Store)(nil)
	_ domain.TaskMutator    = (*Store)(nil)
)

// Store keeps tasks newest-first. Every method holds one exclusive lock,
// so each operation is atomic with respect to the next read.
type Store struct {
	tasks []*domain.Task
	mu    sync.Mutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// NewWithTasks creates a Store holding copies of tasks in the given order.
// Duplicate IDs are rejected.
func NewWithTasks(tasks []*domain.Task) (*Store, error) {
	s := New()
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		s.tasks = append(s.tasks, t.Clone())
	}
	return s, nil
}

// Get retrieves a task by ID. Returns nil if not found.
func (s *Store) Get(id string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i].Clone(), nil
	}
	return nil, nil
}

// List retrieves tasks matching the filter in stored order.
func (s *Store) List(filter domain.Filter) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.CloneTasks(filter.Apply(s.tasks)), nil
}

// Prepend inserts a new task at the front.
func (s *Store) Prepend(task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(task.ID) >= 0 {
		return fmt.Errorf("duplicate task id %q", task.ID)
	}
	s.tasks = append([]*domain.Task{task.Clone()}, s.tasks...)
	return nil
}

// Update replaces the stored task with the same ID without moving it.
func (s *Store) Update(task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(task.ID)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	s.tasks[i] = task.Clone()
	return nil
}

// Mutate applies fn to a copy of the stored task and stores the result,
// all under the lock. If fn fails, nothing changes.
func (s *Store) Mutate(id string, fn func(*domain.Task) error) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}
	task := s.tasks[i].Clone()
	if err := fn(task); err != nil {
		return nil, err
	}
	task.ID = id
	s.tasks[i] = task
	return task.Clone(), nil
}

// Delete removes a task by ID and reports whether it existed.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true, nil
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}

// indexOf returns the position of id, or -1. Caller must hold the lock.
func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
