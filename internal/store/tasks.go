// Package store provides the in-memory task and workflow stores.
// Both stores guard their maps with a RWMutex and only ever hand out clones,
// so a concurrent reader can never observe a half-applied mutation.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/ShayCichocki/devcrew/pkg/models"
)

// TaskStore is the authoritative owner of task entities.
// Tasks are never deleted. Insertion order is preserved and exposed through
// List, which gives the scheduler a stable tie-break for equal timestamps.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*models.Task
	// order holds task ids in insertion order.
	order []string
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[string]*models.Task),
	}
}

// Create inserts a new task. It fails with a ConflictError if the id is
// already taken. The store keeps its own clone of the task.
func (s *TaskStore) Create(task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(task)
}

// CreateAll inserts every task or none of them. All ids are checked before
// the first insert, so a collision partway cannot leave a partial batch
// visible to readers.
func (s *TaskStore) CreateAll(tasks []*models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		if task.ID == "" {
			return fmt.Errorf("task id must not be empty")
		}
		if _, exists := s.tasks[task.ID]; exists {
			return &ConflictError{Kind: "task", ID: task.ID}
		}
		if seen[task.ID] {
			return &ConflictError{Kind: "task", ID: task.ID}
		}
		seen[task.ID] = true
	}

	for _, task := range tasks {
		if err := s.createLocked(task); err != nil {
			return err
		}
	}
	return nil
}

// createLocked inserts a single task. Caller must hold the write lock.
func (s *TaskStore) createLocked(task *models.Task) error {
	if task.ID == "" {
		return fmt.Errorf("task id must not be empty")
	}
	if _, exists := s.tasks[task.ID]; exists {
		return &ConflictError{Kind: "task", ID: task.ID}
	}

	stored := task.Clone()
	if stored.Status == "" {
		stored.Status = models.TaskStatusPending
	}
	if stored.Priority == "" {
		stored.Priority = models.PriorityMedium
	}
	if !stored.Status.Valid() {
		return fmt.Errorf("task %s has invalid status %q", task.ID, task.Status)
	}
	if !stored.Priority.Valid() {
		return fmt.Errorf("task %s has invalid priority %q", task.ID, task.Priority)
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	s.tasks[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return nil
}

// Get returns a clone of the task, or a NotFoundError.
func (s *TaskStore) Get(id string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, &NotFoundError{Kind: "task", ID: id}
	}
	return task.Clone(), nil
}

// Complete transitions the task to completed exactly once, recording output,
// artifacts and the completion time atomically. A second call for the same
// task fails with an InvalidStateError and changes nothing. Concurrent calls
// are linearized by the write lock: exactly one succeeds.
func (s *TaskStore) Complete(id, output string, artifacts []string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, &NotFoundError{Kind: "task", ID: id}
	}
	if task.Status == models.TaskStatusCompleted {
		return nil, &InvalidStateError{ID: id, Reason: "task already completed"}
	}

	now := time.Now().UTC()
	task.Status = models.TaskStatusCompleted
	task.Output = output
	task.Artifacts = append([]string(nil), artifacts...)
	task.CompletedAt = &now

	return task.Clone(), nil
}

// List returns a snapshot of all tasks in insertion order. The snapshot is
// taken under one read lock, so it reflects the store at a single instant.
func (s *TaskStore) List() []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tasks[id].Clone())
	}
	return out
}

// Len returns the number of tasks in the store.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
