package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/ShayCichocki/devcrew/pkg/models"
)

// WorkflowStore is the authoritative owner of workflow entities. It holds
// task ids by value only; task lifetime is governed by the TaskStore.
type WorkflowStore struct {
	mu        sync.RWMutex
	workflows map[string]*models.Workflow
	order     []string
}

// NewWorkflowStore creates an empty workflow store.
func NewWorkflowStore() *WorkflowStore {
	return &WorkflowStore{
		workflows: make(map[string]*models.Workflow),
	}
}

// Create registers a workflow. Fails with a ConflictError if the id exists.
func (s *WorkflowStore) Create(wf *models.Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if wf.ID == "" {
		return fmt.Errorf("workflow id must not be empty")
	}
	if _, exists := s.workflows[wf.ID]; exists {
		return &ConflictError{Kind: "workflow", ID: wf.ID}
	}

	stored := wf.Clone()
	if stored.Status == "" {
		stored.Status = models.WorkflowStatusActive
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	s.workflows[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return nil
}

// Get returns a clone of the workflow, or a NotFoundError.
func (s *WorkflowStore) Get(id string) (*models.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wf, ok := s.workflows[id]
	if !ok {
		return nil, &NotFoundError{Kind: "workflow", ID: id}
	}
	return wf.Clone(), nil
}

// List returns a snapshot of all workflows in insertion order.
func (s *WorkflowStore) List() []*models.Workflow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Workflow, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.workflows[id].Clone())
	}
	return out
}

// Len returns the number of workflows in the store.
func (s *WorkflowStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workflows)
}
