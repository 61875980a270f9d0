package store

import (
	"testing"

	"github.com/ShayCichocki/devcrew/pkg/models"
)

func TestWorkflowStoreCreateAndGet(t *testing.T) {
	s := NewWorkflowStore()
	err := s.Create(&models.Workflow{ID: "wf-1", Type: "bug-fix", TaskIDs: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wf, err := s.Get("wf-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wf.Status != models.WorkflowStatusActive {
		t.Errorf("expected default status active, got %q", wf.Status)
	}
	if len(wf.TaskIDs) != 2 {
		t.Errorf("expected 2 task ids, got %d", len(wf.TaskIDs))
	}
	if wf.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestWorkflowStoreGetNotFound(t *testing.T) {
	s := NewWorkflowStore()
	_, err := s.Get("missing")
	if !IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestWorkflowStoreCreateConflict(t *testing.T) {
	s := NewWorkflowStore()
	if err := s.Create(&models.Workflow{ID: "wf-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := s.Create(&models.Workflow{ID: "wf-1"})
	if !IsConflict(err) {
		t.Errorf("expected ConflictError, got %v", err)
	}
}

func TestWorkflowStoreListInsertionOrder(t *testing.T) {
	s := NewWorkflowStore()
	for _, id := range []string{"wf-2", "wf-1", "wf-3"} {
		if err := s.Create(&models.Workflow{ID: id}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 workflows, got %d", len(list))
	}
	if list[0].ID != "wf-2" || list[1].ID != "wf-1" || list[2].ID != "wf-3" {
		t.Errorf("expected insertion order, got %s %s %s", list[0].ID, list[1].ID, list[2].ID)
	}
}
