package models

import (
	"testing"
	"time"
)

func TestTaskStatusValid(t *testing.T) {
	valid := []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if TaskStatus("done").Valid() {
		t.Error("expected unknown status to be invalid")
	}
	if TaskStatus("").Valid() {
		t.Error("expected empty status to be invalid")
	}
}

func TestTaskStatusCompletedIsTerminal(t *testing.T) {
	targets := []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusBlocked, TaskStatusCompleted}
	for _, next := range targets {
		if TaskStatusCompleted.CanTransitionTo(next) {
			t.Errorf("completed must not transition to %q", next)
		}
	}
}

func TestTaskStatusForwardTransitions(t *testing.T) {
	if !TaskStatusPending.CanTransitionTo(TaskStatusInProgress) {
		t.Error("pending -> in_progress should be allowed")
	}
	if !TaskStatusPending.CanTransitionTo(TaskStatusCompleted) {
		t.Error("pending -> completed should be allowed")
	}
	if !TaskStatusBlocked.CanTransitionTo(TaskStatusCompleted) {
		t.Error("blocked -> completed should be allowed")
	}
	if TaskStatusInProgress.CanTransitionTo(TaskStatusPending) {
		t.Error("in_progress -> pending is a backward transition")
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() {
		t.Error("high must rank before medium")
	}
	if PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Error("medium must rank before low")
	}
	if Priority("urgent").Rank() != PriorityMedium.Rank() {
		t.Error("unknown priority should rank as medium")
	}
}

func TestMetadataWorkflowID(t *testing.T) {
	m := Metadata{MetaWorkflowID: "wf-1", MetaWorkflowType: "bug-fix"}
	if got := m.WorkflowID(); got != "wf-1" {
		t.Errorf("expected wf-1, got %q", got)
	}
	if got := Metadata(nil).WorkflowID(); got != "" {
		t.Errorf("expected empty workflow id for nil metadata, got %q", got)
	}
	if got := (Metadata{MetaWorkflowID: 42}).WorkflowID(); got != "" {
		t.Errorf("expected empty workflow id for non-string value, got %q", got)
	}
}

func TestTaskCloneIsDeep(t *testing.T) {
	now := time.Now()
	task := &Task{
		ID:           "task-1",
		Agent:        "qa",
		Status:       TaskStatusPending,
		Dependencies: []string{"task-0"},
		Priority:     PriorityMedium,
		Metadata:     Metadata{MetaWorkflowID: "wf-1"},
		CreatedAt:    now,
	}

	clone := task.Clone()
	clone.Dependencies[0] = "mutated"
	clone.Metadata[MetaWorkflowID] = "mutated"
	clone.Status = TaskStatusCompleted

	if task.Dependencies[0] != "task-0" {
		t.Error("clone shares dependency slice with original")
	}
	if task.Metadata.WorkflowID() != "wf-1" {
		t.Error("clone shares metadata map with original")
	}
	if task.Status != TaskStatusPending {
		t.Error("clone shares status with original")
	}
}

func TestWorkflowCloneIsDeep(t *testing.T) {
	wf := &Workflow{
		ID:      "wf-1",
		Type:    "bug-fix",
		TaskIDs: []string{"a", "b"},
		Status:  WorkflowStatusActive,
	}
	clone := wf.Clone()
	clone.TaskIDs[0] = "mutated"
	if wf.TaskIDs[0] != "a" {
		t.Error("clone shares task id slice with original")
	}
}

func TestProgressDone(t *testing.T) {
	if (Progress{TotalTasks: 0, CompletedTasks: 0}).Done() {
		t.Error("empty workflow should not report done")
	}
	if (Progress{TotalTasks: 6, CompletedTasks: 5}).Done() {
		t.Error("5/6 should not report done")
	}
	if !(Progress{TotalTasks: 6, CompletedTasks: 6}).Done() {
		t.Error("6/6 should report done")
	}
}
