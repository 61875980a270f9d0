package models

import "time"

// TaskStatus represents the current state of a task.
type TaskStatus string

const (
	// TaskStatusPending indicates the task has not started.
	TaskStatusPending TaskStatus = "pending"
	// TaskStatusInProgress indicates the task is being worked on.
	TaskStatusInProgress TaskStatus = "in_progress"
	// TaskStatusCompleted indicates the task finished successfully.
	TaskStatusCompleted TaskStatus = "completed"
	// TaskStatusBlocked indicates the task cannot proceed.
	TaskStatusBlocked TaskStatus = "blocked"
)

// Valid returns true if the status is a known value.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is a forward
// transition. Completed is terminal; a completed task is never revived.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	if s == TaskStatusCompleted {
		return false
	}
	switch next {
	case TaskStatusInProgress, TaskStatusBlocked:
		return s == TaskStatusPending || s == TaskStatusInProgress
	case TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// Priority represents the scheduling priority of a task.
// Priority only affects ordering among eligible tasks, never preemption.
type Priority string

const (
	// PriorityHigh schedules before medium and low.
	PriorityHigh Priority = "high"
	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"
	// PriorityLow schedules after high and medium.
	PriorityLow Priority = "low"
)

// Valid returns true if the priority is a known value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank returns the sort rank for the priority. Lower ranks schedule first.
// Unknown priorities rank as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// Metadata is an opaque string-keyed bag of caller-supplied context.
// It is set at task creation and never mutated afterwards.
type Metadata map[string]any

// Well-known metadata keys carried on every template-materialized task.
const (
	// MetaWorkflowID is the id of the workflow the task belongs to.
	MetaWorkflowID = "workflow_id"
	// MetaWorkflowType is the template type the workflow was built from.
	MetaWorkflowType = "workflow_type"
	// MetaProjectContext is the caller-supplied project context.
	MetaProjectContext = "project_context"
)

// Clone returns a shallow copy of the metadata bag.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// WorkflowID returns the workflow id carried in the metadata, if any.
func (m Metadata) WorkflowID() string {
	if m == nil {
		return ""
	}
	id, _ := m[MetaWorkflowID].(string)
	return id
}

// Task represents a unit of work assigned to one agent.
// ID, Description, Agent, Dependencies, Priority, Metadata, CreatedAt and
// EstimatedDuration are immutable after creation. Output, Artifacts and
// CompletedAt are populated exactly once, on completion.
type Task struct {
	// ID is the unique identifier for this task.
	ID string `json:"id"`
	// Description is the free-text description of the work.
	Description string `json:"description"`
	// Agent names the capability registry entry this task is assigned to.
	Agent string `json:"agent"`
	// Status is the current state of the task.
	Status TaskStatus `json:"status"`
	// Dependencies lists task IDs that must complete before this task.
	Dependencies []string `json:"dependencies"`
	// Priority orders this task among eligible tasks.
	Priority Priority `json:"priority"`
	// Output is the agent's result, set on completion.
	Output string `json:"output,omitempty"`
	// Artifacts lists artifact references produced by the agent.
	Artifacts []string `json:"artifacts,omitempty"`
	// Metadata carries opaque caller context (workflow id, type, project context).
	Metadata Metadata `json:"metadata,omitempty"`
	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`
	// StartedAt is when work on the task began, if it has.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt is when the task was completed, if it has been.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// EstimatedDuration is the advisory duration estimate in minutes.
	EstimatedDuration int `json:"estimated_duration,omitempty"`
}

// Completed returns true if the task has reached its terminal state.
func (t *Task) Completed() bool {
	return t.Status == TaskStatusCompleted
}

// Clone returns a deep copy of the task. Stores hand out clones so callers
// can never observe a partially applied mutation.
func (t *Task) Clone() *Task {
	out := *t
	if t.Dependencies != nil {
		out.Dependencies = append([]string(nil), t.Dependencies...)
	}
	if t.Artifacts != nil {
		out.Artifacts = append([]string(nil), t.Artifacts...)
	}
	out.Metadata = t.Metadata.Clone()
	if t.StartedAt != nil {
		started := *t.StartedAt
		out.StartedAt = &started
	}
	if t.CompletedAt != nil {
		completed := *t.CompletedAt
		out.CompletedAt = &completed
	}
	return &out
}
