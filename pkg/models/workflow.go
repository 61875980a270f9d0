package models

import "time"

// WorkflowStatus represents the aggregate state of a workflow.
type WorkflowStatus string

const (
	// WorkflowStatusActive indicates at least one member task is incomplete.
	WorkflowStatusActive WorkflowStatus = "active"
	// WorkflowStatusCompleted indicates every member task is completed.
	WorkflowStatusCompleted WorkflowStatus = "completed"
)

// Workflow is a named instantiation of a workflow template.
// The task id list is fixed at creation; status is derived from the member
// tasks on demand, never stored redundantly.
type Workflow struct {
	// ID is the unique identifier for this workflow.
	ID string `json:"id"`
	// Type is the workflow-template identifier used to build it.
	Type string `json:"type"`
	// Description is the free-text description given at creation.
	Description string `json:"description"`
	// TaskIDs lists the member tasks in template order.
	TaskIDs []string `json:"task_ids"`
	// Status is the derived aggregate status.
	Status WorkflowStatus `json:"status"`
	// CreatedAt is when the workflow was created.
	CreatedAt time.Time `json:"created_at"`
	// ProjectContext carries caller-supplied context for the whole workflow.
	ProjectContext Metadata `json:"project_context,omitempty"`
}

// Clone returns a deep copy of the workflow.
func (w *Workflow) Clone() *Workflow {
	out := *w
	if w.TaskIDs != nil {
		out.TaskIDs = append([]string(nil), w.TaskIDs...)
	}
	out.ProjectContext = w.ProjectContext.Clone()
	return &out
}

// Progress summarizes completion of one workflow's tasks.
type Progress struct {
	// WorkflowID is the workflow this progress describes.
	WorkflowID string `json:"workflow_id"`
	// TotalTasks is the number of member tasks.
	TotalTasks int `json:"total_tasks"`
	// CompletedTasks is the number of member tasks that are completed.
	CompletedTasks int `json:"completed_tasks"`
	// Percentage is completed/total*100, or 0 when the workflow has no tasks.
	Percentage float64 `json:"progress_percentage"`
}

// Done returns true once every member task is completed.
func (p Progress) Done() bool {
	return p.TotalTasks > 0 && p.CompletedTasks == p.TotalTasks
}
