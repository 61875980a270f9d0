// Package orchestrator coordinates workflow materialization, task
// completion, scheduling, and progress aggregation over the shared stores.
package orchestrator

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ShayCichocki/devcrew/internal/catalog"
	"github.com/ShayCichocki/devcrew/internal/graph"
	"github.com/ShayCichocki/devcrew/internal/logger"
	"github.com/ShayCichocki/devcrew/internal/metrics"
	"github.com/ShayCichocki/devcrew/internal/state"
	"github.com/ShayCichocki/devcrew/internal/store"
	"github.com/ShayCichocki/devcrew/pkg/models"
)

// UnknownTemplateError indicates a workflow type absent from the catalog.
type UnknownTemplateError struct {
	// Type is the workflow type that failed to resolve.
	Type string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown workflow type: %s", e.Type)
}

// Orchestrator owns the task and workflow stores and exposes every
// operation of the core: workflow creation, task completion, eligibility
// queries, and progress aggregation.
type Orchestrator struct {
	catalog   *catalog.Catalog
	tasks     *store.TaskStore
	workflows *store.WorkflowStore
	// journal is the optional audit journal; writes are best-effort.
	journal *state.Journal
	// createMu serializes workflow creation so the insert-tasks-then-register
	// sequence is atomic with respect to other creations.
	createMu sync.Mutex
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithJournal attaches an event journal. Journal failures are logged and
// never surfaced to callers.
func WithJournal(j *state.Journal) Option {
	return func(o *Orchestrator) {
		o.journal = j
	}
}

// New creates an Orchestrator over fresh, empty stores.
func New(cat *catalog.Catalog, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog:   cat,
		tasks:     store.NewTaskStore(),
		workflows: store.NewWorkflowStore(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Catalog returns the immutable catalog the orchestrator was built with.
func (o *Orchestrator) Catalog() *catalog.Catalog {
	return o.catalog
}

// CreateWorkflowResult is the result of a successful workflow creation.
type CreateWorkflowResult struct {
	// WorkflowID is the id of the new workflow.
	WorkflowID string `json:"workflow_id"`
	// TaskIDs lists the materialized tasks in template order.
	TaskIDs []string `json:"task_ids"`
	// NextTask is the first task the scheduler would select now, if any.
	NextTask *models.Task `json:"next_task,omitempty"`
}

// CreateWorkflow materializes a workflow from the template for workflowType.
// Each task at position i depends on its immediate predecessor, yielding a
// linear chain. All tasks and the workflow commit as one unit: a failure
// partway leaves both stores unchanged.
func (o *Orchestrator) CreateWorkflow(workflowType, description string, projectContext models.Metadata) (*CreateWorkflowResult, error) {
	template, ok := o.catalog.Template(workflowType)
	if !ok {
		return nil, &UnknownTemplateError{Type: workflowType}
	}

	workflowID := uuid.NewString()
	now := time.Now().UTC()

	tasks := make([]*models.Task, 0, len(template.Sequence))
	taskIDs := make([]string, 0, len(template.Sequence))
	for i, agent := range template.Sequence {
		taskID := uuid.NewString()
		var deps []string
		if i > 0 {
			deps = []string{taskIDs[i-1]}
		}

		tasks = append(tasks, &models.Task{
			ID:           taskID,
			Description:  fmt.Sprintf("%s: %s", agent, description),
			Agent:        agent,
			Status:       models.TaskStatusPending,
			Dependencies: deps,
			Priority:     models.PriorityMedium,
			Metadata: models.Metadata{
				models.MetaWorkflowID:     workflowID,
				models.MetaWorkflowType:   workflowType,
				models.MetaProjectContext: projectContext,
			},
			CreatedAt:         now,
			EstimatedDuration: EstimateDuration(o.catalog, agent, workflowType),
		})
		taskIDs = append(taskIDs, taskID)
	}

	// Defensive: the chain generator cannot produce cycles or dangling
	// dependencies, but the data model demands they be rejected.
	if err := graph.FromTasks(tasks).Validate(); err != nil {
		return nil, fmt.Errorf("invalid task graph for workflow %s: %w", workflowType, err)
	}

	o.createMu.Lock()
	defer o.createMu.Unlock()

	if err := o.tasks.CreateAll(tasks); err != nil {
		return nil, err
	}
	if err := o.workflows.Create(&models.Workflow{
		ID:             workflowID,
		Type:           workflowType,
		Description:    description,
		TaskIDs:        taskIDs,
		Status:         models.WorkflowStatusActive,
		CreatedAt:      now,
		ProjectContext: projectContext,
	}); err != nil {
		// Workflow ids are freshly generated under createMu; a collision here
		// is unreachable short of a broken generator.
		return nil, err
	}

	metrics.WorkflowsCreated.WithLabelValues(workflowType).Inc()
	o.record(state.EventWorkflowCreated, workflowID, "", workflowType)
	logger.Logger.Info().
		Str("workflow_id", workflowID).
		Str("type", workflowType).
		Int("tasks", len(taskIDs)).
		Msg("workflow created")

	var next *models.Task
	if eligible := o.NextTasks(); len(eligible) > 0 {
		next = eligible[0]
	}

	return &CreateWorkflowResult{
		WorkflowID: workflowID,
		TaskIDs:    taskIDs,
		NextTask:   next,
	}, nil
}

// CompleteTaskResult is the result of a successful task completion.
type CompleteTaskResult struct {
	// CompletedTask is the final state of the completed task.
	CompletedTask *models.Task `json:"completed_task"`
	// NextTasks is the freshly recomputed global eligible list.
	NextTasks []*models.Task `json:"next_tasks"`
	// Progress is the recomputed progress of the task's own workflow.
	Progress models.Progress `json:"workflow_progress"`
}

// CompleteTask marks a task completed exactly once, then recomputes the
// global eligible set and the task's workflow progress. A task that is
// absent fails with NotFoundError; one already completed fails with
// InvalidStateError and is left untouched.
func (o *Orchestrator) CompleteTask(taskID, output string, artifacts []string) (*CompleteTaskResult, error) {
	task, err := o.tasks.Complete(taskID, output, artifacts)
	if err != nil {
		if store.IsInvalidState(err) {
			metrics.CompletionConflicts.Inc()
		}
		return nil, err
	}

	metrics.TasksCompleted.WithLabelValues(task.Agent).Inc()
	o.record(state.EventTaskCompleted, task.Metadata.WorkflowID(), task.ID, task.Agent)
	logger.Logger.Info().
		Str("task_id", task.ID).
		Str("agent", task.Agent).
		Msg("task completed")

	return &CompleteTaskResult{
		CompletedTask: task,
		NextTasks:     o.NextTasks(),
		Progress:      o.Progress(task.Metadata.WorkflowID()),
	}, nil
}

// NextTasks returns the eligible tasks across all workflows, ordered by
// (priority rank, created_at), recomputed fresh from a store snapshot.
func (o *Orchestrator) NextTasks() []*models.Task {
	return Eligible(o.tasks.List())
}

// GetTask returns one task by id.
func (o *Orchestrator) GetTask(id string) (*models.Task, error) {
	return o.tasks.Get(id)
}

// WorkflowDetail is a workflow with its member tasks and progress.
type WorkflowDetail struct {
	// Workflow is the workflow entity with its derived status.
	Workflow *models.Workflow `json:"workflow"`
	// Tasks lists the member tasks in template order.
	Tasks []*models.Task `json:"tasks"`
	// Progress is the workflow's current completion summary.
	Progress models.Progress `json:"progress"`
}

// GetWorkflow returns the workflow, its tasks in template order, and its
// progress. The workflow's status is derived from its tasks at read time.
func (o *Orchestrator) GetWorkflow(id string) (*WorkflowDetail, error) {
	wf, err := o.workflows.Get(id)
	if err != nil {
		return nil, err
	}

	tasks := make([]*models.Task, 0, len(wf.TaskIDs))
	for _, taskID := range wf.TaskIDs {
		task, err := o.tasks.Get(taskID)
		if err != nil {
			return nil, fmt.Errorf("workflow %s references missing task: %w", id, err)
		}
		tasks = append(tasks, task)
	}

	progress := progressOf(wf, tasks)
	wf.Status = models.WorkflowStatusActive
	if progress.Done() {
		wf.Status = models.WorkflowStatusCompleted
	}

	return &WorkflowDetail{Workflow: wf, Tasks: tasks, Progress: progress}, nil
}

// ListWorkflows returns all workflows with derived statuses.
func (o *Orchestrator) ListWorkflows() []*models.Workflow {
	workflows := o.workflows.List()
	for _, wf := range workflows {
		if o.Progress(wf.ID).Done() {
			wf.Status = models.WorkflowStatusCompleted
		}
	}
	return workflows
}

// LogAgentResponse journals a response reported by an external agent actor.
// The agent must exist in the capability registry.
func (o *Orchestrator) LogAgentResponse(resp models.AgentResponse) error {
	if _, ok := o.catalog.Agent(resp.Agent); !ok {
		return &store.NotFoundError{Kind: "agent", ID: resp.Agent}
	}

	o.record(state.EventAgentResponse, "", "", resp.Agent)
	logger.Logger.Info().
		Str("agent", resp.Agent).
		Str("handoff", resp.Handoff).
		Msg("agent response logged")
	return nil
}

// SystemStatus summarizes all workflows and tasks.
type SystemStatus struct {
	// SystemStatus is a fixed health marker for dashboard display.
	SystemStatus string `json:"system_status"`
	// ActiveWorkflows is the number of registered workflows.
	ActiveWorkflows int `json:"active_workflows"`
	// TotalTasks counts all tasks across workflows.
	TotalTasks int `json:"total_tasks"`
	// CompletedTasks counts tasks in the completed state.
	CompletedTasks int `json:"completed_tasks"`
	// PendingTasks counts tasks in the pending state.
	PendingTasks int `json:"pending_tasks"`
	// InProgressTasks counts tasks in the in_progress state.
	InProgressTasks int `json:"in_progress_tasks"`
	// ProgressPercentage is completed/total*100 across all tasks.
	ProgressPercentage float64 `json:"progress_percentage"`
	// NextTasks holds up to three next eligible tasks.
	NextTasks []*models.Task `json:"next_tasks"`
}

// Status computes the system-wide status summary from a single snapshot.
func (o *Orchestrator) Status() SystemStatus {
	snapshot := o.tasks.List()

	status := SystemStatus{
		SystemStatus:    "healthy",
		ActiveWorkflows: o.workflows.Len(),
		TotalTasks:      len(snapshot),
	}
	for _, task := range snapshot {
		switch task.Status {
		case models.TaskStatusCompleted:
			status.CompletedTasks++
		case models.TaskStatusPending:
			status.PendingTasks++
		case models.TaskStatusInProgress:
			status.InProgressTasks++
		}
	}
	if status.TotalTasks > 0 {
		status.ProgressPercentage = float64(status.CompletedTasks) / float64(status.TotalTasks) * 100
	}

	next := Eligible(snapshot)
	if len(next) > 3 {
		next = next[:3]
	}
	status.NextTasks = next
	return status
}

// record appends to the journal if one is attached. Journal failures must
// never mask the operation that triggered them.
func (o *Orchestrator) record(kind, workflowID, taskID, detail string) {
	if o.journal == nil {
		return
	}
	if err := o.journal.Append(kind, workflowID, taskID, detail); err != nil {
		logger.Logger.Warn().Err(err).Str("kind", kind).Msg("journal append failed")
	}
}
