// Package metrics registers the prometheus instruments for the orchestrator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WorkflowsCreated counts workflows materialized from templates,
	// labeled by workflow type.
	WorkflowsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devcrew_workflows_created_total",
		Help: "Number of workflows created, by workflow type.",
	}, []string{"type"})

	// TasksCompleted counts successful task completions, labeled by agent.
	TasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devcrew_tasks_completed_total",
		Help: "Number of tasks completed, by agent.",
	}, []string{"agent"})

	// CompletionConflicts counts completion attempts rejected because the
	// task was already completed.
	CompletionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devcrew_task_completion_conflicts_total",
		Help: "Number of completion attempts on already-completed tasks.",
	})
)
