package orchestrator

import "github.com/ShayCichocki/devcrew/pkg/models"

// Progress computes the completion summary for one workflow. An unknown
// workflow id yields an empty Progress rather than an error: progress is a
// monitoring read and must not fail a completion that already succeeded.
func (o *Orchestrator) Progress(workflowID string) models.Progress {
	wf, err := o.workflows.Get(workflowID)
	if err != nil {
		return models.Progress{WorkflowID: workflowID}
	}

	tasks := make([]*models.Task, 0, len(wf.TaskIDs))
	for _, taskID := range wf.TaskIDs {
		task, err := o.tasks.Get(taskID)
		if err != nil {
			continue
		}
		tasks = append(tasks, task)
	}
	return progressOf(wf, tasks)
}

func progressOf(wf *models.Workflow, tasks []*models.Task) models.Progress {
	p := models.Progress{
		WorkflowID: wf.ID,
		TotalTasks: len(tasks),
	}
	for _, task := range tasks {
		if task.Completed() {
			p.CompletedTasks++
		}
	}
	if p.TotalTasks > 0 {
		p.Percentage = float64(p.CompletedTasks) / float64(p.TotalTasks) * 100
	}
	return p
}
