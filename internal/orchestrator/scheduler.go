package orchestrator

import (
	"sort"

	"github.com/ShayCichocki/devcrew/internal/graph"
	"github.com/ShayCichocki/devcrew/pkg/models"
)

// Eligible filters a task snapshot down to the tasks that may start now
// and orders them by (priority rank, created_at) ascending. Ties keep the
// snapshot's insertion order. The snapshot is not mutated beyond ordering
// of the returned slice.
func Eligible(snapshot []*models.Task) []*models.Task {
	ready := graph.FromTasks(snapshot).Ready()
	sort.SliceStable(ready, func(i, j int) bool {
		ri, rj := ready[i].Priority.Rank(), ready[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return ready[i].CreatedAt.Before(ready[j].CreatedAt)
	})
	return ready
}
