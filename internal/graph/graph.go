// Package graph provides dependency-graph validation and readiness
// computation over a snapshot of tasks.
package graph

import (
	"errors"
	"fmt"

	"github.com/ShayCichocki/devcrew/pkg/models"
)

// ErrCycleDetected indicates a circular dependency was found in the task graph.
var ErrCycleDetected = errors.New("circular dependency detected")

// DependencyGraph is a directed graph of task dependencies built from a
// point-in-time snapshot. Edges represent "blocked by" relationships.
// A graph is built fresh per use and never shared, so it needs no locking;
// consistency comes from the snapshot it was built from.
type DependencyGraph struct {
	// nodes maps task ID to the task itself.
	nodes map[string]*models.Task
	// edges maps task ID to IDs of tasks it depends on (is blocked by).
	edges map[string][]string
	// order holds task IDs in snapshot order.
	order []string
}

// FromTasks builds a graph from a task snapshot. Dependency ids that do not
// resolve to a task in the snapshot are kept as dangling edges; Validate
// rejects them, Ready treats them as unsatisfied.
func FromTasks(tasks []*models.Task) *DependencyGraph {
	g := &DependencyGraph{
		nodes: make(map[string]*models.Task, len(tasks)),
		edges: make(map[string][]string, len(tasks)),
	}
	for _, task := range tasks {
		g.nodes[task.ID] = task
		g.edges[task.ID] = append([]string(nil), task.Dependencies...)
		g.order = append(g.order, task.ID)
	}
	return g
}

// Validate rejects dependency sets no scheduler could ever satisfy: edges to
// unknown tasks, self-dependencies, and cycles. The template-driven creation
// path only produces linear chains, but arbitrary dependency sets are a
// data-model capability and must be checked.
func (g *DependencyGraph) Validate() error {
	for _, id := range g.order {
		for _, depID := range g.edges[id] {
			if depID == id {
				return fmt.Errorf("task %s depends on itself: %w", id, ErrCycleDetected)
			}
			if _, exists := g.nodes[depID]; !exists {
				return fmt.Errorf("task %s depends on unknown task %s", id, depID)
			}
		}
	}
	if g.hasCycle() {
		return ErrCycleDetected
	}
	return nil
}

// HasCycle returns true if the graph contains a circular dependency.
// Uses depth-first search with coloring to detect back edges.
func (g *DependencyGraph) HasCycle() bool {
	return g.hasCycle()
}

func (g *DependencyGraph) hasCycle() bool {
	// Color states: 0 = white (unvisited), 1 = gray (in progress), 2 = black (done).
	colors := make(map[string]int, len(g.nodes))

	var visit func(id string) bool
	visit = func(id string) bool {
		colors[id] = 1

		for _, depID := range g.edges[id] {
			if _, exists := g.nodes[depID]; !exists {
				// Dangling edge, cannot close a cycle.
				continue
			}
			switch colors[depID] {
			case 1:
				return true
			case 0:
				if visit(depID) {
					return true
				}
			}
		}

		colors[id] = 2
		return false
	}

	for id := range g.nodes {
		if colors[id] == 0 {
			if visit(id) {
				return true
			}
		}
	}
	return false
}

// Ready returns the tasks eligible for execution: status pending and every
// dependency resolved to a completed task. A dependency id that resolves to
// no task is treated as unsatisfied, making the task permanently ineligible.
// Results are in snapshot order.
func (g *DependencyGraph) Ready() []*models.Task {
	var ready []*models.Task

	for _, id := range g.order {
		task := g.nodes[id]
		if task.Status != models.TaskStatusPending {
			continue
		}

		satisfied := true
		for _, depID := range g.edges[id] {
			dep, exists := g.nodes[depID]
			if !exists || !dep.Completed() {
				satisfied = false
				break
			}
		}

		if satisfied {
			ready = append(ready, task)
		}
	}
	return ready
}

// Size returns the number of tasks in the graph.
func (g *DependencyGraph) Size() int {
	return len(g.nodes)
}

// Dependents returns the IDs of tasks that depend on the given task.
func (g *DependencyGraph) Dependents(taskID string) []string {
	var dependents []string
	for _, id := range g.order {
		for _, depID := range g.edges[id] {
			if depID == taskID {
				dependents = append(dependents, id)
				break
			}
		}
	}
	return dependents
}
