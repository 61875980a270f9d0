package orchestrator

import (
	"math"

	"github.com/ShayCichocki/devcrew/internal/catalog"
)

// EstimateDuration computes the advisory duration in minutes for a task:
// the agent's base duration scaled by the workflow type's multiplier,
// truncated toward zero. Unknown agents and types fall back to the
// catalog defaults, so an estimate is always produced.
func EstimateDuration(cat *catalog.Catalog, agent, workflowType string) int {
	base := float64(cat.BaseDuration(agent))
	return int(math.Floor(base * cat.Multiplier(workflowType)))
}
