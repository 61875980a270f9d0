// Package catalog holds the agent capability registry and the workflow
// template catalog. Both are immutable reference data: loaded once at
// process start, consumed by the orchestrator, never mutated.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ShayCichocki/devcrew/pkg/models"
)

// Template describes the canonical task sequence for one workflow type.
type Template struct {
	// Description is a human-readable summary of the workflow type.
	Description string `yaml:"description" json:"description"`
	// Sequence is the ordered list of agent names; each materialized task
	// depends on its immediate predecessor.
	Sequence []string `yaml:"sequence" json:"sequence"`
	// Multiplier scales agent base durations for this workflow type.
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

// Catalog bundles the agent registry and the template catalog.
// A Catalog must be treated as read-only once constructed.
type Catalog struct {
	agents    map[string]models.AgentCapability
	templates map[string]Template
}

// Agent returns the capability record for the given agent name.
func (c *Catalog) Agent(name string) (models.AgentCapability, bool) {
	a, ok := c.agents[name]
	return a, ok
}

// Agents returns all capability records keyed by agent name.
func (c *Catalog) Agents() map[string]models.AgentCapability {
	out := make(map[string]models.AgentCapability, len(c.agents))
	for k, v := range c.agents {
		out[k] = v
	}
	return out
}

// AgentNames returns all agent names in sorted order.
func (c *Catalog) AgentNames() []string {
	names := make([]string, 0, len(c.agents))
	for name := range c.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AgentCount returns the number of registered agents.
func (c *Catalog) AgentCount() int {
	return len(c.agents)
}

// Template returns the template for the given workflow type.
func (c *Catalog) Template(workflowType string) (Template, bool) {
	t, ok := c.templates[workflowType]
	return t, ok
}

// Templates returns all templates keyed by workflow type.
func (c *Catalog) Templates() map[string]Template {
	out := make(map[string]Template, len(c.templates))
	for k, v := range c.templates {
		out[k] = v
	}
	return out
}

// TemplateTypes returns all workflow type names in sorted order.
func (c *Catalog) TemplateTypes() []string {
	types := make([]string, 0, len(c.templates))
	for t := range c.templates {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// BaseDuration returns the advisory base duration in minutes for an agent.
// Unknown agents degrade to the default rather than erroring; estimates are
// informational only.
func (c *Catalog) BaseDuration(agent string) int {
	if a, ok := c.agents[agent]; ok && a.BaseDuration > 0 {
		return a.BaseDuration
	}
	return defaultBaseDuration
}

// Multiplier returns the duration multiplier for a workflow type, falling
// back to 1.0 for unknown types.
func (c *Catalog) Multiplier(workflowType string) float64 {
	if t, ok := c.templates[workflowType]; ok && t.Multiplier > 0 {
		return t.Multiplier
	}
	return 1.0
}

const defaultBaseDuration = 30

// New constructs a catalog from explicit agent and template maps.
// Used by tests to run the orchestrator against synthetic catalogs.
func New(agents map[string]models.AgentCapability, templates map[string]Template) (*Catalog, error) {
	c := &Catalog{
		agents:    make(map[string]models.AgentCapability, len(agents)),
		templates: make(map[string]Template, len(templates)),
	}
	for name, a := range agents {
		if name == "" {
			return nil, fmt.Errorf("agent name must not be empty")
		}
		a.Name = name
		c.agents[name] = a
	}
	for wfType, t := range templates {
		if len(t.Sequence) == 0 {
			return nil, fmt.Errorf("template %s has an empty agent sequence", wfType)
		}
		c.templates[wfType] = t
	}
	return c, nil
}

// Load reads agents.yaml and templates.yaml from dir. A missing file falls
// back to the built-in defaults for that half of the catalog, so a deployment
// can override either independently.
func Load(dir string) (*Catalog, error) {
	agents := defaultAgents()
	templates := defaultTemplates()

	agentsPath := filepath.Join(dir, "agents.yaml")
	if data, err := os.ReadFile(agentsPath); err == nil {
		loaded := map[string]models.AgentCapability{}
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", agentsPath, err)
		}
		agents = loaded
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", agentsPath, err)
	}

	templatesPath := filepath.Join(dir, "templates.yaml")
	if data, err := os.ReadFile(templatesPath); err == nil {
		loaded := map[string]Template{}
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", templatesPath, err)
		}
		templates = loaded
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", templatesPath, err)
	}

	return New(agents, templates)
}

// Default returns the built-in development-team catalog.
func Default() *Catalog {
	c, err := New(defaultAgents(), defaultTemplates())
	if err != nil {
		// Built-in data; a construction failure is a programming error.
		panic(err)
	}
	return c
}
