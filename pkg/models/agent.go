package models

// AgentCapability describes one entry in the agent capability registry.
// Registry entries are immutable reference data; the scheduler never reads
// them, they exist for validation and display.
type AgentCapability struct {
	// Name is the agent identifier tasks are assigned to.
	Name string `json:"name" yaml:"name"`
	// Role is the one-line description of the agent's responsibility.
	Role string `json:"role" yaml:"role"`
	// Expertise lists the agent's areas of competence.
	Expertise []string `json:"expertise" yaml:"expertise"`
	// HandoffTargets lists agents this agent typically hands work to.
	HandoffTargets []string `json:"handoff_targets" yaml:"handoff_targets"`
	// Constraints lists decisions this agent must not make.
	Constraints []string `json:"constraints" yaml:"constraints"`
	// Tools lists tools the agent works with.
	Tools []string `json:"tools,omitempty" yaml:"tools"`
	// OutputFormat is the response template external actors fill in.
	OutputFormat string `json:"output_format,omitempty" yaml:"output_format"`
	// BaseDuration is the advisory base duration estimate in minutes.
	BaseDuration int `json:"base_duration,omitempty" yaml:"base_duration"`
}

// AgentResponse is a logged response from an external agent actor.
// Responses are journaled for analytics; they never drive scheduling.
type AgentResponse struct {
	// Agent is the registry entry that produced the response.
	Agent string `json:"agent"`
	// Analysis is the agent's analysis text.
	Analysis string `json:"analysis"`
	// Recommendation is the agent's recommendation.
	Recommendation string `json:"recommendation"`
	// NextSteps describes follow-up work.
	NextSteps string `json:"next_steps"`
	// Handoff optionally names the agent to hand off to.
	Handoff string `json:"handoff,omitempty"`
	// Artifacts lists artifact references attached to the response.
	Artifacts []string `json:"artifacts,omitempty"`
}
