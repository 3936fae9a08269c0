// Package types provides the wire types exchanged with the MMSS backend API.
// This package exists to break import cycles between api, console, and campaign.
// Types in this package mirror the server's JSON shapes and carry no behavior
// beyond serialization.
package types

import "encoding/json"

// PhysicsMetrics holds the four derived physics constants the backend
// computes on every metrics refresh. Field names match the server JSON.
type PhysicsMetrics struct {
	EmergentElectronMass  float64 `json:"emergent_electron_mass"`
	FineStructureConstant float64 `json:"fine_structure_constant"`
	QuaternionCoherence   float64 `json:"quaternion_coherence"`
	TopologicalWinding    float64 `json:"topological_winding"`
}

// MetricsSnapshot is the response of GET /api/metrics. The backend attaches
// rule bookkeeping next to the metrics object; anything else it adds in the
// future is preserved in Raw so the console can always render the full body.
type MetricsSnapshot struct {
	Metrics   *PhysicsMetrics `json:"metrics"`
	RuleNames []string        `json:"rule_names,omitempty"`
	RuleCount int             `json:"rule_count,omitempty"`

	// Raw is the unmodified response body, kept for verbatim rendering.
	Raw json.RawMessage `json:"-"`
}

// Task is one entry of GET /api/tasks. Status is deliberately raw: the
// server reports plain strings for queued tasks and structured objects for
// executed ones, and the console renders whichever it gets.
type Task struct {
	TaskID string          `json:"task_id"`
	Status json.RawMessage `json:"status"`
}

// TaskSubmission is the body of POST /api/tasks. Task holds a blueprint
// authored by hand or generated by the LLM query endpoint.
type TaskSubmission struct {
	Task    json.RawMessage `json:"task"`
	Execute bool            `json:"execute"`
}

// QueryRequest is the body of POST /api/llm/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// CampaignRequest is the body of POST /api/llm/research-campaign. Context is
// free-form JSON the operator supplies to steer the campaign planner.
type CampaignRequest struct {
	Goal               string                 `json:"goal"`
	OptimizationTarget string                 `json:"optimization_target"`
	TargetValue        float64                `json:"target_value"`
	MaxSteps           int                    `json:"max_steps"`
	Context            map[string]interface{} `json:"context"`
}

// HealthStatus is the response of GET /api/health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
