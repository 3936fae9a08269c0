package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"mmssconsole/internal/campaign"
	"mmssconsole/internal/logging"
	"mmssconsole/internal/types"
)

// Caller is the slice of the API client the console consumes. Fakes
// implement it in tests; api.Client implements it in production.
type Caller interface {
	Metrics(ctx context.Context) (*types.MetricsSnapshot, error)
	Tasks(ctx context.Context) ([]types.Task, error)
	SubmitTask(ctx context.Context, sub types.TaskSubmission) (json.RawMessage, error)
	VisualizationPacket(ctx context.Context) (json.RawMessage, error)
	Query(ctx context.Context, query string) (json.RawMessage, error)
	ResearchCampaign(ctx context.Context, req types.CampaignRequest) (json.RawMessage, error)
}

// Fixed status messages written to the status target.
const (
	StatusTaskSubmitted    = "Task submitted"
	StatusQueryComplete    = "Blueprint generated - edit and submit"
	StatusCampaignComplete = "Research campaign finished"

	// MsgCampaignRunning is the in-progress indicator shown in the
	// research result panel while a campaign request is in flight.
	MsgCampaignRunning = "Running research campaign..."
)

// Console wires one Caller to one Surface. It holds no state of its own:
// every workflow is a single request/response round trip whose results land
// on the surface, so overlapping invocations race benignly (last write to a
// target wins).
type Console struct {
	client   Caller
	surface  Surface
	defaults campaign.Defaults
	log      *logging.Logger
}

// New creates a console over the given client and surface. Defaults govern
// blank research campaign fields.
func New(client Caller, surface Surface, defaults campaign.Defaults) *Console {
	return &Console{
		client:   client,
		surface:  surface,
		defaults: defaults,
		log:      logging.Get(logging.CategoryConsole),
	}
}

// RefreshMetrics fetches the metrics snapshot and renders it: the full body
// as pretty JSON into the metrics panel, and the four physics constants into
// their dedicated fields when both the values and the fields exist.
func (c *Console) RefreshMetrics(ctx context.Context) {
	snap, err := c.client.Metrics(ctx)
	if err != nil {
		c.surface.Set(TargetMetrics, "Error: "+err.Error())
		return
	}

	c.surface.Set(TargetMetrics, PrettyJSON(snap.Raw))
	if snap.Metrics != nil {
		c.renderPhysics(*snap.Metrics)
	}
}

// renderPhysics writes the derived constants with their fixed formats.
// Each field is skipped independently when the surface lacks it.
func (c *Console) renderPhysics(m types.PhysicsMetrics) {
	if c.surface.Has(TargetElectronMass) {
		c.surface.Set(TargetElectronMass, FormatElectronMass(m.EmergentElectronMass))
	}
	if c.surface.Has(TargetFineStructure) {
		c.surface.Set(TargetFineStructure, FormatFineStructure(m.FineStructureConstant))
	}
	if c.surface.Has(TargetCoherence) {
		c.surface.Set(TargetCoherence, FormatCoherence(m.QuaternionCoherence))
	}
	if c.surface.Has(TargetWinding) {
		c.surface.Set(TargetWinding, FormatWinding(m.TopologicalWinding))
	}
}

// Fixed display formats for the derived physics constants.

// FormatElectronMass renders the emergent electron mass in exponential
// notation with its unit.
func FormatElectronMass(v float64) string { return fmt.Sprintf("%.10e kg", v) }

// FormatFineStructure renders the fine-structure constant in exponential
// notation.
func FormatFineStructure(v float64) string { return fmt.Sprintf("%.10e", v) }

// FormatCoherence renders the quaternion coherence in fixed-point notation.
func FormatCoherence(v float64) string { return fmt.Sprintf("%.6f", v) }

// FormatWinding renders the topological winding number in fixed-point
// notation.
func FormatWinding(v float64) string { return fmt.Sprintf("%.4f", v) }

// RefreshTasks fetches the task list and re-renders it in response order.
func (c *Console) RefreshTasks(ctx context.Context) {
	tasks, err := c.client.Tasks(ctx)
	if err != nil {
		c.surface.SetTaskListError(err.Error())
		return
	}

	rows := make([]TaskRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, TaskRow{ID: t.TaskID, Status: CompactJSON(t.Status)})
	}
	c.surface.SetTaskRows(rows)
	c.log.Debug("task list refreshed: %d tasks", len(rows))
}

// RefreshVisualization fetches the visualization packet and renders it as
// pretty JSON.
func (c *Console) RefreshVisualization(ctx context.Context) {
	raw, err := c.client.VisualizationPacket(ctx)
	if err != nil {
		c.surface.Set(TargetVisualization, "Error: "+err.Error())
		return
	}
	c.surface.Set(TargetVisualization, PrettyJSON(raw))
}

// RefreshAll runs the three refreshers in sequence. Used for initial load.
func (c *Console) RefreshAll(ctx context.Context) {
	c.RefreshMetrics(ctx)
	c.RefreshTasks(ctx)
	c.RefreshVisualization(ctx)
}

// PrettyJSON re-indents raw JSON for panel display, falling back to the
// input verbatim when it does not indent cleanly.
func PrettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// CompactJSON normalizes raw JSON to its compact form. Task statuses arrive
// as either bare strings or objects; both render as single-line JSON.
func CompactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
