package console

import (
	"context"
	"encoding/json"
	"strings"

	"mmssconsole/internal/campaign"
	"mmssconsole/internal/logging"
	"mmssconsole/internal/types"
)

// SubmitTask validates the operator-supplied blueprint JSON and submits it.
// A parse failure aborts before any network call. On success the fixed
// completion status is written first, then the task list and metrics are
// refreshed; a submission failure leaves both unrefreshed.
func (c *Console) SubmitTask(ctx context.Context, input string, execute bool) {
	trimmed := strings.TrimSpace(input)

	var blueprint interface{}
	if err := json.Unmarshal([]byte(trimmed), &blueprint); err != nil {
		c.surface.Set(TargetStatus, "Task error: "+err.Error())
		return
	}

	sub := types.TaskSubmission{Task: json.RawMessage(trimmed), Execute: execute}
	if _, err := c.client.SubmitTask(ctx, sub); err != nil {
		c.surface.Set(TargetStatus, "Task error: "+err.Error())
		return
	}

	c.surface.Set(TargetStatus, StatusTaskSubmitted)
	c.log.Info("task submitted (execute=%v)", execute)
	c.RefreshTasks(ctx)
	c.RefreshMetrics(ctx)
}

// Query forwards free text to the blueprint generator. The response lands in
// the blueprint panel and is copied into the task input so it can be edited
// and resubmitted. On failure the bare error message replaces the panel and
// the status line is left untouched.
func (c *Console) Query(ctx context.Context, query string) {
	raw, err := c.client.Query(ctx, query)
	if err != nil {
		c.surface.Set(TargetBlueprint, err.Error())
		return
	}

	pretty := PrettyJSON(raw)
	c.surface.Set(TargetBlueprint, pretty)
	c.surface.Set(TargetTaskInput, pretty)
	c.surface.Set(TargetStatus, StatusQueryComplete)
}

// RunCampaign assembles a research campaign request from the operator
// fields, submits it, and renders the result. Malformed context JSON aborts
// before any network call; numeric coercion failures silently default.
func (c *Console) RunCampaign(ctx context.Context, fields campaign.Fields) {
	req, err := fields.Assemble(c.defaults)
	if err != nil {
		c.surface.Set(TargetResearch, "Invalid context JSON: "+err.Error())
		return
	}

	c.surface.Set(TargetResearch, MsgCampaignRunning)
	logging.Campaign("campaign started: target=%s value=%v steps=%d",
		req.OptimizationTarget, req.TargetValue, req.MaxSteps)

	raw, err := c.client.ResearchCampaign(ctx, req)
	if err != nil {
		c.surface.Set(TargetResearch, "Campaign error: "+err.Error())
		return
	}

	c.surface.Set(TargetResearch, PrettyJSON(raw))
	c.surface.Set(TargetStatus, StatusCampaignComplete)
	c.RefreshMetrics(ctx)
}
