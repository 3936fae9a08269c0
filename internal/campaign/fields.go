// Package campaign assembles research campaign requests from operator input.
//
// A campaign steers one optimization target metric toward a goal value
// within a step budget. All five input fields are optional: each falls back
// to its default independently. Malformed numeric input is not an error and
// silently defaults; malformed context JSON is a hard error, because a
// mistyped context would otherwise silently steer the campaign planner.
package campaign

import (
	"encoding/json"
	"strconv"
	"strings"

	"mmssconsole/internal/types"
)

// Built-in defaults, overridable via configuration.
const (
	DefaultGoal               = "Steer topological_winding toward the target value"
	DefaultOptimizationTarget = "topological_winding"
	DefaultTargetValue        = 0
	DefaultMaxSteps           = 5
)

// Defaults are the fallback values applied to blank or invalid fields.
type Defaults struct {
	Goal               string
	OptimizationTarget string
	TargetValue        float64
	MaxSteps           int
}

// StandardDefaults returns the compiled-in defaults.
func StandardDefaults() Defaults {
	return Defaults{
		Goal:               DefaultGoal,
		OptimizationTarget: DefaultOptimizationTarget,
		TargetValue:        DefaultTargetValue,
		MaxSteps:           DefaultMaxSteps,
	}
}

// Fields is the raw operator input, one string per form field.
type Fields struct {
	Goal               string
	OptimizationTarget string
	TargetValue        string
	MaxSteps           string
	Context            string
}

// Assemble applies trimming, defaulting, and numeric coercion, and validates
// the context JSON. The returned error is the context parse failure only;
// numeric fields never fail.
func (f Fields) Assemble(d Defaults) (types.CampaignRequest, error) {
	req := types.CampaignRequest{
		Goal:               strings.TrimSpace(f.Goal),
		OptimizationTarget: strings.TrimSpace(f.OptimizationTarget),
		Context:            map[string]interface{}{},
	}
	if req.Goal == "" {
		req.Goal = d.Goal
	}
	if req.OptimizationTarget == "" {
		req.OptimizationTarget = d.OptimizationTarget
	}

	req.TargetValue = d.TargetValue
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.TargetValue), 64); err == nil {
		req.TargetValue = v
	}

	req.MaxSteps = d.MaxSteps
	if n, err := strconv.Atoi(strings.TrimSpace(f.MaxSteps)); err == nil {
		req.MaxSteps = n
	}

	if ctx := strings.TrimSpace(f.Context); ctx != "" {
		// Returned unwrapped: the console surfaces this message verbatim
		// under its own "Invalid context JSON:" label.
		if err := json.Unmarshal([]byte(ctx), &req.Context); err != nil {
			return types.CampaignRequest{}, err
		}
	}

	return req, nil
}
