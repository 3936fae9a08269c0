package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mmssconsole/internal/api"
	"mmssconsole/internal/campaign"
	"mmssconsole/internal/console"
)

// campaignCmd is the parent command for research campaign operations
var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Run multi-step research campaigns",
	Long: `Research campaigns iteratively steer a named optimization target toward
a goal value within a step budget. The campaign itself runs server-side;
this command assembles the request, waits for completion, and prints the
result.

All flags are optional. Blank fields fall back to their defaults: the goal
and optimization target to their configured literals, the target value to 0,
and the step budget to 5.

Examples:
  mmss-console campaign run
  mmss-console campaign run --target topological_winding --value 9 --steps 3
  mmss-console campaign run --context '{"seed": 42}'`,
}

// campaignRunCmd submits one campaign and waits for the result
var campaignRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Submit a research campaign and wait for the result",
	RunE:  runCampaign,
}

var (
	campaignGoal    string
	campaignTarget  string
	campaignValue   string
	campaignSteps   string
	campaignContext string
)

func init() {
	campaignRunCmd.Flags().StringVar(&campaignGoal, "goal", "", "Campaign goal text")
	campaignRunCmd.Flags().StringVar(&campaignTarget, "target", "", "Optimization target metric")
	campaignRunCmd.Flags().StringVar(&campaignValue, "value", "", "Goal value for the target metric")
	campaignRunCmd.Flags().StringVar(&campaignSteps, "steps", "", "Maximum optimization steps")
	campaignRunCmd.Flags().StringVar(&campaignContext, "context", "", "Free-form JSON context for the planner")

	campaignCmd.AddCommand(campaignRunCmd)
}

func runCampaign(cmd *cobra.Command, args []string) error {
	// Campaigns can outlive the single-shot timeout; cancel on signal instead.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Println("\nCampaign cancelled")
		cancel()
	}()

	fields := campaign.Fields{
		Goal:               campaignGoal,
		OptimizationTarget: campaignTarget,
		TargetValue:        campaignValue,
		MaxSteps:           campaignSteps,
		Context:            campaignContext,
	}
	req, err := fields.Assemble(campaignDefaults())
	if err != nil {
		return fmt.Errorf("invalid context JSON: %w", err)
	}

	logger.Info("starting research campaign",
		zap.String("goal", req.Goal),
		zap.String("target", req.OptimizationTarget),
		zap.Float64("value", req.TargetValue),
		zap.Int("steps", req.MaxSteps))
	fmt.Printf("Running research campaign: %s -> %v (max %d steps)\n",
		req.OptimizationTarget, req.TargetValue, req.MaxSteps)

	// No HTTP timeout here: campaigns legitimately run for minutes.
	client := api.New(cfg.Server.BaseURL, 0)
	raw, err := client.ResearchCampaign(ctx, req)
	if err != nil {
		return fmt.Errorf("campaign failed: %w", err)
	}

	fmt.Println(console.PrettyJSON(raw))

	// Campaigns move the metrics; show the fresh constants.
	snap, err := client.Metrics(ctx)
	if err != nil || snap.Metrics == nil {
		return nil
	}
	m := snap.Metrics
	fmt.Println()
	fmt.Printf("Winding: %s  Coherence: %s\n",
		console.FormatWinding(m.TopologicalWinding),
		console.FormatCoherence(m.QuaternionCoherence))
	return nil
}
