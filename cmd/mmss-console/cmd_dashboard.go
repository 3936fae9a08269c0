package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mmssconsole/cmd/mmss-console/ui"
	"mmssconsole/internal/api"
)

// dashboardCmd launches the interactive TUI dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive dashboard",
	Long: `Launches the full-screen operator dashboard: live metrics with the four
physics constants, the task queue, the visualization packet, and inputs for
task submission, blueprint generation, and research campaigns.

The dashboard refreshes on demand (ctrl+r) and after successful
submissions; there is no background polling.`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	// Dashboard requests are deliberately unbounded; a hung request leaves
	// its panel in progress rather than surfacing a timeout.
	client := api.New(cfg.Server.BaseURL, 0)

	logger.Info("launching dashboard", zap.String("server", cfg.Server.BaseURL))
	model := ui.NewModel(client, campaignDefaults())
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("dashboard terminated: %w", err)
	}
	return nil
}
