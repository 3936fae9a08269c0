package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mmssconsole/cmd/mmss-console/ui"
	"mmssconsole/internal/console"
)

// metricsCmd fetches and prints the current metrics snapshot
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Fetch the current metrics snapshot",
	Long: `Fetches GET /api/metrics and prints the full snapshot as JSON,
followed by the four derived physics constants in their display formats.`,
	RunE: runMetrics,
}

// vizCmd fetches and prints the visualization packet
var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Fetch the current visualization packet",
	RunE:  runViz,
}

// healthCmd probes the server health endpoint
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the server health endpoint",
	RunE:  runHealth,
}

var rawOutput bool

func init() {
	metricsCmd.Flags().BoolVar(&rawOutput, "raw", false, "Print the raw JSON body only")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	client := newClient()
	snap, err := client.Metrics(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(console.PrettyJSON(snap.Raw))
	if rawOutput || snap.Metrics == nil {
		return nil
	}

	styles := ui.DefaultStyles()
	m := snap.Metrics
	fmt.Println()
	fmt.Println(styles.Label.Render("Electron mass") + console.FormatElectronMass(m.EmergentElectronMass))
	fmt.Println(styles.Label.Render("Fine-structure const") + console.FormatFineStructure(m.FineStructureConstant))
	fmt.Println(styles.Label.Render("Quaternion coherence") + console.FormatCoherence(m.QuaternionCoherence))
	fmt.Println(styles.Label.Render("Topological winding") + console.FormatWinding(m.TopologicalWinding))
	return nil
}

func runViz(cmd *cobra.Command, args []string) error {
	client := newClient()
	raw, err := client.VisualizationPacket(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(console.PrettyJSON(raw))
	return nil
}

func runHealth(cmd *cobra.Command, args []string) error {
	client := newClient()
	hs, err := client.Health(context.Background())
	if err != nil {
		return err
	}
	logger.Debug("health probe", zap.String("status", hs.Status))
	fmt.Printf("%s (%s)\n", hs.Status, hs.Timestamp)
	return nil
}
