package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mmssconsole/cmd/mmss-console/ui"
	"mmssconsole/internal/console"
	"mmssconsole/internal/types"
)

// statusCmd shows a one-shot overview of the server state
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server health, metrics, and task queue in one view",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := newClient()
	g, ctx := errgroup.WithContext(context.Background())

	var (
		health *types.HealthStatus
		snap   *types.MetricsSnapshot
		tasks  []types.Task
		viz    json.RawMessage
	)

	g.Go(func() error {
		var err error
		health, err = client.Health(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap, err = client.Metrics(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = client.Tasks(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		viz, err = client.VisualizationPacket(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	styles := ui.DefaultStyles()
	fmt.Printf("Server: %s (%s)\n\n", health.Status, health.Timestamp)

	if snap.Metrics != nil {
		m := snap.Metrics
		fmt.Println(styles.Header.Render("Physics"))
		fmt.Println(styles.Label.Render("Electron mass") + console.FormatElectronMass(m.EmergentElectronMass))
		fmt.Println(styles.Label.Render("Fine-structure const") + console.FormatFineStructure(m.FineStructureConstant))
		fmt.Println(styles.Label.Render("Quaternion coherence") + console.FormatCoherence(m.QuaternionCoherence))
		fmt.Println(styles.Label.Render("Topological winding") + console.FormatWinding(m.TopologicalWinding))
		fmt.Println()
	}

	table := ui.NewSimpleTable("Tasks", []string{"Task ID", "Status"})
	for _, t := range tasks {
		table.AddRow(t.TaskID, console.CompactJSON(t.Status))
	}
	fmt.Print(table.View(styles))

	fmt.Println(styles.Header.Render("Visualization"))
	fmt.Println(console.PrettyJSON(viz))
	return nil
}
