package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mmssconsole/cmd/mmss-console/ui"
	"mmssconsole/internal/console"
	"mmssconsole/internal/types"
)

// tasksCmd lists the task queue
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List queued and executed tasks",
	RunE:  runTasks,
}

// taskCmd is the parent command for single-task operations
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Submit or inspect individual tasks",
}

// taskSubmitCmd submits a task blueprint
var taskSubmitCmd = &cobra.Command{
	Use:   "submit [file]",
	Short: "Submit a task blueprint from a file or stdin",
	Long: `Submits a task blueprint to POST /api/tasks.

The blueprint is read from the given file, or from stdin when the argument
is "-" or omitted. Malformed JSON is rejected locally without a request.

Examples:
  mmss-console task submit blueprint.json
  mmss-console query "raise the winding number" | mmss-console task submit -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaskSubmit,
}

// taskStatusCmd fetches one task's status
var taskStatusCmd = &cobra.Command{
	Use:   "status [task-id]",
	Short: "Show the status of a single task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskStatus,
}

var executeFlag bool

func init() {
	// The server also defaults execute to true for omitted flags.
	taskSubmitCmd.Flags().BoolVar(&executeFlag, "execute", true, "Execute the task immediately after queueing")

	taskCmd.AddCommand(taskSubmitCmd)
	taskCmd.AddCommand(taskStatusCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	client := newClient()
	tasks, err := client.Tasks(context.Background())
	if err != nil {
		return err
	}

	table := ui.NewSimpleTable("Tasks", []string{"Task ID", "Status"})
	for _, t := range tasks {
		table.AddRow(t.TaskID, console.CompactJSON(t.Status))
	}
	fmt.Print(table.View(ui.DefaultStyles()))
	return nil
}

func runTaskSubmit(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read blueprint: %w", err)
	}

	// Validate locally: a parse failure must not reach the network.
	var blueprint interface{}
	if err := json.Unmarshal(data, &blueprint); err != nil {
		return fmt.Errorf("invalid blueprint JSON: %w", err)
	}

	client := newClient()
	raw, err := client.SubmitTask(context.Background(), types.TaskSubmission{
		Task:    json.RawMessage(data),
		Execute: executeFlag,
	})
	if err != nil {
		return fmt.Errorf("task submission rejected: %w", err)
	}

	logger.Info("task submitted", zap.Bool("execute", executeFlag))
	fmt.Println(console.PrettyJSON(raw))
	return nil
}

func runTaskStatus(cmd *cobra.Command, args []string) error {
	client := newClient()
	task, err := client.TaskStatus(context.Background(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s\n", task.TaskID, console.CompactJSON(task.Status))
	return nil
}
