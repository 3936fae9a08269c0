package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mmssconsole/internal/console"
	"mmssconsole/internal/types"
)

// queryCmd forwards a natural-language query to the blueprint generator
var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Generate a task blueprint from a natural-language query",
	Long: `Sends free text to POST /api/llm/query and prints the generated task
blueprint. The output is valid input for "task submit", so a blueprint can
be piped straight back, or submitted in one step with --submit.

Examples:
  mmss-console query "stabilize the emergent electron mass"
  mmss-console query --submit "raise the winding number toward 9"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

var submitBlueprint bool

func init() {
	queryCmd.Flags().BoolVar(&submitBlueprint, "submit", false, "Submit the generated blueprint immediately")
	queryCmd.Flags().BoolVar(&executeFlag, "execute", true, "Execute the task when submitting (with --submit)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	client := newClient()

	logger.Debug("forwarding query", zap.String("query", query))
	raw, err := client.Query(context.Background(), query)
	if err != nil {
		return err
	}

	fmt.Println(console.PrettyJSON(raw))
	if !submitBlueprint {
		return nil
	}

	result, err := client.SubmitTask(context.Background(), types.TaskSubmission{
		Task:    json.RawMessage(raw),
		Execute: executeFlag,
	})
	if err != nil {
		return fmt.Errorf("task submission rejected: %w", err)
	}
	fmt.Println(console.PrettyJSON(result))
	return nil
}
