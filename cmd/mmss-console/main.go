// Command mmss-console is the terminal operator console for an MMSS
// research/simulation server. It renders live metrics, lists queued and
// executed tasks, submits ad-hoc task blueprints, forwards natural-language
// queries to the LLM blueprint generator, and drives multi-step research
// campaigns. All computation stays server-side; the console is a thin
// coordination layer between operator input and the JSON /api endpoints.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mmssconsole/internal/api"
	"mmssconsole/internal/campaign"
	"mmssconsole/internal/config"
	"mmssconsole/internal/logging"
)

var (
	// Global flags
	verbose    bool
	serverURL  string
	configPath string
	timeout    time.Duration

	// Loaded configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mmss-console",
	Short: "MMSS Operator Console",
	Long: `mmss-console is a terminal console for an MMSS research server.

It talks to the server's JSON API under /api: live metrics with the four
derived physics constants, the task queue, the visualization packet, ad-hoc
task submission, LLM blueprint generation, and multi-step research campaigns
that steer an optimization target toward a goal value.

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		stateDir := config.DefaultStateDir()
		path := configPath
		if path == "" {
			path = filepath.Join(stateDir, "console.yaml")
		}
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		// Flags win over config and environment.
		if serverURL != "" {
			cfg.Server.BaseURL = serverURL
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Server.Timeout = timeout.String()
		}

		if err := logging.Initialize(stateDir); err != nil {
			logger.Warn("file logging disabled", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive dashboard
		return runDashboard(cmd, args)
	},
}

// newClient builds the API client from the resolved configuration.
func newClient() *api.Client {
	return api.New(cfg.Server.BaseURL, cfg.GetTimeout())
}

// campaignDefaults merges configured overrides onto the built-in campaign
// defaults.
func campaignDefaults() campaign.Defaults {
	d := campaign.StandardDefaults()
	if cfg.Campaign.DefaultGoal != "" {
		d.Goal = cfg.Campaign.DefaultGoal
	}
	if cfg.Campaign.DefaultTarget != "" {
		d.OptimizationTarget = cfg.Campaign.DefaultTarget
	}
	if cfg.Campaign.DefaultSteps > 0 {
		d.MaxSteps = cfg.Campaign.DefaultSteps
	}
	return d
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "MMSS server base URL (default: config or http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.mmss/console.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout for single-shot commands (0 = no timeout)")

	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(vizCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(campaignCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(dashboardCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
