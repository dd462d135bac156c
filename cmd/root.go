package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mathadv/mathadv/internal/logging"
	"github.com/mathadv/mathadv/internal/recommend"
	"github.com/mathadv/mathadv/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathadv",
	Short: "Adaptive arithmetic practice",
	Long: "mathadv serves arithmetic puzzles and adapts their difficulty to each answer,\n" +
		"using a confidence score and a decision-forest level recommender.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHADV_DB env var)")
	rootCmd.PersistentFlags().String("model", "", "Path to level recommender model (overrides MATHADV_MODEL env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides MATHADV_LOG_LEVEL env var)")
	rootCmd.Flags().String("session", "", "Resume an existing session id")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(puzzleCmd)
	rootCmd.AddCommand(confidenceCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHADV_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveModelPath returns the model path using --model flag, then
// MATHADV_MODEL env var, then the bundled artifact path.
func resolveModelPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("model"); p != "" {
		return p
	}
	return recommend.ModelPathFromEnv()
}

// newLogger builds the logger from env and --log-level. When the TUI owns
// the terminal and no log file is configured, logs go next to dbPath.
func newLogger(cmd *cobra.Command, tui bool, dbPath string) (*zap.Logger, error) {
	cfg := logging.ConfigFromEnv()
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Level = lvl
	}
	if tui && cfg.File == "" && dbPath != "" {
		cfg.File = filepath.Join(filepath.Dir(dbPath), "mathadv.log")
	}
	return logging.New(cfg)
}
