package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathadv/mathadv/internal/level"
	"github.com/mathadv/mathadv/internal/logging"
	"github.com/mathadv/mathadv/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the next level for one answered question (no database)",
	RunE: func(cmd *cobra.Command, args []string) error {
		lvl, _ := cmd.Flags().GetString("level")
		correct, _ := cmd.Flags().GetBool("correct")
		rt, _ := cmd.Flags().GetFloat64("time")
		streak, _ := cmd.Flags().GetInt("streak")
		conf, _ := cmd.Flags().GetFloat64("confidence")

		cfg := logging.ConfigFromEnv()
		if l, _ := cmd.Flags().GetString("log-level"); l != "" {
			cfg.Level = l
		}
		logger, err := logging.New(cfg)
		if err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
		defer logger.Sync()

		rec, err := recommend.NewFromFile(resolveModelPath(cmd), logger)
		if err != nil {
			return err
		}

		next, newStreak := rec.Recommend(level.Level(lvl), correct, rt, streak, conf)
		fmt.Fprintf(cmd.OutOrStdout(), "next level: %s\nstreak:     %d\n", next, newStreak)
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("level", "Easy", "Current difficulty level")
	recommendCmd.Flags().Bool("correct", false, "The answer was correct")
	recommendCmd.Flags().Float64("time", 0, "Response time in seconds")
	recommendCmd.Flags().Int("streak", 0, "Streak entering the question")
	recommendCmd.Flags().Float64("confidence", 50, "Confidence score for the answer")
}
