package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathadv/mathadv/internal/confidence"
	"github.com/mathadv/mathadv/internal/level"
)

var confidenceCmd = &cobra.Command{
	Use:   "confidence",
	Short: "Score one answered question",
	RunE: func(cmd *cobra.Command, args []string) error {
		correct, _ := cmd.Flags().GetBool("correct")
		lvl, _ := cmd.Flags().GetString("level")
		rt, _ := cmd.Flags().GetFloat64("time")
		streak, _ := cmd.Flags().GetInt("streak")
		expected, _ := cmd.Flags().GetFloat64("expected")
		explain, _ := cmd.Flags().GetBool("explain")

		difficulty := level.Level(lvl)
		score, err := confidence.Calculate(correct, difficulty, rt, streak, expected)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !explain {
			fmt.Fprintf(out, "%.2f\n", float64(score))
			return nil
		}

		terms, err := confidence.Breakdown(correct, difficulty, rt, streak, expected)
		if err != nil {
			return err
		}
		rows := []struct {
			name  string
			value float64
		}{
			{"baseline", terms.Baseline},
			{"correctness", terms.Correctness},
			{"streak", terms.Streak},
			{"timing", terms.Timing},
			{"difficulty", terms.Difficulty},
		}
		for _, r := range rows {
			fmt.Fprintf(out, "%-12s %+7.2f\n", r.name, r.value)
		}
		fmt.Fprintln(out, strings.Repeat("─", 20))
		fmt.Fprintf(out, "%-12s %7.2f\n", "score", float64(score))
		return nil
	},
}

func init() {
	confidenceCmd.Flags().Bool("correct", false, "The answer was correct")
	confidenceCmd.Flags().String("level", "Easy", "Difficulty level of the question")
	confidenceCmd.Flags().Float64("time", 0, "Response time in seconds")
	confidenceCmd.Flags().Int("streak", 0, "Streak entering the question")
	confidenceCmd.Flags().Float64("expected", 5, "Expected solve time in seconds")
	confidenceCmd.Flags().Bool("explain", false, "Show each term of the score")
}
