package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/mathadv/mathadv/internal/puzzle"
)

var puzzleCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Generate puzzles for a level, streak and confidence (no database)",
	RunE:  runPuzzle,
}

func init() {
	puzzleCmd.Flags().String("level", "Easy", "Difficulty level: Easy, Medium or Hard")
	puzzleCmd.Flags().Int("streak", 0, "Current streak of correct answers")
	puzzleCmd.Flags().Float64("confidence", 50, "Current confidence score (0-100)")
	puzzleCmd.Flags().Int("count", 1, "Number of puzzles to generate")
	puzzleCmd.Flags().Uint64("seed", 0, "Seed for reproducible output (0 = random)")
	puzzleCmd.Flags().Bool("json", false, "Print puzzles as JSON lines")
}

type puzzleJSON struct {
	Question     string  `json:"question"`
	Answer       float64 `json:"answer"`
	ExpectedTime float64 `json:"expected_time"`
	Level        string  `json:"level"`
	Band         string  `json:"band"`
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	lvl, _ := cmd.Flags().GetString("level")
	streak, _ := cmd.Flags().GetInt("streak")
	conf, _ := cmd.Flags().GetFloat64("confidence")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg := puzzle.DefaultConfig()
	if seed != 0 {
		cfg.Rand = rand.New(rand.NewPCG(seed, seed))
	}
	gen := puzzle.New(cfg)

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	for i := 0; i < count; i++ {
		p, err := gen.Generate(lvl, streak, conf)
		if err != nil {
			return err
		}
		if asJSON {
			if err := enc.Encode(puzzleJSON{
				Question:     p.Question,
				Answer:       p.Answer,
				ExpectedTime: p.ExpectedTime,
				Level:        string(p.Level),
				Band:         string(p.Band),
			}); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "%-12s = %-8s  (%s, %s band, expect %.1fs)\n",
			p.Question, p.AnswerString(), p.Level, p.Band, p.ExpectedTime)
	}
	return nil
}
