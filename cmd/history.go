package cmd

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/mathadv/mathadv/internal/session"
)

var historyCmd = &cobra.Command{
	Use:   "history <session-id>",
	Short: "Show the attempts logged for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		engine := &session.Engine{Repo: d.store.ProgressRepo(), Logger: d.logger}
		attempts, err := engine.History(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintf(out, "No attempts recorded for %s.\n", args[0])
			return nil
		}
		printHistory(out, attempts)
		return nil
	},
}

func printHistory(w io.Writer, attempts []session.Attempt) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Time", "Level", "Result", "Seconds", "Streak", "Confidence")
	for i, a := range attempts {
		result := "wrong"
		if a.Correct {
			result = "correct"
		}
		t.Row(
			strconv.Itoa(i+1),
			a.Timestamp.Local().Format("2006-01-02 15:04:05"),
			string(a.Level),
			result,
			strconv.FormatFloat(a.ResponseTime, 'f', 1, 64),
			strconv.Itoa(a.Streak),
			strconv.FormatFloat(a.Confidence, 'f', 2, 64),
		)
	}
	fmt.Fprintln(w, t.Render())

	s := session.Summarize(attempts)
	fmt.Fprintf(w, "Attempts: %d  Correct: %d  Accuracy: %.1f%%  Avg time: %.1fs\n",
		s.Attempts, s.Correct, s.Accuracy, s.AvgTime)
}
