package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		infos, err := d.store.ProgressRepo().Sessions(cmd.Context())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(infos) == 0 {
			fmt.Fprintln(out, "No sessions recorded yet.")
			return nil
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Session", "Attempts", "Correct", "Last seen")
		for _, info := range infos {
			t.Row(
				info.SessionID,
				strconv.Itoa(info.Attempts),
				strconv.Itoa(info.Correct),
				info.LastSeen.Local().Format("2006-01-02 15:04"),
			)
		}
		fmt.Fprintln(out, t.Render())
		return nil
	},
}
