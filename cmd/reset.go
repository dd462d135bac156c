package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset <session-id>",
	Short: "Delete every attempt logged for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		n, err := d.store.ProgressRepo().DeleteSession(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("reset session: %w", err)
		}
		d.logger.Info("session reset", zap.String("session_id", args[0]), zap.Int("deleted", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d attempt(s) from %s.\n", n, args[0])
		return nil
	},
}
