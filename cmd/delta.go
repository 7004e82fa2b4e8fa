package cmd

import (
	"github.com/spf13/cobra"
)

var deltaReset bool

var deltaCmd = &cobra.Command{
	Use:   "delta",
	Short: "Fetch changes since the last run.",
	Long: `Fetches the account's change stream. The cursor is persisted in the
local store between runs, so each invocation only returns what changed
since the previous one. --reset discards the stored cursor and walks the
full state again.`,
	Args: cobra.NoArgs,
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		service := s.client.Service().Name

		cursor := ""
		if !deltaReset {
			var err error
			cursor, err = s.store.Cursor(service)
			if err != nil {
				return err
			}
		}

		resp, err := s.client.Delta(cmd.Context(), cursor)
		if err != nil {
			return err
		}
		if resp.OK() && resp.Decoded != nil {
			if next, ok := resp.Decoded["cursor"].(string); ok && next != "" {
				if err := s.store.SaveCursor(service, next); err != nil {
					return err
				}
			}
		}
		return printResponse(resp)
	}),
}

func init() {
	deltaCmd.Flags().BoolVar(&deltaReset, "reset", false, "discard the stored cursor and start over")
}
