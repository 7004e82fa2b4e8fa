package cmd

import "github.com/spf13/cobra"

var restoreCmd = &cobra.Command{
	Use:   "restore <path> <rev>",
	Short: "Make an old revision the head of a remote file.",
	Args:  cobra.ExactArgs(2),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.Restore(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}
