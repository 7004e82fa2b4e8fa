package cmd

import "github.com/spf13/cobra"

var undeleteCmd = &cobra.Command{
	Use:   "undelete <path>",
	Short: "Restore a deleted remote file or folder tree.",
	Args:  cobra.ExactArgs(1),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.Undelete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}
