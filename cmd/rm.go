package cmd

import "github.com/spf13/cobra"

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a remote file or folder.",
	Args:  cobra.ExactArgs(1),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.Delete(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}
