package cmd

import "github.com/spf13/cobra"

var mvCmd = &cobra.Command{
	Use:   "mv <from-path> <to-path>",
	Short: "Move a remote file or folder.",
	Args:  cobra.ExactArgs(2),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.Move(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}
