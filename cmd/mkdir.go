package cmd

import "github.com/spf13/cobra"

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a remote folder.",
	Args:  cobra.ExactArgs(1),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.CreateFolder(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}
