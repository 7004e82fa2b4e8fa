package cmd

import "github.com/spf13/cobra"

var shareCmd = &cobra.Command{
	Use:   "share <path>",
	Short: "Create a public link to a remote file or folder.",
	Args:  cobra.ExactArgs(1),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.Share(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}

var shareFolderCmd = &cobra.Command{
	Use:   "share-folder <path> <email>",
	Short: "Invite another account to a shared folder.",
	Args:  cobra.ExactArgs(2),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.ShareFolder(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}
