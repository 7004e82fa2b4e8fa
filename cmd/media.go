package cmd

import "github.com/spf13/cobra"

var mediaCmd = &cobra.Command{
	Use:   "media <path>",
	Short: "Get a direct streaming URL for a remote media file.",
	Args:  cobra.ExactArgs(1),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.Media(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}
