package cmd

import "github.com/spf13/cobra"

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List the account's public links.",
	Args:  cobra.NoArgs,
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.ListLinks(cmd.Context())
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}

var rmLinkCmd = &cobra.Command{
	Use:   "rm-link <share-id>",
	Short: "Revoke a public link.",
	Args:  cobra.ExactArgs(1),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.DeleteLink(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}
