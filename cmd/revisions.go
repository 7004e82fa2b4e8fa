package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fmcarvalho/ptcloud/api"
)

var revLimit int

var revisionsCmd = &cobra.Command{
	Use:   "revisions <path>",
	Short: "List the stored revisions of a remote file.",
	Args:  cobra.ExactArgs(1),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.Revisions(cmd.Context(), args[0], api.RevisionsOptions{RevLimit: revLimit})
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}

func init() {
	revisionsCmd.Flags().IntVar(&revLimit, "limit", 0, "maximum number of revisions")
}
