package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fmcarvalho/ptcloud/api"
)

var lsLimit int

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List the entries of a remote folder.",
	Args:  cobra.MaximumNArgs(1),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		path := "/"
		if len(args) == 1 {
			path = args[0]
		}
		resp, err := s.client.List(cmd.Context(), path, api.ListOptions{FileLimit: lsLimit})
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}

func init() {
	lsCmd.Flags().IntVar(&lsLimit, "limit", 0, "maximum number of entries to return")
}
