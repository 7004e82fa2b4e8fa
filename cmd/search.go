package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fmcarvalho/ptcloud/api"
)

var searchOpts struct {
	limit   int
	deleted bool
}

var searchCmd = &cobra.Command{
	Use:   "search <query> [path]",
	Short: "Search for entries by name under a remote folder.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		path := "/"
		if len(args) == 2 {
			path = args[1]
		}
		resp, err := s.client.Search(cmd.Context(), path, args[0], api.SearchOptions{
			FileLimit:      searchOpts.limit,
			IncludeDeleted: searchOpts.deleted,
		})
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}

func init() {
	searchCmd.Flags().IntVar(&searchOpts.limit, "limit", 0, "maximum number of matches")
	searchCmd.Flags().BoolVar(&searchOpts.deleted, "deleted", false, "include deleted entries")
}
