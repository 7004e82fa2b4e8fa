package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fmcarvalho/ptcloud/api"
)

var metaOpts struct {
	limit    int
	hash     string
	contents bool
	deleted  bool
	rev      string
}

var metaCmd = &cobra.Command{
	Use:   "meta [path]",
	Short: "Show metadata for a remote file or folder.",
	Args:  cobra.MaximumNArgs(1),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		path := "/"
		if len(args) == 1 {
			path = args[0]
		}
		resp, err := s.client.Metadata(cmd.Context(), path, api.MetadataOptions{
			FileLimit:       metaOpts.limit,
			Hash:            metaOpts.hash,
			IncludeContents: metaOpts.contents,
			IncludeDeleted:  metaOpts.deleted,
			Rev:             metaOpts.rev,
		})
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}

func init() {
	metaCmd.Flags().IntVar(&metaOpts.limit, "limit", 0, "maximum number of folder entries")
	metaCmd.Flags().StringVar(&metaOpts.hash, "hash", "", "hash from a previous call; answers 304 when unchanged")
	metaCmd.Flags().BoolVar(&metaOpts.contents, "contents", false, "include the folder's entry list")
	metaCmd.Flags().BoolVar(&metaOpts.deleted, "deleted", false, "include deleted entries")
	metaCmd.Flags().StringVar(&metaOpts.rev, "rev", "", "metadata for a specific revision")
}
