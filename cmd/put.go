package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fmcarvalho/ptcloud/api"
)

var putOpts struct {
	noOverwrite bool
	parentRev   string
}

var putCmd = &cobra.Command{
	Use:   "put <local-path> <remote-path>",
	Short: "Upload a local file.",
	Args:  cobra.ExactArgs(2),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.PutFileFrom(cmd.Context(), args[1], args[0], api.PutFileOptions{
			NoOverwrite: putOpts.noOverwrite,
			ParentRev:   putOpts.parentRev,
		})
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}

func init() {
	putCmd.Flags().BoolVar(&putOpts.noOverwrite, "no-overwrite", false, "rename instead of replacing an existing file")
	putCmd.Flags().StringVar(&putOpts.parentRev, "parent-rev", "", "revision this upload replaces")
}
