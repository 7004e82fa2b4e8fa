package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fmcarvalho/ptcloud/api"
)

var cpFromRef bool

var cpCmd = &cobra.Command{
	Use:   "cp <from> <to-path>",
	Short: "Copy a remote file or folder.",
	Long: `Copies a remote file or folder. With --from-ref the first argument is
a reference obtained from 'ptcloud copyref' instead of a path, which also
works across accounts.`,
	Args: cobra.ExactArgs(2),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		var (
			resp *api.Response
			err  error
		)
		if cpFromRef {
			resp, err = s.client.CopyFromRef(cmd.Context(), args[0], args[1])
		} else {
			resp, err = s.client.Copy(cmd.Context(), args[0], args[1])
		}
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}

var copyRefCmd = &cobra.Command{
	Use:   "copyref <path>",
	Short: "Create a copy reference for a remote file.",
	Args:  cobra.ExactArgs(1),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.CopyRef(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}

func init() {
	cpCmd.Flags().BoolVar(&cpFromRef, "from-ref", false, "treat <from> as a copy reference")
}
