package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmcarvalho/ptcloud/api"
)

var getRev string

var getCmd = &cobra.Command{
	Use:   "get <remote-path> [local-path]",
	Short: "Download a remote file.",
	Long: `Downloads a remote file. With a local path the content is written
there; otherwise it goes to stdout. A JSON answer from the service (an
error description) is printed instead.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.GetFile(cmd.Context(), args[0], api.GetFileOptions{Rev: getRev})
		if err != nil {
			return err
		}
		if resp.Raw == nil {
			// The service answered with JSON, which for a download means
			// an error body or a missing file.
			return printResponse(resp)
		}
		if len(args) == 2 {
			if err := os.WriteFile(args[1], resp.Raw, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", args[1], err)
			}
			log.Info().Str("path", args[1]).Int("bytes", len(resp.Raw)).Msg("file written")
			return nil
		}
		_, err = os.Stdout.Write(resp.Raw)
		return err
	}),
}

func init() {
	getCmd.Flags().StringVar(&getRev, "rev", "", "download a specific revision")
}
