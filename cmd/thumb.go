package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fmcarvalho/ptcloud/api"
)

var thumbOpts struct {
	format string
	size   string
}

var thumbCmd = &cobra.Command{
	Use:   "thumb <remote-path> [local-path]",
	Short: "Download a thumbnail of a remote image.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		resp, err := s.client.Thumbnail(cmd.Context(), args[0], api.ThumbnailOptions{
			Format: thumbOpts.format,
			Size:   thumbOpts.size,
		})
		if err != nil {
			return err
		}
		if resp.Raw == nil {
			return printResponse(resp)
		}
		if len(args) == 2 {
			if err := os.WriteFile(args[1], resp.Raw, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", args[1], err)
			}
			log.Info().Str("path", args[1]).Int("bytes", len(resp.Raw)).Msg("thumbnail written")
			return nil
		}
		_, err = os.Stdout.Write(resp.Raw)
		return err
	}),
}

func init() {
	thumbCmd.Flags().StringVar(&thumbOpts.format, "format", "", "image format (jpeg or png)")
	thumbCmd.Flags().StringVar(&thumbOpts.size, "size", "", "thumbnail size (xs, s, m, l, xl)")
}
