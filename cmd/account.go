package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNotAuthorized = errors.New("credentials rejected by the service")

var checkOnly bool

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the authorized account's details and quota.",
	Args:  cobra.NoArgs,
	RunE: runWithSession(func(cmd *cobra.Command, args []string, s *session) error {
		if checkOnly {
			ok, err := s.client.IsAuthorized(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return errNotAuthorized
			}
			log.Info().Str("service", s.client.Service().Name).Msg("credentials accepted")
			return nil
		}
		resp, err := s.client.AccountInfo(cmd.Context())
		if err != nil {
			return err
		}
		return printResponse(resp)
	}),
}

func init() {
	accountCmd.Flags().BoolVar(&checkOnly, "check", false, "only verify that the stored credentials are still accepted")
}
