package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fmcarvalho/ptcloud/api"
	"github.com/fmcarvalho/ptcloud/cloudpt"
	"github.com/fmcarvalho/ptcloud/internal/crypto"
	"github.com/fmcarvalho/ptcloud/internal/store"
	"github.com/fmcarvalho/ptcloud/meocloud"
)

var (
	serviceName string
	sandbox     bool
	debugMode   bool
	storePath   string

	log zerolog.Logger
)

// rootCmd is the base command; every operation is a subcommand.
var rootCmd = &cobra.Command{
	Use:   "ptcloud",
	Short: "Command-line client for the CloudPT and MEO Cloud storage APIs.",
	Long: `ptcloud drives the CloudPT and MEO Cloud REST APIs: OAuth authorization,
file transfer, sharing, and delta synchronization.

Credentials are sealed under a master password in a local SQLite store
(ptcloud.db) next to the executable. Run 'ptcloud init' once per service
to authorize the application.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. It logs the failure and reports it to main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd.PersistentFlags().StringVarP(&serviceName, "service", "S", "meocloud", "target service: meocloud or cloudpt")
	rootCmd.PersistentFlags().BoolVar(&sandbox, "sandbox", false, "operate on the service's sandbox namespace")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "log outgoing requests, including token material")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "path to the credential store (default: next to the executable)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(metaCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(mvCmd)
	rootCmd.AddCommand(cpCmd)
	rootCmd.AddCommand(copyRefCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(shareFolderCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(rmLinkCmd)
	rootCmd.AddCommand(deltaCmd)
	rootCmd.AddCommand(revisionsCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(undeleteCmd)
	rootCmd.AddCommand(mediaCmd)
	rootCmd.AddCommand(thumbCmd)
}

// serviceDefinition resolves the --service flag to endpoint definitions.
func serviceDefinition() (api.Service, error) {
	switch serviceName {
	case "cloudpt":
		return cloudpt.Default(), nil
	case "meocloud":
		return meocloud.Default(), nil
	default:
		return api.Service{}, fmt.Errorf("unknown service %q (expected meocloud or cloudpt)", serviceName)
	}
}

// session bundles the unsealed client and the open store for one command.
type session struct {
	client *api.Client
	store  *store.Store
}

func (s *session) close() {
	if s.store != nil {
		s.store.Close()
	}
}

// openSession prompts for the master password, unseals the stored account
// for the selected service and rebuilds an authorized client.
func openSession() (*session, error) {
	svc, err := serviceDefinition()
	if err != nil {
		return nil, err
	}

	st, err := openStore()
	if err != nil {
		return nil, err
	}

	key, err := deriveStoreKey(st, "Enter Master Password", false)
	if err != nil {
		st.Close()
		return nil, err
	}

	account, err := st.Account(key, svc.Name)
	if err != nil {
		st.Close()
		if err == store.ErrNotFound {
			return nil, fmt.Errorf("no account stored for %s: run 'ptcloud init --service %s' first", svc.Name, svc.Name)
		}
		return nil, err
	}

	root := account.Root
	if sandbox {
		root = svc.SandboxRoot
	}

	client, err := api.New(api.Config{
		Service:        svc,
		ConsumerKey:    account.ConsumerKey,
		ConsumerSecret: account.ConsumerSecret,
		AccessToken:    account.AccessToken,
		AccessSecret:   account.AccessSecret,
		Root:           root,
		Debug:          debugMode,
		Logger:         &log,
	})
	if err != nil {
		st.Close()
		return nil, err
	}
	return &session{client: client, store: st}, nil
}

// runWithSession wraps a subcommand body with session setup/teardown.
func runWithSession(fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()
		return fn(cmd, args, s)
	}
}

func openStore() (*store.Store, error) {
	path := storePath
	if path == "" {
		path = store.DefaultPath()
	}
	return store.Open(path)
}

// deriveStoreKey prompts for the master password and derives the sealing
// key from the store's salt.
func deriveStoreKey(st *store.Store, label string, confirm bool) ([]byte, error) {
	password, err := promptPassword(label, confirm)
	if err != nil {
		return nil, err
	}
	salt, err := st.Salt()
	if err != nil {
		return nil, err
	}
	return crypto.DeriveKey(password, salt), nil
}

func promptPassword(label string, confirm bool) (string, error) {
	prompt := promptui.Prompt{Label: label, Mask: '*'}
	password, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("password prompt: %w", err)
	}
	if confirm {
		confirmPrompt := promptui.Prompt{Label: "Confirm Master Password", Mask: '*'}
		confirmation, err := confirmPrompt.Run()
		if err != nil {
			return "", fmt.Errorf("password prompt: %w", err)
		}
		if password != confirmation {
			return "", fmt.Errorf("passwords do not match")
		}
	}
	return password, nil
}

// printResponse writes the structured part of a response as indented JSON
// on stdout. Raw bodies are the concern of the commands that expect them.
func printResponse(resp *api.Response) error {
	var v any
	switch {
	case resp.Decoded != nil:
		v = resp.Decoded
	case resp.List != nil:
		v = resp.List
	default:
		v = map[string]any{api.StatusField: resp.Code, "raw_bytes": len(resp.Raw)}
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if !resp.OK() {
		return fmt.Errorf("service answered %d", resp.Code)
	}
	return nil
}
