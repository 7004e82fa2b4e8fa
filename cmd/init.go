package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/fmcarvalho/ptcloud/api"
	"github.com/fmcarvalho/ptcloud/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Authorize the application against a service and store the credentials.",
	Long: `Runs the OAuth handshake for the selected service: prompts for the
application's consumer key and secret, prints the authorization URL, and
asks for the verifier PIN shown after you authorize in the browser. The
resulting access token is sealed under the master password.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	svc, err := serviceDefinition()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	key, err := deriveStoreKey(st, "Create Master Password", true)
	if err != nil {
		return err
	}

	consumerKey, err := promptInput("Consumer Key")
	if err != nil {
		return err
	}
	consumerSecret, err := promptInput("Consumer Secret")
	if err != nil {
		return err
	}

	root := svc.ProductionRoot
	if sandbox {
		root = svc.SandboxRoot
	}

	client, err := api.New(api.Config{
		Service:        svc,
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		Root:           root,
		Debug:          debugMode,
		Logger:         &log,
	})
	if err != nil {
		return err
	}

	authURL, err := client.Login(cmd.Context())
	if err != nil {
		return err
	}
	log.Info().Str("service", svc.Name).Msg("request token obtained")
	fmt.Println("Visit this URL to authorize the application:")
	fmt.Println("  " + authURL)

	verifier, err := promptInput("Verifier PIN")
	if err != nil {
		return err
	}
	if err := client.Authorize(cmd.Context(), verifier); err != nil {
		return err
	}

	token, secret, ok := client.AccessToken()
	if !ok {
		return fmt.Errorf("authorization completed without an access token")
	}
	err = st.SaveAccount(key, store.Account{
		Service:        svc.Name,
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		AccessToken:    token,
		AccessSecret:   secret,
		Root:           root,
	})
	if err != nil {
		return err
	}

	log.Info().Str("service", svc.Name).Str("root", root).Msg("account authorized and stored")
	return nil
}

func promptInput(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("%s prompt: %w", label, err)
	}
	if value == "" {
		return "", fmt.Errorf("%s must not be empty", label)
	}
	return value, nil
}
