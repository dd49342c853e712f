package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uddict/dictation-app/cli/internal/api"
)

// HealthCmd returns the `notes health` command.
func HealthCmd(env *Env) *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the document service",
		Long:  "Check the document service at --url, the configured document_url, or " + api.DefaultBaseURL + ".",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg := env.config()
			if url == "" {
				url = cfg.DocumentURL
			}
			client := api.NewDefaultClient(cfg.APIKey)
			if url != "" {
				client = api.NewClient(url, cfg.APIKey)
			}
			status, err := client.Health(c.Context())
			if err != nil {
				return fmt.Errorf("document service: %w", err)
			}
			fmt.Fprintf(env.out(), "%s: %s\n", client.BaseURL(), status)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "document service URL")
	return cmd
}
