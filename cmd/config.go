package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/inovacc/stele/internal/model"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stele settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := db.GetConfig()
		if err != nil {
			return err
		}

		webhook := cfg.WebhookURL
		if webhook == "" {
			webhook = "(not set)"
		}

		fmt.Println("Current Configuration:")
		fmt.Println("=====================")
		fmt.Printf("Webhook URL:       %s\n", webhook)
		fmt.Printf("Transcribe Model:  %s\n", cfg.TranscribeModel)

		return nil
	},
}

var configSetWebhookCmd = &cobra.Command{
	Use:   "set-webhook <url>",
	Short: "Set the collector webhook URL",
	Long:  `Set the collector endpoint for batch sync: the URL of a Google Apps Script web app deployed with access for anyone.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateWebhookURL(args[0]); err != nil {
			return err
		}

		cfg, err := db.GetConfig()
		if err != nil {
			return err
		}

		cfg.WebhookURL = args[0]

		if err := db.SaveConfig(cfg); err != nil {
			return err
		}

		fmt.Println("✓ Webhook URL saved")

		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the configuration to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultCfg := model.DefaultConfig()

		if err := db.SaveConfig(&defaultCfg); err != nil {
			return fmt.Errorf("failed to reset configuration: %w", err)
		}

		fmt.Println("✓ Configuration reset to defaults")

		return nil
	},
}

// validateWebhookURL checks that the endpoint is a plausible https URL.
func validateWebhookURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid webhook URL: %w", err)
	}

	if u.Scheme != "https" {
		return fmt.Errorf("invalid webhook URL: must use https")
	}

	if strings.TrimSpace(u.Host) == "" {
		return fmt.Errorf("invalid webhook URL: missing host")
	}

	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetWebhookCmd)
	configCmd.AddCommand(configResetCmd)
}
