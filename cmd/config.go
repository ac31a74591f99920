package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bizchat/bizchat/internal/bizchat/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: configfile, base_url, timeout_seconds, greeting, listen_addr, knowledge_base

Examples:
  bizchat config                  # Show all configuration
  bizchat config base_url         # Show only the endpoint base URL
  bizchat config timeout_seconds  # Show only the request timeout`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// If a field is specified, show only that field
		if len(args) > 0 {
			field := strings.ToLower(args[0])
			switch field {
			case "configfile":
				fmt.Println(viper.ConfigFileUsed())
			case "base_url", "baseurl":
				fmt.Println(cfg.BaseURL)
			case "timeout_seconds", "timeout":
				fmt.Println(cfg.TimeoutSeconds)
			case "greeting":
				fmt.Println(cfg.Greeting)
			case "listen_addr", "listenaddr":
				fmt.Println(cfg.ListenAddr)
			case "knowledge_base", "knowledgebase":
				fmt.Println(cfg.KnowledgeBase)
			default:
				return fmt.Errorf("unknown field: %s", field)
			}
			return nil
		}

		fmt.Println("Current configuration:")
		fmt.Printf("  config file:     %s\n", viper.ConfigFileUsed())
		fmt.Printf("  base_url:        %s\n", cfg.BaseURL)
		fmt.Printf("  timeout_seconds: %d\n", cfg.TimeoutSeconds)
		fmt.Printf("  greeting:        %s\n", cfg.Greeting)
		fmt.Printf("  listen_addr:     %s\n", cfg.ListenAddr)
		fmt.Printf("  knowledge_base:  %s\n", cfg.KnowledgeBase)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
