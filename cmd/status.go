package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bizchat/bizchat/internal/bizchat/config"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the assistant endpoint is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		c, _ := newClient(cfg)
		message, err := c.Health(context.Background())
		if err != nil {
			return fmt.Errorf("endpoint %s unreachable: %w", cfg.BaseURL, err)
		}

		fmt.Println(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
