package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bizchat/bizchat/internal/bizchat/config"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear <session-id>",
	Short: "Clear a session's conversation on the server",
	Long: `Ask the assistant to drop the server-side conversation state for a
session identifier. The response body is ignored; a network failure is
reported but the command does not fail.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		c := clientForSession(cfg, args[0])
		if err := c.ClearHistory(context.Background()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "bizchat: clear history failed: %v\n", err)
			return nil
		}

		fmt.Printf("Conversation for session %s cleared.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
