package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bizchat/bizchat/internal/bizchat/config"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a single message to the assistant",
	Long: `Send a single message to the BizChat Assistant and print the reply.

If no message is provided as an argument, it reads from stdin.
Empty or whitespace-only input is silently ignored.

A failed exchange never aborts the command: the fixed fallback reply is
printed and the underlying error is logged to stderr. For an interactive
conversation, use 'bizchat start' instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		var message string
		if len(args) > 0 {
			message = strings.Join(args, " ")
		} else {
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading from stdin: %w", err)
			}
			message = string(input)
		}

		message = strings.TrimSpace(message)
		if message == "" {
			return nil
		}

		c, _ := newClient(cfg)
		fmt.Println(c.Reply(context.Background(), message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
