package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bizchat/bizchat/internal/bizchat/config"
)

// intentsCmd represents the intents command
var intentsCmd = &cobra.Command{
	Use:   "intents",
	Short: "List the intents loaded by the assistant",
	Long:  `List the tags of the intents the assistant has loaded from its knowledge base.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		c, _ := newClient(cfg)
		tags, err := c.Intents(context.Background())
		if err != nil {
			return fmt.Errorf("listing intents: %w", err)
		}

		if len(tags) == 0 {
			fmt.Println("No intents loaded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TAG")
		fmt.Fprintln(w, "---")
		for _, tag := range tags {
			fmt.Fprintln(w, tag)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(intentsCmd)
}
