package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/bizchat/bizchat/internal/bizchat/client"
	"github.com/bizchat/bizchat/internal/bizchat/config"
	"github.com/bizchat/bizchat/internal/bizchat/render"
	"github.com/bizchat/bizchat/internal/bizchat/transcript"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an interactive conversation",
	Long: `Start an interactive conversation with the BizChat Assistant.

Each line you type is sent to the assistant and the reply is appended to the
transcript. Empty lines are ignored. A failed exchange shows the fixed
fallback reply; the conversation always remains usable.

Commands inside the conversation:
  /clear  reset the conversation on the server and reseed the transcript
  /quit   leave the conversation (also Ctrl-D)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		c, sess := newClient(cfg)
		ts := transcript.New(cfg.Greeting)
		out := render.New(cmd.OutOrStdout())

		ex := client.NewExchanger(c, ts, func(e transcript.Entry) {
			out.Entry(e)
		})

		rl, err := readline.New("You> ")
		if err != nil {
			return fmt.Errorf("initializing readline: %w", err)
		}
		defer rl.Close()

		out.Info(fmt.Sprintf("Connected to %s (session %s). /quit to leave.", cfg.BaseURL, sess.ID))
		out.Transcript(ts)

		ctx := cmd.Context()
		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			switch strings.TrimSpace(line) {
			case "/quit", "/exit":
				return nil
			case "/clear":
				if err := c.ClearHistory(ctx); err != nil {
					fmt.Fprintf(os.Stderr, "bizchat: clear history failed: %v\n", err)
				}
				ts.Clear()
				out.Info("Conversation cleared.")
				out.Transcript(ts)
				continue
			}

			// Sequential use of the exchanger: wait for each reply before
			// prompting again. Stale-reply discarding still applies if the
			// transcript is shared with another submitter.
			if ex.Submit(ctx, line) {
				ex.Wait()
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
