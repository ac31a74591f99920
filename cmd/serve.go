package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bizchat/bizchat/internal/bizchat/config"
	"github.com/bizchat/bizchat/internal/server"
)

var (
	listenAddr    string
	knowledgeBase string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local BizChat Assistant dev server",
	Long: `Run a local dev server that replicates the BizChat Assistant HTTP
surface, answered by a keyword-matching intent chatbot:

  POST /chat?session_id={id}           {"message": ...} -> {"response": ...}
  POST /clear-history?session_id={id}  drop the session's conversation
  GET  /                               health check
  GET  /intents                        loaded intent tags

Conversation state is in-memory and lost on shutdown. A custom knowledge
base (JSON, {"intents": [{tag, patterns, responses}]}) can be provided with
--knowledge-base; otherwise the built-in one is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Env files are a dev-server convenience; absence is not an error.
		if err := godotenv.Load(); err != nil && verbose {
			fmt.Fprintf(os.Stderr, "no .env file loaded: %v\n", err)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("addr") {
			cfg.ListenAddr = listenAddr
		}
		if cmd.Flags().Changed("knowledge-base") {
			cfg.KnowledgeBase = knowledgeBase
		}

		var bot *server.Chatbot
		if cfg.KnowledgeBase != "" {
			bot, err = server.LoadChatbot(cfg.KnowledgeBase)
		} else {
			bot, err = server.NewChatbot()
		}
		if err != nil {
			return fmt.Errorf("loading chatbot: %w", err)
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "Loaded %d intents\n", len(bot.Intents()))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(bot).Run(ctx, cfg.ListenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&listenAddr, "addr", "a", "", "listen address (default :8000)")
	serveCmd.Flags().StringVarP(&knowledgeBase, "knowledge-base", "k", "", "path to a knowledge base JSON file")
}
