package cmd

import (
	"fmt"
	"os"

	"github.com/bizchat/bizchat/internal/bizchat/client"
	"github.com/bizchat/bizchat/internal/bizchat/config"
	"github.com/bizchat/bizchat/internal/bizchat/session"
)

// newClient creates a transport client bound to a fresh session. The session
// identifier stays constant for the lifetime of the process, so every command
// invocation is its own conversation scope.
func newClient(cfg *config.Config) (*client.Client, *session.Session) {
	sess := session.New()
	c := client.New(cfg.BaseURL, sess.ID, cfg.Timeout())
	c.SetLogf(func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "bizchat: "+format+"\n", args...)
	})

	if verbose {
		fmt.Fprintf(os.Stderr, "Session: %s\n", sess.ID)
		fmt.Fprintf(os.Stderr, "Endpoint: %s\n", cfg.BaseURL)
	}
	return c, sess
}

// clientForSession creates a transport client reusing an existing session
// identifier, for commands that act on a conversation started elsewhere.
func clientForSession(cfg *config.Config, sessionID string) *client.Client {
	c := client.New(cfg.BaseURL, sessionID, cfg.Timeout())
	c.SetLogf(func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "bizchat: "+format+"\n", args...)
	})
	return c
}
