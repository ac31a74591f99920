package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bizchat/bizchat/internal/bizchat/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bizchat",
	Short: "A CLI client for the BizChat Assistant API",
	Long: `bizchat is a command-line client for the BizChat Assistant, a
domain-specific conversational chatbot.

It keeps a per-run session identifier, sends your messages to the configured
endpoint and renders the replies in a conversation transcript. It also ships
a local dev server that replicates the assistant's HTTP surface.
You can configure the tool using a TOML configuration file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/bizchat/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("BIZCHAT")
	viper.AutomaticEnv()

	// Determine config directory for user config
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	userConfigDir := filepath.Join(home, ".config", "bizchat")

	// Set default values
	defaultConfig := config.NewDefaultConfig()
	viper.SetDefault("base_url", defaultConfig.BaseURL)
	viper.SetDefault("timeout_seconds", defaultConfig.TimeoutSeconds)
	viper.SetDefault("greeting", defaultConfig.Greeting)
	viper.SetDefault("listen_addr", defaultConfig.ListenAddr)
	viper.SetDefault("knowledge_base", defaultConfig.KnowledgeBase)

	// Bind environment variables
	viper.BindEnv("base_url", "BIZCHAT_BASE_URL")
	viper.BindEnv("timeout_seconds", "BIZCHAT_TIMEOUT_SECONDS")
	viper.BindEnv("listen_addr", "BIZCHAT_LISTEN_ADDR")
	viper.BindEnv("knowledge_base", "BIZCHAT_KNOWLEDGE_BASE")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	} else {
		// System-wide config first (lower priority), user config merged on top
		viper.AddConfigPath("/etc/bizchat")
		viper.AddConfigPath("/usr/local/etc/bizchat")
		viper.SetConfigType("toml")
		viper.SetConfigName("config")

		systemConfigLoaded := false
		if err := viper.ReadInConfig(); err == nil {
			systemConfigLoaded = true
			if verbose {
				fmt.Fprintln(os.Stderr, "Loaded system-wide config:", viper.ConfigFileUsed())
			}
		}

		viper.AddConfigPath(userConfigDir)
		if systemConfigLoaded {
			if err := viper.MergeInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					fmt.Fprintf(os.Stderr, "Error merging user config file: %v\n", err)
				}
			} else if verbose {
				fmt.Fprintln(os.Stderr, "Merged user config:", viper.ConfigFileUsed())
			}
		} else {
			if err := viper.ReadInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				}
			}
		}
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		fmt.Fprintln(os.Stderr, "Environment variables:")
		fmt.Fprintln(os.Stderr, "  BIZCHAT_BASE_URL:", viper.GetString("base_url"))
		fmt.Fprintln(os.Stderr, "  BIZCHAT_TIMEOUT_SECONDS:", viper.GetInt("timeout_seconds"))
		fmt.Fprintln(os.Stderr, "  BIZCHAT_LISTEN_ADDR:", viper.GetString("listen_addr"))
	}
}
