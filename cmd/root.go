package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"replygen/internal/config"
	"replygen/internal/service/ai"
	"replygen/internal/service/assistant"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "replygen",
	Short: "Draft email replies and summaries from uploaded PDFs and emails",
	Long: `replygen extracts text from an uploaded PDF or email file, builds a prompt
for the chosen reply strategy and asks a chat model for the answer.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		loaded.ApplyEnv()
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

// newCompleter builds the chat-model client for the configured provider.
var newCompleter = func(ctx context.Context, c *config.Config) (assistant.Completer, error) {
	chatModel, err := ai.NewChatModel(ctx, c.Provider)
	if err != nil {
		return nil, err
	}
	return ai.NewClient(chatModel)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", os.Getenv("REPLYGEN_CONFIG"),
		"path to a .json or .toml config file (default config.json)")
}
