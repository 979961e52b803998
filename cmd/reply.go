package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"replygen/internal/extract"
	"replygen/internal/models"
	"replygen/internal/service/assistant"
)

var replyCmd = &cobra.Command{
	Use:   "reply",
	Short: "Generate one reply from local files",
	Long: `Generate a reply for an email thread and/or PDF on disk, using the configured
provider. Failures are printed as "Error: ..." like the HTTP API does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		emailPath, _ := cmd.Flags().GetString("email")
		pdfPath, _ := cmd.Flags().GetString("pdf")
		tone, _ := cmd.Flags().GetString("tone")
		strategy, _ := cmd.Flags().GetString("strategy")

		req := models.ReplyRequest{Tone: tone, Strategy: models.ParseStrategy(strategy)}
		var err error
		if pdfPath != "" {
			if req.PDFText, err = extractPath(pdfPath); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), models.CompletionError(err).Display())
				return nil
			}
		}
		if emailPath != "" {
			if req.EmailText, err = extractPath(emailPath); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), models.CompletionError(err).Display())
				return nil
			}
		}

		completer, err := newCompleter(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("init completion client: %w", err)
		}
		svc, err := assistant.NewService(completer)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), svc.GenerateReply(cmd.Context(), req).Display())
		return nil
	},
}

func extractPath(path string) (string, error) {
	file, err := readLocalFile(path)
	if err != nil {
		return "", err
	}
	return extract.Text(file)
}

func init() {
	rootCmd.AddCommand(replyCmd)
	replyCmd.Flags().String("email", "", "email thread file")
	replyCmd.Flags().String("pdf", "", "PDF attachment")
	replyCmd.Flags().String("tone", models.DefaultTone, "tone of the reply")
	replyCmd.Flags().String("strategy", models.DefaultStrategy, "reply strategy label")
}
