package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"replygen/internal/extract"
	"replygen/internal/models"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the text extracted from a PDF or email file",
	Long: `Extract text the same way the preview-text endpoint does. Files ending in
.pdf are parsed page by page, anything else is read as UTF-8.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := readLocalFile(args[0])
		if err != nil {
			return err
		}
		text, err := extract.Text(file)
		if err != nil {
			return fmt.Errorf("extract %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func readLocalFile(path string) (models.UploadedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	return models.UploadedFile{Filename: filepath.Base(path), Data: data}, nil
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
