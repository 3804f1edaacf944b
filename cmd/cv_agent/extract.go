package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-quality/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract plain text from a resume",
	Long:  "Extract the text content of a resume PDF page by page and print it, or write it to a file with --out.",
	RunE:  runExtract,
}

var (
	extractFile string
	extractOut  string
)

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to the resume PDF or text file (required)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write extracted text to this file instead of stdout")

	extractCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	doc, err := pipeline.ReadDocument(extractFile)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	if extractOut != "" {
		if err := os.WriteFile(extractOut, []byte(doc.Text), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Extracted %d page(s) to %s\n", doc.Pages, extractOut)
		return nil
	}

	fmt.Fprintln(os.Stdout, doc.Text)
	return nil
}
