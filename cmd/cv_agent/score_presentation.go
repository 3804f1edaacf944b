package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-quality/internal/pipeline"
	"github.com/jonathan/cv-quality/internal/presentation"
)

var scorePresentationCmd = &cobra.Command{
	Use:   "score-presentation",
	Short: "Score a resume's visual presentation",
	Long:  "Score typography, layout, consistency, page length, and ATS compatibility from the extracted text, each on a 0-5 scale.",
	RunE:  runScorePresentation,
}

var presentationFile string

func init() {
	scorePresentationCmd.Flags().StringVarP(&presentationFile, "file", "f", "", "Path to the resume PDF or text file (required)")

	scorePresentationCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(scorePresentationCmd)
}

func runScorePresentation(cmd *cobra.Command, args []string) error {
	doc, err := pipeline.ReadDocument(presentationFile)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	report := presentation.Evaluate(doc.Text, doc.Pages)
	presentation.Render(os.Stdout, report)

	return nil
}
