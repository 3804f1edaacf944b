package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-quality/internal/pipeline"
	"github.com/jonathan/cv-quality/internal/structure"
)

var scoreStructureCmd = &cobra.Command{
	Use:   "score-structure",
	Short: "Check a resume for essential sections",
	Long:  "Check that the resume contains contact, education, experience, and skills sections, and score the result.",
	RunE:  runScoreStructure,
}

var structureFile string

func init() {
	scoreStructureCmd.Flags().StringVarP(&structureFile, "file", "f", "", "Path to the resume PDF or text file (required)")

	scoreStructureCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(scoreStructureCmd)
}

func runScoreStructure(cmd *cobra.Command, args []string) error {
	doc, err := pipeline.ReadDocument(structureFile)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	report := structure.Check(doc.Text)
	structure.Render(os.Stdout, report)

	return nil
}
