package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-quality/internal/config"
	"github.com/jonathan/cv-quality/internal/pipeline"
	"github.com/jonathan/cv-quality/internal/report"
)

var scoreLanguageCmd = &cobra.Command{
	Use:   "score-language",
	Short: "Check a resume's prose for grammar and spelling errors",
	Long: `Clean the resume text, send it to a LanguageTool-compatible checker,
filter out cosmetic and allow-listed matches, and score the error density.`,
	RunE: runScoreLanguage,
}

var (
	langFile       string
	langCheckerURL string
	langLanguage   string
	langTerms      []string
	langRegistry   string
)

func init() {
	scoreLanguageCmd.Flags().StringVarP(&langFile, "file", "f", "", "Path to the resume PDF or text file (required)")
	scoreLanguageCmd.Flags().StringVar(&langCheckerURL, "checker-url", "", "LanguageTool-compatible endpoint (defaults to the public API)")
	scoreLanguageCmd.Flags().StringVar(&langLanguage, "language", "auto", "Checker language code")
	scoreLanguageCmd.Flags().StringSliceVar(&langTerms, "term", nil, "Term to never flag as an error (repeatable)")
	scoreLanguageCmd.Flags().StringVar(&langRegistry, "registry", "", "File of known package/tool names, one per line")

	scoreLanguageCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(scoreLanguageCmd)
}

func runScoreLanguage(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	doc, err := pipeline.ReadDocument(langFile)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	engine := pipeline.BuildEngine(config.Config{
		CheckerURL:   langCheckerURL,
		Language:     langLanguage,
		ManualTerms:  langTerms,
		RegistryFile: langRegistry,
	}, nil)

	result, err := engine.Run(ctx, doc.Text)
	if err != nil {
		return fmt.Errorf("language check failed: %w", err)
	}

	r := report.NewRenderer(os.Stdout)
	r.Render(result.CheckedText, result.Issues, result.Report)

	return nil
}
