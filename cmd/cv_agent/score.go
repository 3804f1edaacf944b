package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-quality/internal/config"
	"github.com/jonathan/cv-quality/internal/pipeline"
	"github.com/jonathan/cv-quality/internal/report"
	"github.com/jonathan/cv-quality/internal/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Run the full scoring pipeline end-to-end",
	Long: `Extract the resume text and score structure, language quality, and
presentation concurrently, then aggregate them into one weighted score.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runScore,
}

var (
	scoreConfigPath  string
	scoreFile        string
	scoreCheckerURL  string
	scoreLanguage    string
	scoreTerms       []string
	scoreRegistry    string
	scoreJSONPath    string
	scoreVerbose     bool
	scoreDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "Path to the resume PDF or text file (required)")
	scoreCmd.Flags().StringVar(&scoreCheckerURL, "checker-url", "", "LanguageTool-compatible endpoint (defaults to the public API)")
	scoreCmd.Flags().StringVar(&scoreLanguage, "language", "", "Checker language code")
	scoreCmd.Flags().StringSliceVar(&scoreTerms, "term", nil, "Term to never flag as an error (repeatable)")
	scoreCmd.Flags().StringVar(&scoreRegistry, "registry", "", "File of known package/tool names, one per line")
	scoreCmd.Flags().StringVar(&scoreJSONPath, "json", "", "Also write the report as JSON to this file")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for artifact persistence
	scoreCmd.Flags().StringVar(&scoreDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if scoreConfigPath != "" {
		loadedCfg, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if scoreVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", scoreConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("checker-url") {
		cfg.CheckerURL = scoreCheckerURL
	}
	if cmd.Flags().Changed("language") {
		cfg.Language = scoreLanguage
	}
	if cmd.Flags().Changed("term") {
		cfg.ManualTerms = scoreTerms
	}
	if cmd.Flags().Changed("registry") {
		cfg.RegistryFile = scoreRegistry
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = scoreDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	// Step 4: Validate the merged configuration
	if err := cfg.Validate(); err != nil {
		return err
	}
	if scoreFile == "" {
		return fmt.Errorf("--file is required")
	}

	// Step 5: Database URL handling (persistence is optional)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	result, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Source: scoreFile,
		Config: cfg,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose && len(result.Issues) > 0 {
		r := report.NewRenderer(os.Stdout)
		r.RenderIssues(result.CheckedText, result.Issues)
	}

	if scoreJSONPath != "" {
		if err := writeJSONReport(result, scoreJSONPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Report written to %s\n", scoreJSONPath)
	}

	return nil
}

// writeJSONReport marshals the report and validates it against the score
// report schema before writing. Validation is skipped when the schema file
// cannot be located (e.g. the binary runs outside the repository).
func writeJSONReport(result *pipeline.RunResult, path string) error {
	data, err := json.MarshalIndent(result.Report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "score_report.schema.json"))
	if schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("failed to read schema: %w", err)
		}
		if err := schemas.ValidateJSONString(string(schemaContent), string(data)); err != nil {
			return fmt.Errorf("report failed schema validation: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
