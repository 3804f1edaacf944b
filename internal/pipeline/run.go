// Package pipeline provides the high-level orchestration for scoring a document.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-quality/internal/allowlist"
	"github.com/jonathan/cv-quality/internal/config"
	"github.com/jonathan/cv-quality/internal/db"
	"github.com/jonathan/cv-quality/internal/extraction"
	"github.com/jonathan/cv-quality/internal/language"
	"github.com/jonathan/cv-quality/internal/observability"
	"github.com/jonathan/cv-quality/internal/presentation"
	"github.com/jonathan/cv-quality/internal/structure"
	"github.com/jonathan/cv-quality/internal/types"
)

// RunOptions holds configuration for running the scoring pipeline
type RunOptions struct {
	Source  string // path to the document to score (PDF or plain text)
	Config  config.Config
	Checker language.Checker // optional; built from Config when nil
	Output  io.Writer        // defaults to os.Stdout
}

// RunResult holds the aggregate report plus the language-branch detail
// needed to render individual issues.
type RunResult struct {
	Report      types.QualityReport
	Issues      []types.IssueMatch
	CheckedText string
}

// RunPipeline scores a document end to end: extract, score the three
// components, aggregate, and optionally persist artifacts.
//
// Structure, language, and presentation are scored concurrently. A
// failed language check contributes a zero score instead of aborting
// the run; the other two components cannot fail once text is extracted.
func RunPipeline(ctx context.Context, opts RunOptions) (*RunResult, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	cfg := opts.Config
	printer := observability.NewPrinter(out)

	runID := uuid.New()

	// Initialize database connection if configured
	var database *db.DB
	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(out, "Warning: Failed to connect to database: %v\n", err)
			fmt.Fprintf(out, "Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if cfg.Verbose {
				fmt.Fprintf(out, "[VERBOSE] Connected to database\n")
			}
		}
	}

	fmt.Fprintf(out, "Step 1/4: Extracting text from %s...\n", opts.Source)
	doc, err := ReadDocument(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	if database != nil {
		id, err := database.CreateRun(ctx, opts.Source)
		if err != nil {
			fmt.Fprintf(out, "Warning: Failed to create database run: %v\n", err)
			database = nil
		} else {
			runID = id
			if cfg.Verbose {
				fmt.Fprintf(out, "[VERBOSE] Created database run: %s\n", runID)
			}
			_ = database.SaveTextArtifact(ctx, runID, db.StepExtractedText, db.CategoryExtraction, doc.Text)
		}
	}

	engine := BuildEngine(cfg, opts.Checker)

	fmt.Fprintf(out, "Step 2/4: Scoring structure, language, and presentation...\n")

	g, gCtx := errgroup.WithContext(ctx)

	var structureReport types.StructureReport
	var presentationReport types.PresentationReport
	var langResult *language.Result

	g.Go(func() error {
		structureReport = structure.Check(doc.Text)
		return nil
	})
	g.Go(func() error {
		presentationReport = presentation.Evaluate(doc.Text, doc.Pages)
		return nil
	})
	g.Go(func() error {
		result, err := engine.Run(gCtx, doc.Text)
		if err != nil {
			return fmt.Errorf("language check failed: %w", err)
		}
		langResult = result
		return nil
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(out, "Warning: %v\n", err)
		fmt.Fprintf(out, "Continuing with a zero language score...\n")
	}

	if cfg.Verbose {
		printer.PrintStructureReport(&structureReport)
		printer.PrintPresentationReport(&presentationReport)
		if langResult != nil {
			printer.PrintLanguageReport(&langResult.Report, langResult.Issues)
		}
	}

	fmt.Fprintf(out, "Step 3/4: Aggregating scores...\n")

	report := types.QualityReport{
		RunID:             runID.String(),
		Source:            opts.Source,
		StructureScore:    structureReport.Score,
		PresentationScore: presentationReport.Score,
		Structure:         &structureReport,
		Presentation:      &presentationReport,
	}
	result := &RunResult{CheckedText: doc.Text}
	if langResult != nil {
		report.LanguageScore = langResult.Report.QualityScore
		report.Language = &langResult.Report
		result.Issues = langResult.Issues
		result.CheckedText = langResult.CheckedText
	}

	overall := report.StructureScore*cfg.StructureWeight +
		report.LanguageScore*cfg.LanguageWeight +
		report.PresentationScore*cfg.PresentationWeight
	report.OverallScore = math.Round(overall*10) / 10
	result.Report = report

	if database != nil {
		fmt.Fprintf(out, "Step 4/4: Persisting artifacts...\n")
		if langResult != nil {
			_ = database.SaveTextArtifact(ctx, runID, db.StepCleanedText, db.CategoryLanguage, langResult.CheckedText)
			_ = database.SaveArtifact(ctx, runID, db.StepLanguageIssues, db.CategoryLanguage, langResult.Issues)
		}
		_ = database.SaveArtifact(ctx, runID, db.StepStructureReport, db.CategoryScoring, structureReport)
		_ = database.SaveArtifact(ctx, runID, db.StepPresentationReport, db.CategoryScoring, presentationReport)
		_ = database.SaveArtifact(ctx, runID, db.StepQualityReport, db.CategoryScoring, report)
		_ = database.SaveScores(ctx, runID, report.StructureScore, report.LanguageScore, report.PresentationScore, report.OverallScore)
		_ = database.CompleteRun(ctx, runID, db.StatusCompleted)
	} else {
		fmt.Fprintf(out, "Step 4/4: Skipping persistence (no database configured).\n")
	}

	printer.PrintQualityReport(&report)

	return result, nil
}

// BuildEngine assembles the language engine from the merged configuration.
func BuildEngine(cfg config.Config, checker language.Checker) *language.Engine {
	if checker == nil {
		checker = language.NewLanguageToolChecker(cfg.CheckerURL, cfg.Language)
	}

	engine := language.NewEngine(checker)
	engine.ManualTerms = cfg.ManualTerms
	if len(cfg.IgnoreRules) > 0 {
		rules := make(map[string]struct{}, len(cfg.IgnoreRules))
		for _, r := range cfg.IgnoreRules {
			rules[r] = struct{}{}
		}
		engine.IgnoreRules = rules
	}
	if cfg.RegistryFile != "" {
		engine.Enumerator = allowlist.FileEnumerator{Path: cfg.RegistryFile}
	}
	return engine
}

// ReadDocument loads the source document. PDFs go through the extraction
// layer; anything else is treated as a single-page plain-text file.
func ReadDocument(path string) (*extraction.Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extraction.Extract(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return &extraction.Document{Text: string(data), Pages: 1}, nil
}
