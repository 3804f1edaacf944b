package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-quality/internal/fetch"
	"github.com/jonathan/cv-quality/internal/matching"
	"github.com/jonathan/cv-quality/internal/observability"
	"github.com/jonathan/cv-quality/internal/pipeline"
)

var matchJobsCmd = &cobra.Command{
	Use:   "match-jobs",
	Short: "Rank job postings by similarity to a resume",
	Long: `Rank job postings from a CSV file against the resume using TF-IDF
cosine similarity, or fetch a single posting with --job-url and score the
resume against it.`,
	RunE: runMatchJobs,
}

var (
	matchFile       string
	matchJobsCSV    string
	matchJobURL     string
	matchTopK       int
	matchShowSkills bool
	matchUseBrowser bool
	matchVerbose    bool
)

func init() {
	matchJobsCmd.Flags().StringVarP(&matchFile, "file", "f", "", "Path to the resume PDF or text file (required)")
	matchJobsCmd.Flags().StringVar(&matchJobsCSV, "jobs", "", "Path to a CSV of job postings (mutually exclusive with --job-url)")
	matchJobsCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL of a single job posting (mutually exclusive with --jobs)")
	matchJobsCmd.Flags().IntVar(&matchTopK, "top", 5, "Number of matches to print")
	matchJobsCmd.Flags().BoolVar(&matchShowSkills, "skills", false, "Also print the most requested skills across the postings")
	matchJobsCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Use headless browser for SPA job pages (requires Chrome)")
	matchJobsCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")

	matchJobsCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(matchJobsCmd)
}

func runMatchJobs(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if matchJobsCSV == "" && matchJobURL == "" {
		return fmt.Errorf("either --jobs or --job-url must be provided")
	}
	if matchJobsCSV != "" && matchJobURL != "" {
		return fmt.Errorf("--jobs and --job-url are mutually exclusive; provide only one")
	}

	doc, err := pipeline.ReadDocument(matchFile)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	var jobs []matching.Job
	if matchJobsCSV != "" {
		jobs, err = matching.LoadJobsCSV(matchJobsCSV)
		if err != nil {
			return fmt.Errorf("failed to load jobs: %w", err)
		}
	} else {
		text, err := fetch.JobText(ctx, matchJobURL, fetch.DefaultOptions(), matchUseBrowser, matchVerbose)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		jobs = []matching.Job{{Title: matchJobURL, Description: text}}
	}

	matches := matching.RankJobs(jobs, doc.Text, matchTopK)
	matching.RenderMatches(os.Stdout, matchFile, matches)
	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintTopMatches(matches)
	}

	if matchShowSkills {
		skills := matching.TopSkills(jobs, matchTopK)
		fmt.Fprintf(os.Stdout, "\nMost requested skills: %v\n", skills)
	}

	return nil
}
