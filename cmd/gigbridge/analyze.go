package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WillyEverGreen/gigbridge/internal/analyzer"
	"github.com/WillyEverGreen/gigbridge/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume text file",
	Long:  "Runs the resume analyzer on a plain-text file and prints the ratings, extracted skills, and suggestions. No state is written.",
	RunE:  runAnalyze,
}

var (
	analyzeFile    string
	analyzeJSON    bool
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to resume text file (required)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the full analysis as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print suggestions alongside the analysis")

	if err := analyzeCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	analysis, err := analyzer.Analyze(string(data))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(analysis)
	if analyzeVerbose {
		printer.PrintSuggestions(analysis)
	}
	return nil
}
