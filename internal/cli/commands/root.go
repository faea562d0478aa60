// Package commands implements the dictkit command-line interface.
package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dictkit",
		Short: "Data-dictionary table metadata extractor",
		Long: color.CyanString(`dictkit - Data Dictionary Extraction Toolkit

dictkit turns rendered data-dictionary tables into structured metadata:
table names, synonyms, descriptions, modules, and key/normal fields with
types, descriptions and foreign-key references.

Workflow:
  • An upstream step detects tables in the dictionary PDF and renders
    each one as a pipe-table file (table_1.md, table_2.md, ...)
  • dictkit extract parses those files into a JSON artifact, tolerating
    ragged rows, wrapped field names and stray separator lines
  • dictkit scan cross-checks the table count against the PDF text layer`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewExtractCommand())
	rootCmd.AddCommand(NewScanCommand())
	rootCmd.AddCommand(NewInitCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the dictkit version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			bold := color.New(color.Bold)
			bold.Printf("dictkit %s\n", Version)
			color.Cyan("  commit:  %s", GitCommit)
			color.Cyan("  built:   %s", BuildDate)
			if GoVersion == "unknown" {
				GoVersion = runtime.Version()
			}
			color.Cyan("  go:      %s", GoVersion)
		},
	}
}
