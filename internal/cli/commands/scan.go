package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dictkit/dictkit/extractor/markdown"
	"github.com/dictkit/dictkit/extractor/pdftext"
	"github.com/dictkit/dictkit/internal/cli/config"
)

var scanList bool

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <pdf-or-table-dir>",
		Short: "Count table-name occurrences in a dictionary source",
		Long: `Count "Table Name" entries either in a dictionary PDF's text layer or in a
directory of rendered table files, depending on what the path points at.

The two counts bracket the extraction: a markdown count short of the PDF
count means the upstream table detection lost tables before dictkit ever
saw them.`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	cmd.Flags().BoolVar(&scanList, "list", false, "Print every name found, not just the count")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	var names []string
	if info.IsDir() {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		names, err = markdown.ScanTableNames(path, cfg.Scan.Pattern)
		if err != nil {
			return err
		}
	} else {
		names, err = pdftext.TableNames(path)
		if err != nil {
			return err
		}
	}

	color.New(color.Bold).Fprintf(cmd.OutOrStdout(), "Found %d 'Table Name' entries in %s\n", len(names), path)
	if scanList {
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	}
	return nil
}
