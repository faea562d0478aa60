package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dictkit/dictkit/extractor/catalog"
	"github.com/dictkit/dictkit/extractor/grid"
	"github.com/dictkit/dictkit/extractor/interp"
	"github.com/dictkit/dictkit/extractor/markdown"
	"github.com/dictkit/dictkit/extractor/metadata"
	"github.com/dictkit/dictkit/extractor/textclean"
	"github.com/dictkit/dictkit/internal/cli/config"
	"github.com/dictkit/dictkit/internal/cli/ui"
)

var (
	extractJSONName  string
	extractSQLite    string
	extractThreshold int
	extractClean     bool
	extractDump      bool
	extractVerbose   bool
	extractNoColor   bool
)

// NewExtractCommand creates the extract command
func NewExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <table-dir> <output-dir>",
		Short: "Extract table metadata from rendered dictionary tables",
		Long: `Parse the rendered table files (table_1.md, table_2.md, ...) in <table-dir>
and write the extracted metadata as a JSON artifact into <output-dir>.

The parse is deliberately tolerant: separator lines, ragged rows, wrapped
field names and legacy encodings are recovered from, and partial results
always beat aborting. Only a failure to write the JSON artifact is fatal.

Examples:
  dictkit extract markdown_tables out
  dictkit extract markdown_tables out --sqlite out/catalog.db --clean`,
		Args: cobra.ExactArgs(2),
		RunE: runExtract,
	}

	cmd.Flags().StringVar(&extractJSONName, "json-name", "", "Name of the JSON artifact (default from config)")
	cmd.Flags().StringVar(&extractSQLite, "sqlite", "", "Also export a SQLite catalog to this file")
	cmd.Flags().IntVar(&extractThreshold, "threshold", 0, "Field-name wrap threshold in runes (default from config)")
	cmd.Flags().BoolVar(&extractClean, "clean", false, "Normalize known typos in extracted descriptions")
	cmd.Flags().BoolVar(&extractDump, "dump-tables", false, "Re-render normalized table grids into <output-dir>")
	cmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Enable row-level debug logging")
	cmd.Flags().BoolVar(&extractNoColor, "no-color", false, "Disable colored output")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	tableDir, outDir := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if extractVerbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	defer logger.Sync()

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	docs, loadWarnings, err := markdown.LoadDir(tableDir)
	if err != nil {
		return fmt.Errorf("load %s: %w", tableDir, err)
	}
	if len(docs) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No table files found in %s\n", tableDir)
		return nil
	}
	logger.Info("tables loaded",
		zap.String("dir", tableDir),
		zap.Int("documents", len(docs)),
		zap.Int("warnings", len(loadWarnings)))

	threshold := cfg.TruncationThreshold
	if extractThreshold > 0 {
		threshold = extractThreshold
	}

	it := interp.New(
		interp.WithTruncationThreshold(threshold),
		interp.WithLogger(logger),
	)
	for _, doc := range docs {
		it.ProcessDocument(doc)
	}
	res := it.Result()

	if extractClean || cfg.Clean.Enabled {
		textclean.New(cfg.CleanRules()...).CleanTables(res.Tables)
	}

	jsonName := cfg.Output.JSONName
	if extractJSONName != "" {
		jsonName = extractJSONName
	}
	jsonPath := filepath.Join(outDir, jsonName)
	if err := metadata.WriteFile(jsonPath, res.Tables); err != nil {
		return err
	}
	logger.Info("artifact written",
		zap.String("path", jsonPath),
		zap.Int("tables", res.Tables.Len()))

	warnings := collectWarnings(loadWarnings, res)

	if extractDump {
		if err := dumpTables(outDir, docs); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	catalogPath := ""
	if extractSQLite != "" {
		if err := exportCatalog(extractSQLite, res.Tables); err != nil {
			// The JSON artifact is the contract; a catalog failure
			// downgrades to a warning.
			warnings = append(warnings, fmt.Sprintf("catalog export: %v", err))
		} else {
			catalogPath = extractSQLite
		}
	}

	ui.RenderWarnings(cmd.ErrOrStderr(), "extraction warnings", warnings, &ui.WarningOptions{NoColor: extractNoColor})
	ui.RenderSummary(cmd.OutOrStdout(), ui.Summary{
		RunID:        runID,
		FilesRead:    len(docs),
		FilesSkipped: skippedFiles(loadWarnings),
		Tables:       res.Tables.Len(),
		NamesSeen:    len(res.Names),
		RowsDropped:  res.DroppedRows,
		Diagnostics:  res.Diagnostics.Count(),
		JSONPath:     jsonPath,
		CatalogPath:  catalogPath,
	}, &ui.SummaryOptions{NoColor: extractNoColor})

	return nil
}

func collectWarnings(loadWarnings []markdown.Warning, res *interp.Result) []string {
	var out []string
	for _, w := range loadWarnings {
		out = append(out, w.String())
	}
	for _, d := range res.Diagnostics {
		out = append(out, d.String())
	}
	return out
}

// skippedFiles counts whole-file load warnings (Line == 0 means the file
// itself could not be read).
func skippedFiles(warnings []markdown.Warning) int {
	n := 0
	for _, w := range warnings {
		if w.Line == 0 {
			n++
		}
	}
	return n
}

func dumpTables(outDir string, docs []grid.Document) error {
	for i, doc := range docs {
		path := filepath.Join(outDir, fmt.Sprintf("normalized_table_%d.md", i+1))
		if err := os.WriteFile(path, []byte(markdown.Render(doc)), 0o644); err != nil {
			return fmt.Errorf("dump tables: %w", err)
		}
	}
	return nil
}

func exportCatalog(path string, tables *metadata.TableMap) error {
	db, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	return catalog.Export(db, tables)
}
