package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/extraction"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/logger"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/observability"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/rendering"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Upload resumes to the extraction service and export the parsed records",
	Long: `Upload one or more resumes (.pdf, .docx, .txt) to the extraction service,
normalize the extracted entities, and export each record. Files are uploaded
concurrently; a failure on one file does not stop the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var (
	parseFormat string
	parseOut    string
	parseName   string
)

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Export format: json, text or print (default from config)")
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", `Output directory, or "-" for stdout (default from config)`)
	parseCmd.Flags().StringVarP(&parseName, "name", "n", "", "Base file name for the export (single file only)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseName != "" && len(args) > 1 {
		return fmt.Errorf("--name can only be used with a single file")
	}

	format, err := resolveFormat(parseFormat)
	if err != nil {
		return err
	}

	client, err := newExtractionClient()
	if err != nil {
		return err
	}

	outDir := parseOut
	if outDir == "" {
		outDir = appConfig.OutputDir
	}

	limit := appConfig.Concurrency
	if format == rendering.FormatPrint {
		// One print window at a time.
		limit = 1
	}

	out := &output{w: cmd.OutOrStdout()}
	out.printer = observability.NewPrinter(out.w)

	var (
		mu       sync.Mutex
		failures []error
	)

	var g errgroup.Group
	g.SetLimit(limit)
	for _, path := range args {
		g.Go(func() error {
			err := parseFile(cmd.Context(), client, out, path, format, outDir)
			if err != nil {
				logger.Error().Err(err).Str("file", path).Msg("parse failed")
				mu.Lock()
				failures = append(failures, fmt.Errorf("%s: %w", path, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d files failed: %w", len(failures), len(args), errors.Join(failures...))
	}
	return nil
}

// parseFile uploads one file and exports the resulting record.
func parseFile(ctx context.Context, client *extraction.Client, out *output, path string, format rendering.Format, outDir string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	result, err := client.Upload(ctx, path, f)
	if err != nil {
		return err
	}

	out.Lock()
	defer out.Unlock()

	if appConfig.Verbose {
		out.printer.PrintUpload(result.Filename, result.FileType, result.TextLength)
		out.printer.PrintRecord(&result.Record)
	}

	baseName := parseName
	if baseName == "" {
		baseName = fileStem(path)
	}

	outPath := ""
	if outDir == "-" {
		outPath = "-"
	} else if outDir != "" {
		outPath = filepath.Join(outDir, format.FileName(baseName))
	}

	return exportRecord(ctx, out.w, result.Record, format, baseName, outPath, "")
}

// output serializes what concurrent uploads write to stdout. Hold the lock
// while using w or printer.
type output struct {
	sync.Mutex
	w       io.Writer
	printer *observability.Printer
}
