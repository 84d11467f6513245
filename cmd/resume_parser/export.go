package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/config"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/logger"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/printing"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/rendering"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export RECORD.json",
	Short: "Export a structured resume as JSON, text, or a printable document",
	Long: `Export a structured resume previously saved with "parse --format json".
The print format opens a browser window with the print dialog; with --pdf the
document is saved as a PDF instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportFormat string
	exportOut    string
	exportName   string
	exportPDF    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format: json, text or print (default from config)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", `Output file, or "-" for stdout (default: <name>.<ext> in the output directory)`)
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "", "Base file name for the export (default: the record file name)")
	exportCmd.Flags().StringVar(&exportPDF, "pdf", "", "With --format print, save a PDF to this path instead of opening a print window")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read record file: %w", err)
	}

	record, err := rendering.DecodeJSON(data)
	if err != nil {
		return err
	}

	format, err := resolveFormat(exportFormat)
	if err != nil {
		return err
	}

	baseName := exportName
	if baseName == "" {
		baseName = fileStem(args[0])
	}

	return exportRecord(cmd.Context(), cmd.OutOrStdout(), record, format, baseName, exportOut, exportPDF)
}

// resolveFormat parses a --format flag, falling back to the configured format.
func resolveFormat(flag string) (rendering.Format, error) {
	if flag == "" {
		flag = appConfig.Format
	}
	return rendering.ParseFormat(flag)
}

// exportRecord renders record and writes the artifact. outPath "-" means
// stdout; an empty outPath means the artifact's suggested name inside the
// configured output directory. Print artifacts are shown, not written.
func exportRecord(ctx context.Context, stdout io.Writer, record types.ResumeRecord, format rendering.Format, baseName, outPath, pdfPath string) error {
	exporter := rendering.NewExporter(newPrintOpener(pdfPath))

	artifact, err := exporter.Export(ctx, record, format, baseName)
	if err != nil {
		if format == rendering.FormatPrint && pdfPath == "" {
			return fmt.Errorf("%w (install Chrome or set %s, or use --pdf)", err, config.EnvChromePath)
		}
		return err
	}

	if format == rendering.FormatPrint {
		if pdfPath != "" {
			_, _ = fmt.Fprintf(stdout, "Saved %s\n", pdfPath)
		}
		return nil
	}

	if outPath == "-" {
		_, err := stdout.Write(artifact.Content)
		if err == nil && !strings.HasSuffix(string(artifact.Content), "\n") {
			_, err = io.WriteString(stdout, "\n")
		}
		return err
	}

	if outPath == "" {
		outPath = filepath.Join(appConfig.OutputDir, artifact.FileName)
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, artifact.Content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Debug().Str("path", outPath).Str("format", string(format)).Int("bytes", len(artifact.Content)).Msg("wrote export")
	_, _ = fmt.Fprintf(stdout, "Wrote %s\n", outPath)
	return nil
}

// newPrintOpener returns a Chrome opener. With pdfPath set it runs headless
// and saves a PDF instead of opening the print dialog.
func newPrintOpener(pdfPath string) *printing.ChromeOpener {
	return &printing.ChromeOpener{
		ExecPath: appConfig.ChromePath,
		Headless: pdfPath != "",
		PDFPath:  pdfPath,
		Timeout:  appConfig.PrintTimeout,
		Logger:   &logger.Logger,
	}
}

// fileStem returns the file name of path without directory or extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
