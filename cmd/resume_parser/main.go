// Package main provides the resume_parser command line: batch uploads to the
// extraction service, exports of parsed records, and the HTTP API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/config"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/extraction"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/logger"
)

var (
	configPath string
	apiURL     string
	verbose    bool

	// appConfig is resolved once per invocation in loadAppConfig.
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Resume Parser CLI and HTTP API server",
	Long: "Resume Parser uploads resumes (PDF, DOCX, TXT) to the document-parsing service, " +
		"normalizes the extracted entities, and exports them as JSON, plain text, or a printable document.",
	SilenceUsage:      true,
	PersistentPreRunE: loadAppConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Extraction service base URL (overrides config and "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

// loadAppConfig merges, in increasing priority: built-in defaults, the config
// file, environment variables, and command-line flags.
func loadAppConfig(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = apiURL
	}
	if verbose {
		cfg.Verbose = true
		cfg.Log.Level = "debug"
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(cfg.Log)
	appConfig = cfg
	return nil
}

// newExtractionClient builds a client from the resolved configuration.
func newExtractionClient() (*extraction.Client, error) {
	opts := extraction.DefaultOptions()
	opts.BaseURL = appConfig.APIURL
	opts.Timeout = appConfig.UploadTimeout
	opts.Logger = &logger.Logger
	return extraction.NewClient(opts)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
