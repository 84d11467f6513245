package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/logger"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/server"
	"github.com/TanyaIgnatenko/Resume-Parser/internal/session"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that accepts resume uploads, keeps each parsed record
in a session (Redis when REDIS_URL is set, memory otherwise), and exports
sessions as JSON, text, or a printable page.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or PORT, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	client, err := newExtractionClient()
	if err != nil {
		return err
	}

	port := appConfig.Port
	if servePort != 0 {
		port = servePort
	}

	var store session.Store
	if appConfig.RedisURL != "" {
		redisStore, err := session.NewRedisStoreFromURL(cmd.Context(), appConfig.RedisURL, appConfig.SessionTTL)
		if err != nil {
			return fmt.Errorf("failed to connect to session store: %w", err)
		}
		defer func() { _ = redisStore.Close() }()
		store = redisStore
		logger.Info().Msg("using Redis session store")
	} else {
		store = session.NewMemoryStore(appConfig.SessionTTL)
		logger.Info().Dur("ttl", appConfig.SessionTTL).Msg("using in-memory session store")
	}

	srv, err := server.New(server.Config{
		Port:             port,
		Client:           client,
		Store:            store,
		AllowedOrigin:    appConfig.AllowedOrigin,
		UploadsPerMinute: appConfig.UploadsPerMinute,
		Logger:           &logger.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
