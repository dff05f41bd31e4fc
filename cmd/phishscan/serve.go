package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ludo-technologies/phishscan/internal/config"
	"github.com/ludo-technologies/phishscan/internal/logging"
	"github.com/ludo-technologies/phishscan/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveListenAddr string
	serveStorageDir string
	serveConfigPath string
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run an HTTP JSON API for URL risk analysis.

Endpoints:
  POST /api/v1/analyze        Score a single URL
  POST /api/v1/analyze/batch  Score a batch of URLs
  GET  /api/v1/reports        List stored reports
  GET  /api/v1/reports/{id}   Retrieve a stored report
  GET  /healthz               Health check

Examples:
  phishscan serve
  phishscan serve --listen :9000 --storage /var/lib/phishscan`,
		RunE: runServe,
	}

	cmd.Flags().StringVarP(&serveListenAddr, "listen", "l", "",
		"Listen address (default from config, "+config.DefaultListenAddr+")")
	cmd.Flags().StringVar(&serveStorageDir, "storage", "",
		"Report storage directory (default from config)")
	cmd.Flags().StringVarP(&serveConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithTarget(serveConfigPath, "")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	listenAddr := cfg.Server.ListenAddr
	if serveListenAddr != "" {
		listenAddr = serveListenAddr
	}
	storageDir := cfg.Server.StorageDir
	if serveStorageDir != "" {
		storageDir = serveStorageDir
	}
	storageDir, err = expandHome(storageDir)
	if err != nil {
		return fmt.Errorf("failed to resolve storage directory: %w", err)
	}

	srv, err := server.NewServer(server.Config{
		ListenAddr: listenAddr,
		StorageDir: storageDir,
		RiskConfig: &cfg.Risk,
		Logger:     logging.NewJSONLogger("server"),
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("phishscan API listening on %s\n", listenAddr)
	return srv.ListenAndServe(ctx)
}

// expandHome resolves a leading ~ in a path to the user's home directory
func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
