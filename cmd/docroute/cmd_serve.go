package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazyhaar/docroute/batch"
	"github.com/hazyhaar/docroute/catalog"
	"github.com/hazyhaar/docroute/emit"
	"github.com/hazyhaar/docroute/webui"
)

var serveFlags struct {
	config  string
	listen  string
	catalog string
	out     string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog browser and upload UI",
	Long: `Starts the web UI over the document catalog: a filterable list of processed
documents, per-document detail pages, and an upload form that runs new files
through the pipeline immediately. Uploads are appended to the batch outputs
when an output folder is configured.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVarP(&serveFlags.config, "config", "c", "", "YAML config file (flags override it)")
	f.StringVar(&serveFlags.listen, "listen", "", "bind address (default :8090)")
	f.StringVar(&serveFlags.catalog, "catalog", "", "SQLite catalog path")
	f.StringVarP(&serveFlags.out, "out", "o", "", "output folder for uploaded documents (optional)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := setupLogging(logLevel)

	cfg := batch.DefaultConfig()
	if serveFlags.config != "" {
		loaded, err := batch.LoadConfig(serveFlags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if serveFlags.listen != "" {
		cfg.Listen = serveFlags.listen
	}
	if serveFlags.catalog != "" {
		cfg.CatalogDB = serveFlags.catalog
	}
	if serveFlags.out != "" {
		cfg.OutputDir = serveFlags.out
	}
	if cfg.CatalogDB == "" {
		return fmt.Errorf("serve requires a catalog path (--catalog or catalog_db in config)")
	}

	store, err := catalog.Open(cfg.CatalogDB)
	if err != nil {
		return err
	}
	defer store.Close()

	var writer *emit.Writer
	if cfg.OutputDir != "" {
		writer, err = emit.NewWriter(emit.Config{Dir: cfg.OutputDir, PerFileJSON: cfg.PerFileJSON})
		if err != nil {
			return err
		}
		defer writer.Close()
	}

	srv, err := webui.NewServer(webui.Config{
		Store:        store,
		Writer:       writer,
		MaxSentences: cfg.MaxSentences,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web ui listening", "addr", cfg.Listen, "catalog", cfg.CatalogDB)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
