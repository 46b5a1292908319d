package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "invoiceflow/docs"
	"invoiceflow/pkg/api"
	"invoiceflow/pkg/config"
	"invoiceflow/pkg/logger"
	"invoiceflow/pkg/otel"
	"invoiceflow/pkg/record"
)

var Version = "dev"

// @title InvoiceFlow API
// @version 1.0
// @description CRUD API for items, invoices and clients
// @host localhost:3000
// @BasePath /
func main() {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:     "invoiceflow",
		Short:   "HTTP CRUD service for items, invoices and clients",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfgPath)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logger.New(os.Stdout, level, "invoiceflow", otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: "invoiceflow", Host: cfg.Tracing.Host, Probability: cfg.Tracing.Probability})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdown(context.Background())

	db, err := openStore(ctx, cfg.Store)
	if err != nil {
		log.Error(ctx, "open store", "driver", cfg.Store.Driver, "error", err)
		return err
	}
	defer db.Close(context.Background())
	log.Info(ctx, "store connected", "driver", cfg.Store.Driver, "database", cfg.Store.Database)

	h := api.New(record.NewService(db, log), log,
		api.WithTracer(tp.Tracer("invoiceflow")),
		api.WithRequestTimeout(cfg.Server.RequestTimeout),
	)
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server closed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}
