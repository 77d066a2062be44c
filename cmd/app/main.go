package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tms/cmd"
	"tms/internal/adapters/out/kafka"
	"tms/internal/adapters/out/metrics"
	"tms/internal/core/ports"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:           "tms",
		Short:         "Freight load dispatch and assignment service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "optional YAML configuration file")
	root.AddCommand(serveCommand(), migrateCommand())

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			v, err := cmd.Migrate(c.Context(), configs)
			if err != nil {
				return err
			}
			fmt.Printf("schema version %d\n", v)
			return nil
		},
	}
}

func serve(ctx context.Context) error {
	configs, err := cmd.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	logger, logCloser, err := cmd.NewLogger(configs)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	uowFactory, closeStore, err := cmd.OpenStore(ctx, configs, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	sink, err := metrics.NewPromSink()
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	var publisher ports.EventPublisher
	if brokers := configs.Brokers(); len(brokers) > 0 {
		kp := kafka.NewPublisher(brokers, configs.KafkaLoadEventsTopic, logger)
		defer kp.Close()
		publisher = kp
	} else {
		logger.Warn("KAFKA_BROKERS is empty; domain events are not published")
	}

	app := cmd.NewCompositionRoot(configs, logger, uowFactory, publisher, sink, version)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	router, err := app.CreateRouter()
	if err != nil {
		return err
	}
	return startWebServer(ctx, router, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, handler http.Handler, port string, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
