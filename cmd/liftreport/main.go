package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"liftreport/internal/cli"
	"liftreport/internal/config"
	"liftreport/internal/core"
	"liftreport/internal/notify"
	"liftreport/internal/report"
	"liftreport/internal/source"
	"liftreport/internal/source/csvfile"
	gsource "liftreport/internal/source/google"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, cancel := cli.SignalContext()
	defer cancel()

	var reader source.SetReader
	switch cfg.DataBackend {
	case "sheets":
		client, err := gsource.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets source", "error", err)
			os.Exit(1)
		}
		reader = client
	case "sqlite":
		repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
		defer repo.Close()
		reader = repo
	default:
		reader = csvfile.New(cfg.CSVPath)
	}
	logger.Info("Initialized data source", "backend", cfg.DataBackend)

	if err := run(ctx, cfg, reader, logger); err != nil {
		if errors.Is(err, core.ErrInputNotFound) {
			fmt.Printf("Error: %v. Please check the file path.\n", err)
		} else {
			fmt.Printf("An error occurred: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Report has been generated and saved as '%s'\n", cfg.OutputPath)
}

// run is one full pass: read, aggregate, render, write. Rendering starts only
// after aggregation of every group succeeded, so a failing run never leaves a
// partial artifact behind.
func run(ctx context.Context, cfg *config.Config, reader source.SetReader, logger *slog.Logger) error {
	sets, err := reader.ListSets(ctx)
	if err != nil {
		return err
	}
	logger.Info("Loaded workout log", "sets", len(sets))

	results, err := core.Aggregate(sets, cfg.Mappings, cfg.Year)
	if err != nil {
		return err
	}
	logger.Info("Aggregated exercise groups", "year", cfg.Year, "groups", len(results))

	img, err := report.Render(results, cfg.Year)
	if err != nil {
		return err
	}
	if err := report.WriteFile(cfg.OutputPath, img); err != nil {
		return err
	}
	logger.Info("Wrote report", "path", cfg.OutputPath)

	publishEvent(ctx, cfg, logger, notify.NewReportGenerated(cfg.Year, len(results), cfg.OutputPath))
	return nil
}

// publishEvent sends the completion event when a broker is configured.
// The report is already on disk at this point; a broker problem is logged
// and the run still succeeds.
func publishEvent(ctx context.Context, cfg *config.Config, logger *slog.Logger, ev *notify.ReportEvent) {
	if cfg.AMQPURL == "" {
		return
	}
	client, err := notify.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Warn("Failed to connect to AMQP broker", "error", err)
		return
	}
	defer client.Close()
	if err := client.PublishReportEvent(ctx, ev); err != nil {
		logger.Warn("Failed to publish report event", "error", err)
	}
}
