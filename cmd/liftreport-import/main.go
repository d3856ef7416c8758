package main

import (
	"errors"
	"fmt"
	"os"

	"liftreport/internal/cli"
	"liftreport/internal/core"
	"liftreport/internal/notify"
	"liftreport/internal/source/csvfile"
)

// liftreport-import re-imports the CSV workout log into the local SQLite
// cache so later report runs can use DATA_BACKEND=sqlite.
func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, cancel := cli.SignalContext()
	defer cancel()

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	sets, err := csvfile.New(cfg.CSVPath).ListSets(ctx)
	if err != nil {
		if errors.Is(err, core.ErrInputNotFound) {
			fmt.Printf("Error: %v. Please check the file path.\n", err)
		} else {
			fmt.Printf("An error occurred: %v\n", err)
		}
		os.Exit(1)
	}

	count, err := repo.ReplaceSets(ctx, sets)
	if err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Imported workout log into SQLite cache",
		"csv_path", cfg.CSVPath,
		"db_path", cfg.SQLiteDBPath,
		"sets", count)

	if cfg.AMQPURL != "" {
		client, err := notify.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to connect to AMQP broker", "error", err)
		} else {
			defer client.Close()
			if err := client.PublishReportEvent(ctx, notify.NewSetsImported(count, cfg.SQLiteDBPath)); err != nil {
				logger.Warn("Failed to publish import event", "error", err)
			}
		}
	}

	fmt.Printf("Imported %d sets into '%s'\n", count, cfg.SQLiteDBPath)
}
