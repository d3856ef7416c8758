package main

import (
	"fmt"
	"log"

	"liftreport/internal/cli"
	gsource "liftreport/internal/source/google"
)

// sheets-check verifies that the Google Sheets source is reachable with the
// configured credentials and that the sheet carries the expected columns.
// Run it once after setting up a service account.
func main() {
	cli.LoadEnvFile()

	ctx, cancel := cli.SignalContext()
	defer cancel()

	client, err := gsource.NewFromEnv(ctx)
	if err != nil {
		log.Fatalf("sheets client: %v", err)
	}

	sets, err := client.ListSets(ctx)
	if err != nil {
		log.Fatalf("read sheet: %v", err)
	}

	if len(sets) == 0 {
		fmt.Println("Sheet is reachable but holds no sets yet.")
		return
	}

	first, last := sets[0].Date, sets[0].Date
	for _, s := range sets[1:] {
		if s.Date.Before(first.Time) {
			first = s.Date
		}
		if s.Date.After(last.Time) {
			last = s.Date
		}
	}
	fmt.Printf("OK: %d sets, %s to %s\n", len(sets), first.DayKey(), last.DayKey())
}
