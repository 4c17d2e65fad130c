// Command cityevents is the local events browser: it keeps a mirror of the
// event list in key-value storage (Redis when reachable, a JSON file
// otherwise), filters and sorts it locally, and records ratings.
//
//	cityevents list [-search term] [-category music|sport|...|all]
//	cityevents rate <event-id> <1-5>
//	cityevents pull [-api http://localhost:5000]
//	cityevents reset
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/cityevents/events-system/internal/client/rest"
	"github.com/cityevents/events-system/internal/client/storage"
	"github.com/cityevents/events-system/internal/client/store"
	"github.com/cityevents/events-system/internal/infrastructure/config"
	"github.com/cityevents/events-system/pkg/logger"
)

// categoryLabels maps categories to the Lithuanian display names of the UI.
var categoryLabels = map[string]string{
	"music":     "Muzika",
	"sport":     "Sportas",
	"culture":   "Kultūra",
	"food":      "Maistas",
	"education": "Švietimas",
	"other":     "Kita",
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	st := storage.Select(ctx, cfg.Redis.Addr, cfg.Redis.DB, dataDir(), log)
	events := store.New(st, log)

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, events, os.Args[2:])
	case "rate":
		err = runRate(ctx, events, os.Args[2:])
	case "pull":
		err = runPull(ctx, events, os.Args[2:])
	case "reset":
		err = events.Save(ctx, store.SeedEvents())
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func runList(ctx context.Context, events *store.Store, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "match against title, location, and description")
	category := fs.String("category", store.CategoryAll, "filter by category, or \"all\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := events.Load(ctx)
	if err != nil {
		return err
	}

	filtered := store.Filter(list, *search, *category)
	if len(filtered) == 0 {
		fmt.Println("Renginių nerasta.")
		return nil
	}

	for _, e := range filtered {
		label, ok := categoryLabels[e.Category]
		if !ok {
			label = categoryLabels["other"]
		}
		fmt.Printf("%3d  %-10s  %-9s  ★%.1f (%d)  %s — %s\n",
			e.ID, e.Date, label, store.Average(e.Ratings), len(e.Ratings), e.Title, e.Location)
	}
	return nil
}

func runRate(ctx context.Context, events *store.Store, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: cityevents rate <event-id> <1-5>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad event id %q", args[0])
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad rating %q", args[1])
	}

	if _, err := events.Load(ctx); err != nil {
		return err
	}
	if err := events.Rate(ctx, id, rating); err != nil {
		return err
	}

	fmt.Println("Ačiū už įvertinimą!")
	return nil
}

func runPull(ctx context.Context, events *store.Store, args []string) error {
	fs := flag.NewFlagSet("pull", flag.ExitOnError)
	apiURL := fs.String("api", "http://localhost:5000", "base URL of the events API")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fetched, err := rest.NewClient(*apiURL).FetchEvents(ctx)
	if err != nil {
		return err
	}
	if err := events.Replace(ctx, fetched); err != nil {
		return err
	}

	fmt.Printf("Pulled %d events from %s\n", len(fetched), *apiURL)
	return nil
}

func dataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "cityevents")
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cityevents <list|rate|pull|reset> [flags]")
}
