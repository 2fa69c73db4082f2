package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/reviewpulse/reviewpulse/config"
	"github.com/reviewpulse/reviewpulse/internal/db"
	"github.com/reviewpulse/reviewpulse/internal/logging"
)

const usage = `usage: suggestctl <command> [flags]

commands:
  list        list suggestions, optionally filtered by status/category
  set-status  transition a suggestion and record the feedback
  summary     print the analytics summary
  archive     dump the review archive
`

func main() {
	config.LoadEnv(os.Getenv("APP_ENV"))
	logging.InitLogger()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	if err := db.InitDB(); err != nil {
		fmt.Fprintf(os.Stderr, "connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.CloseDB()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, os.Args[2:])
	case "set-status":
		err = runSetStatus(ctx, os.Args[2:])
	case "summary":
		err = runSummary(ctx)
	case "archive":
		err = runArchive(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	status := fs.String("status", "", "filter by status")
	category := fs.String("category", "", "filter by category")
	limit := fs.Int("limit", 20, "maximum rows")
	fs.Parse(args)

	if *status != "" && !db.ValidStatus(*status) {
		return fmt.Errorf("unknown status %q", *status)
	}

	suggestions, err := db.ListSuggestions(ctx, *status, *category, *limit)
	if err != nil {
		return err
	}

	for _, s := range suggestions {
		fmt.Printf("%s  [%s/%d]  %-12s  %s\n", s.ID, s.Priority, s.ImpactScore, s.Status, s.Title)
	}
	if len(suggestions) == 0 {
		fmt.Println("no suggestions found")
	}
	return nil
}

func runSetStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-status", flag.ExitOnError)
	id := fs.String("id", "", "suggestion id")
	status := fs.String("status", "", "new status")
	note := fs.String("note", "", "optional note")
	origin := fs.String("origin", "suggestctl", "who made the change")
	fs.Parse(args)

	if *id == "" || *status == "" {
		return fmt.Errorf("-id and -status are required")
	}

	updated, err := db.UpdateSuggestionStatus(ctx, *id, *status, *note, *origin)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("no suggestion with id %q", *id)
	}

	fmt.Printf("%s -> %s\n", *id, *status)
	return nil
}

func runSummary(ctx context.Context) error {
	summary, err := db.GetAnalyticsSummary(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func runArchive(ctx context.Context) error {
	db.InitDynamoDB()

	reviews, err := db.ScanArchivedReviews(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reviews)
}
