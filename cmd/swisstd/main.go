/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/store"
	"github.com/mikeb26/swisstd/swiss"
	"github.com/mikeb26/swisstd/updater"
)

//go:embed help.txt
var helpText string

// DefaultFile is the tournament file commands operate on when --file is
// not given.
const DefaultFile = "tournament.json"

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":       handleHelp,
	"new":        handleNew,
	"add":        handleAdd,
	"remove":     handleRemove,
	"withdraw":   handleWithdraw,
	"reactivate": handleReactivate,
	"players":    handlePlayers,
	"pair":       handlePair,
	"results":    handleResults,
	"undo":       handleUndo,
	"standings":  handleStandings,
	"crosstable": handleCrossTable,
	"status":     handleStatus,
	"set":        handleSet,
	"import":     handleImport,
	"export":     handleExport,
	"publish":    handlePublish,
	"version":    handleVersion,
	"update":     handleUpdate,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// fileFlag registers the shared --file option on a command's flag set.
func fileFlag(fs *flag.FlagSet) *string {
	return fs.String("file", DefaultFile, "Tournament file to operate on")
}

func loadTournament(path string) *swiss.Tournament {
	tourney, err := store.LoadFile(path)
	if err != nil {
		log.Fatalf("Error loading tournament from %v: %v", path, err)
	}
	return tourney
}

func saveTournament(path string, tourney *swiss.Tournament) {
	if err := store.SaveFile(path, tourney); err != nil {
		log.Fatalf("Error saving tournament to %v: %v", path, err)
	}
}

func parseTiebreaks(list string) []swiss.Tiebreak {
	var order []swiss.Tiebreak
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		order = append(order, swiss.Tiebreak(name))
	}
	return order
}

func handleNew(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	file := fileFlag(fs)
	name := fs.String("name", "", "Tournament name")
	rounds := fs.Int("rounds", 0, "Number of rounds")
	tiebreaks := fs.String("tiebreaks", "", "Comma separated tiebreak order")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "Please provide a tournament --name.")
		fs.Usage()
		os.Exit(1)
	}
	if _, err := os.Stat(*file); err == nil {
		log.Fatalf("Error: %v already exists; choose a different --file", *file)
	}

	tourney, err := swiss.NewTournament(*name, *rounds, parseTiebreaks(*tiebreaks))
	if err != nil {
		log.Fatalf("Error creating tournament: %v", err)
	}
	saveTournament(*file, tourney)
	fmt.Printf("Created %v round tournament %q in %v\n", *rounds, *name, *file)
}

func handleSet(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	file := fileFlag(fs)
	rounds := fs.Int("rounds", 0, "New round count")
	tiebreaks := fs.String("tiebreaks", "", "New comma separated tiebreak order")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *rounds == 0 && *tiebreaks == "" {
		fmt.Fprintln(os.Stderr, "Please provide --rounds and/or --tiebreaks.")
		fs.Usage()
		os.Exit(1)
	}

	tourney := loadTournament(*file)
	if *rounds != 0 {
		if err := tourney.SetNumRounds(*rounds); err != nil {
			log.Fatalf("Error setting round count: %v", err)
		}
	}
	if *tiebreaks != "" {
		if err := tourney.SetTiebreakOrder(parseTiebreaks(*tiebreaks)); err != nil {
			log.Fatalf("Error setting tiebreak order: %v", err)
		}
	}
	saveTournament(*file, tourney)
	fmt.Printf("Updated %v\n", *file)
}

func handleStatus(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	file := fileFlag(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney := loadTournament(*file)
	fmt.Printf("Tournament: %v\n", tourney.Name)
	fmt.Printf("Rounds: %v of %v paired\n", len(tourney.Rounds),
		tourney.Cfg.NumRounds)
	fmt.Printf("Status: %v\n", tourney.Status())
}

func handlePublish(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	file := fileFlag(fs)
	bucket := fs.String("bucket", internal.ArchiveBucket, "Archive S3 bucket")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Error reading tournament file %v: %v", *file, err)
	}
	// reject malformed files before they reach the archive
	tourney, err := store.Decode(data)
	if err != nil {
		log.Fatalf("Error decoding tournament file %v: %v", *file, err)
	}

	archive := store.NewArchive(ctx, *bucket)
	if err := archive.Init(); err != nil {
		log.Fatalf("Error initializing archive: %v", err)
	}
	if err := archive.Publish(tourney.Name, data); err != nil {
		log.Fatalf("Error publishing %v: %v", tourney.Name, err)
	}
	fmt.Printf("Published %q to s3://%v\n", tourney.Name, *bucket)
}

func handleVersion(ctx context.Context, args []string) {
	fmt.Printf("swisstd v%v\n", internal.Version)
}

func handleUpdate(ctx context.Context, args []string) {
	rel, newer, err := updater.NewChecker(internal.Version).Check(ctx)
	if err != nil {
		log.Fatalf("Error checking for updates: %v", err)
	}
	if !newer {
		fmt.Printf("swisstd v%v is up to date\n", internal.Version)
		return
	}
	fmt.Printf("swisstd %v is available (running v%v)\n", rel.Version,
		internal.Version)
	if rel.DownloadURL != "" {
		fmt.Printf("Download: %v\n", rel.DownloadURL)
	}
	if rel.Notes != "" {
		fmt.Printf("\n%v\n", rel.Notes)
	}
}
