/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mikeb26/swisstd/swiss"
)

func handlePair(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("pair", flag.ExitOnError)
	file := fileFlag(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney := loadTournament(*file)
	rnd, err := tourney.PairNextRound()
	if err != nil {
		log.Fatalf("Error pairing next round: %v", err)
	}
	saveTournament(*file, tourney)
	fmt.Print(swiss.BuildPairingsOutput(tourney, rnd))
}

func handleResults(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("results", flag.ExitOnError)
	file := fileFlag(fs)
	round := fs.Int("round", 0, "Round number the results are for")
	results := fs.String("results", "",
		"Comma separated results in board order, e.g. \"1-0,1/2-1/2,bye\"")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *round <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid --round number.")
		fs.Usage()
		os.Exit(1)
	}
	if *results == "" {
		fmt.Fprintln(os.Stderr, "Please provide --results.")
		fs.Usage()
		os.Exit(1)
	}

	var outcomes []swiss.Outcome
	for _, s := range strings.Split(*results, ",") {
		o, err := swiss.ParseOutcome(strings.TrimSpace(s))
		if err != nil {
			log.Fatalf("Error parsing results: %v", err)
		}
		outcomes = append(outcomes, o)
	}

	tourney := loadTournament(*file)
	if err := tourney.RecordResults(*round, outcomes); err != nil {
		log.Fatalf("Error recording round %v results: %v", *round, err)
	}
	saveTournament(*file, tourney)
	fmt.Printf("Recorded round %v results\n\n", *round)
	fmt.Print(swiss.BuildStandingsOutput(tourney))
}

func handleUndo(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("undo", flag.ExitOnError)
	file := fileFlag(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney := loadTournament(*file)
	rnd := tourney.CurrentRound()
	if err := tourney.UndoLastRound(); err != nil {
		log.Fatalf("Error undoing last round: %v", err)
	}
	saveTournament(*file, tourney)
	fmt.Printf("Reverted round %v to awaiting results\n", rnd.Num)
}

func handleStandings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("standings", flag.ExitOnError)
	file := fileFlag(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney := loadTournament(*file)
	fmt.Print(swiss.BuildStandingsOutput(tourney))
}

func handleCrossTable(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("crosstable", flag.ExitOnError)
	file := fileFlag(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney := loadTournament(*file)
	fmt.Print(swiss.BuildCrosstableOutput(tourney))
}
