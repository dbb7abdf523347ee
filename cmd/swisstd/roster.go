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

	"github.com/mikeb26/swisstd/csvio"
	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/swiss"
)

func handleAdd(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	file := fileFlag(fs)
	name := fs.String("name", "", "Player name")
	rating := fs.Int("rating", swiss.RatingUnrated, "Player rating (0 = unrated)")
	club := fs.String("club", "", "Club affiliation")
	federation := fs.String("federation", "", "Federation membership id")
	email := fs.String("email", "", "Contact email")
	phone := fs.String("phone", "", "Contact phone")
	dob := fs.String("dob", "", "Date of birth")
	gender := fs.String("gender", "", "Gender")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "Please provide a player --name.")
		fs.Usage()
		os.Exit(1)
	}

	tourney := loadTournament(*file)
	player, err := tourney.AddPlayer(swiss.Player{
		Name:        internal.NormalizeName(*name),
		Rating:      *rating,
		Club:        *club,
		Federation:  *federation,
		Email:       *email,
		Phone:       *phone,
		DateOfBirth: *dob,
		Gender:      *gender,
	})
	if err != nil {
		log.Fatalf("Error adding player: %v", err)
	}
	saveTournament(*file, tourney)
	fmt.Printf("Added %v (rating %v)\n", player.Name, ratingString(player.Rating))
}

func handleRemove(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	file := fileFlag(fs)
	name := fs.String("name", "", "Player name")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney, player := loadPlayer(*file, *name, fs)
	if err := tourney.RemovePlayer(player.ID); err != nil {
		log.Fatalf("Error removing %v: %v", player.Name, err)
	}
	saveTournament(*file, tourney)
	fmt.Printf("Removed %v\n", player.Name)
}

func handleWithdraw(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("withdraw", flag.ExitOnError)
	file := fileFlag(fs)
	name := fs.String("name", "", "Player name")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney, player := loadPlayer(*file, *name, fs)
	if err := tourney.SetActive(player.ID, false); err != nil {
		log.Fatalf("Error withdrawing %v: %v", player.Name, err)
	}
	saveTournament(*file, tourney)
	fmt.Printf("Withdrew %v from future rounds\n", player.Name)
}

func handleReactivate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("reactivate", flag.ExitOnError)
	file := fileFlag(fs)
	name := fs.String("name", "", "Player name")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney, player := loadPlayer(*file, *name, fs)
	if err := tourney.SetActive(player.ID, true); err != nil {
		log.Fatalf("Error reactivating %v: %v", player.Name, err)
	}
	saveTournament(*file, tourney)
	fmt.Printf("Reactivated %v\n", player.Name)
}

func handlePlayers(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("players", flag.ExitOnError)
	file := fileFlag(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney := loadTournament(*file)
	players := tourney.Players()
	if len(players) == 0 {
		fmt.Println("No players registered.")
		return
	}

	nameWidth := len("Name")
	for _, p := range players {
		if len(p.Name) > nameWidth {
			nameWidth = len(p.Name)
		}
	}
	fmt.Printf("%-*v  %7v  %v\n", nameWidth, "Name", "Rating", "Status")
	for _, p := range players {
		status := "active"
		if !p.Active {
			status = "withdrawn"
		}
		fmt.Printf("%-*v  %7v  %v\n", nameWidth, p.Name,
			ratingString(p.Rating), status)
	}
}

func handleImport(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fileFlag(fs)
	csvPath := fs.String("csv", "", "Roster CSV to import")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "Please provide a --csv path.")
		fs.Usage()
		os.Exit(1)
	}

	in, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Error opening %v: %v", *csvPath, err)
	}
	defer in.Close()

	imported, err := csvio.ImportPlayers(in)
	if err != nil {
		log.Fatalf("Error importing %v: %v", *csvPath, err)
	}

	tourney := loadTournament(*file)
	count := 0
	for _, p := range imported {
		wasActive := p.Active
		added, err := tourney.AddPlayer(p)
		if err != nil {
			log.Fatalf("Error adding %v: %v", p.Name, err)
		}
		if !wasActive {
			if err := tourney.SetActive(added.ID, false); err != nil {
				log.Fatalf("Error adding %v: %v", p.Name, err)
			}
		}
		count++
	}
	saveTournament(*file, tourney)
	fmt.Printf("Imported %v players from %v\n", count, *csvPath)
}

func handleExport(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	file := fileFlag(fs)
	csvPath := fs.String("csv", "", "Destination CSV path")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "Please provide a --csv path.")
		fs.Usage()
		os.Exit(1)
	}

	tourney := loadTournament(*file)
	out, err := os.Create(*csvPath)
	if err != nil {
		log.Fatalf("Error creating %v: %v", *csvPath, err)
	}
	defer out.Close()

	if err := csvio.ExportPlayers(out, tourney.Players()); err != nil {
		log.Fatalf("Error exporting to %v: %v", *csvPath, err)
	}
	fmt.Printf("Exported %v players to %v\n", len(tourney.Players()), *csvPath)
}

func loadPlayer(file, name string, fs *flag.FlagSet) (*swiss.Tournament, *swiss.Player) {
	if name == "" {
		fmt.Fprintln(os.Stderr, "Please provide a player --name.")
		fs.Usage()
		os.Exit(1)
	}
	tourney := loadTournament(file)
	player, ok := tourney.PlayerByName(name)
	if !ok {
		log.Fatalf("Error: no player named %q is registered", name)
	}
	return tourney, player
}

func ratingString(rating int) string {
	if rating == swiss.RatingUnrated {
		return "unrated"
	}
	return fmt.Sprintf("%v", rating)
}
