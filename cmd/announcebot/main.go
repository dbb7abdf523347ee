/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * announcebot posts a saved tournament's current pairings or standings
 * to a Discord channel. It is meant to be run by the TD after pairing a
 * round or recording results, e.g.:
 *
 *   SWISSTD_BOT_TOKEN=... announcebot --file club.json --channel <id> pairings
 */
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/swisstd/store"
	"github.com/mikeb26/swisstd/swiss"
)

const TokenEnvVar = "SWISSTD_BOT_TOKEN"

func main() {
	fs := flag.NewFlagSet("announcebot", flag.ExitOnError)
	file := fs.String("file", "tournament.json", "Tournament file to announce")
	channelID := fs.String("channel", "", "Discord channel ID to post to")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if *channelID == "" {
		fmt.Fprintln(os.Stderr, "Please provide a --channel ID.")
		fs.Usage()
		os.Exit(1)
	}
	what := fs.Arg(0)
	if what == "" {
		what = "pairings"
	}

	token := os.Getenv(TokenEnvVar)
	if token == "" {
		log.Fatalf("Error: %v is not set", TokenEnvVar)
	}

	tourney, err := store.LoadFile(*file)
	if err != nil {
		log.Fatalf("Error loading tournament from %v: %v", *file, err)
	}

	var content string
	switch what {
	case "pairings":
		rnd := tourney.CurrentRound()
		if rnd == nil {
			log.Fatalf("Error: %v has no paired rounds yet", tourney.Name)
		}
		content = swiss.BuildPairingsOutput(tourney, rnd)
	case "standings":
		content = swiss.BuildStandingsOutput(tourney)
	default:
		log.Fatalf("Error: unknown announcement %q (want pairings or standings)",
			what)
	}

	client, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	// Wrap output in code block for monospace formatting in Discord
	msg := fmt.Sprintf("```\n%s```", truncateContent(content))
	if _, err := client.ChannelMessageSend(*channelID, msg); err != nil {
		log.Fatalf("Error posting to channel %v: %v", *channelID, err)
	}

	fmt.Printf("Posted %v for %q to channel %v\n", what, tourney.Name,
		*channelID)
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
