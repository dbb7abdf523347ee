/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
	"strings"

	"github.com/rs/xid"
)

// PlayerID is an opaque unique key assigned at registration time. It never
// changes for the lifetime of the tournament, even across save/load.
type PlayerID string

func newPlayerID() PlayerID {
	return PlayerID(xid.New().String())
}

const RatingUnrated = 0

// Player represents a participant in the tournament. Withdrawn players
// (Active == false) are excluded from future pairing but retain their
// history and remain visible in standings and the crosstable.
type Player struct {
	ID     PlayerID `json:"id"`
	Name   string   `json:"name"`
	Rating int      `json:"rating"`

	// optional contact/demographic data; the engine never interprets these
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dob,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Club        string `json:"club,omitempty"`
	Federation  string `json:"federation,omitempty"`

	Active bool `json:"active"`
}

// AddPlayer validates and registers a new player, assigning its id. The
// provided Player's ID and Active fields are ignored; new players are
// always active. Registration is only permitted before the first round
// has been paired.
func (t *Tournament) AddPlayer(p Player) (*Player, error) {
	if len(t.Rounds) > 0 {
		return nil, sequenceErrf("cannot add players after round 1 has been paired")
	}
	if err := t.validatePlayer(p, ""); err != nil {
		return nil, err
	}

	np := p
	np.ID = newPlayerID()
	np.Name = strings.TrimSpace(p.Name)
	np.Active = true
	t.players[np.ID] = &np

	return &np, nil
}

// RemovePlayer deletes a player from the registry entirely. Only permitted
// before the first round has been paired; once rounds reference a player,
// use SetActive to withdraw instead.
func (t *Tournament) RemovePlayer(id PlayerID) error {
	if len(t.Rounds) > 0 {
		return sequenceErrf("cannot remove players after round 1 has been paired; withdraw instead")
	}
	if _, ok := t.players[id]; !ok {
		return validationErrf("no such player %v", id)
	}
	delete(t.players, id)

	return nil
}

// SetActive withdraws (false) or reactivates (true) a player. Permitted at
// any time; it only affects future pairing and bye eligibility.
func (t *Tournament) SetActive(id PlayerID, active bool) error {
	p, ok := t.players[id]
	if !ok {
		return validationErrf("no such player %v", id)
	}
	p.Active = active

	return nil
}

// EditPlayer updates a player's mutable attributes. The id and active
// status carried in p are ignored.
func (t *Tournament) EditPlayer(id PlayerID, p Player) error {
	old, ok := t.players[id]
	if !ok {
		return validationErrf("no such player %v", id)
	}
	if err := t.validatePlayer(p, id); err != nil {
		return err
	}

	p.ID = id
	p.Name = strings.TrimSpace(p.Name)
	p.Active = old.Active
	*old = p

	return nil
}

func (t *Tournament) validatePlayer(p Player, self PlayerID) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return validationErrf("player name must not be empty")
	}
	if p.Rating < 0 {
		return validationErrf("player rating must not be negative (got %v)", p.Rating)
	}
	for id, existing := range t.players {
		if id != self && strings.EqualFold(existing.Name, name) {
			return validationErrf("a player named %q is already registered", existing.Name)
		}
	}

	return nil
}

// Player returns the registered player with the given id, if any.
func (t *Tournament) Player(id PlayerID) (*Player, bool) {
	p, ok := t.players[id]
	return p, ok
}

// PlayerByName returns the registered player with the given name
// (case-insensitive), if any.
func (t *Tournament) PlayerByName(name string) (*Player, bool) {
	for _, p := range t.players {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return nil, false
}

// Players returns all registered players, active and withdrawn, sorted by
// name.
func (t *Tournament) Players() []*Player {
	out := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out
}

func (t *Tournament) activePlayers() []*Player {
	var out []*Player
	for _, p := range t.players {
		if p.Active {
			out = append(out, p)
		}
	}

	return out
}
