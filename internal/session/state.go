// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the per-browser session state of the deck builder,
// the pure transition function that gates the workflow on it and a signed
// cookie store that carries it between requests.
package session

// Key names one of the three session fields.
type Key string

const (
	KeyUsername Key = "sessionUsername"
	KeyCard     Key = "sessionCard"
	KeyDeckName Key = "sessionDeckName"
)

// State is the session of a single browser. An empty field means the key
// is absent. Fields may reference cards or decks removed since they were
// set; nothing re-validates them.
type State struct {
	Username string
	Card     string
	DeckName string
}

// Stage is the workflow stage derived from which keys are present.
type Stage int

const (
	StageAnonymous Stage = iota
	StageNoDeck
	StageActiveDeck
)

func (s Stage) String() string {
	switch s {
	case StageAnonymous:
		return "anonymous"
	case StageNoDeck:
		return "no_deck"
	case StageActiveDeck:
		return "active_deck"
	default:
		return "unknown"
	}
}

// Get returns the value stored under key, or "" when it is absent or key is
// not recognized.
func (s State) Get(key Key) string {
	switch key {
	case KeyUsername:
		return s.Username
	case KeyCard:
		return s.Card
	case KeyDeckName:
		return s.DeckName
	default:
		return ""
	}
}

// Set stores value under key. Setting "" removes the key. Unknown keys are
// ignored.
func (s *State) Set(key Key, value string) {
	switch key {
	case KeyUsername:
		s.Username = value
	case KeyCard:
		s.Card = value
	case KeyDeckName:
		s.DeckName = value
	}
}

func (s State) Has(key Key) bool {
	return s.Get(key) != ""
}

// Clear removes every key, de-authenticating the session.
func (s *State) Clear() {
	*s = State{}
}

func (s State) IsZero() bool {
	return s == State{}
}

// Stage reports the workflow stage of the session.
// A deck name without a username still counts as anonymous.
func (s State) Stage() Stage {
	switch {
	case !s.Has(KeyUsername):
		return StageAnonymous
	case !s.Has(KeyDeckName):
		return StageNoDeck
	default:
		return StageActiveDeck
	}
}
