package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	// ErrSeasonUnavailable reports a season whose rating-log file could not
	// be loaded; distinct from ErrNotFound for a player with no rows.
	ErrSeasonUnavailable = errors.New("season data unavailable")
	// ErrNoPlayersSupplied and ErrNoMatchingPlayers are the two comparison
	// outcomes: an empty request versus names that match nothing.
	ErrNoPlayersSupplied = errors.New("no players supplied")
	ErrNoMatchingPlayers = errors.New("no matching players")
)
