package ratinglog

import (
	"context"

	"github.com/afthonia/elo-dashboard/internal/domain/season"
)

// Repository describes read access to per-match rating histories.
type Repository interface {
	// AllTimeByPlayer returns the player's entries across every season,
	// each tagged with its originating season key.
	AllTimeByPlayer(ctx context.Context, player string) ([]Entry, error)
	// SeasonByPlayer returns the player's entries for one season. The
	// season's log is loaded at most once for the process lifetime;
	// a missing season file yields ErrSeasonUnavailable.
	SeasonByPlayer(ctx context.Context, key season.Key, player string) ([]Entry, error)
}
