package stats

import (
	"context"

	"github.com/afthonia/elo-dashboard/internal/domain/season"
)

// Repository describes read access to the loaded stat tables.
type Repository interface {
	// BySeason returns the stat table for the key: the cross-season
	// concatenation for season.AllTime, the configured default season's
	// table for an unrecognized key.
	BySeason(ctx context.Context, key season.Key) ([]Row, error)
	// ByPlayerNames returns every cross-season row whose player name
	// matches one of the given names exactly.
	ByPlayerNames(ctx context.Context, names []string) ([]Row, error)
	// SearchByName performs a case-insensitive substring match on player
	// names over the cross-season view.
	SearchByName(ctx context.Context, query string) ([]Row, error)
	// Teams and Positions list the distinct sorted values present in the
	// selected season's table.
	Teams(ctx context.Context, key season.Key) ([]string, error)
	Positions(ctx context.Context, key season.Key) ([]string, error)
	// PlayerNames lists every distinct player name across all seasons,
	// sorted.
	PlayerNames(ctx context.Context) ([]string, error)
	// Seasons lists the selectable season keys, AllTime first.
	Seasons() []season.Key
}
