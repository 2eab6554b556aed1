package ratinglog

import (
	"errors"

	"github.com/afthonia/elo-dashboard/internal/domain/season"
)

// ErrSeasonUnavailable reports that a season's rating-log file could not
// be loaded. Distinct from a player simply having no rows in a loaded
// season.
var ErrSeasonUnavailable = errors.New("season rating log unavailable")

// Entry is one match in a player's rating progression. Numeric fields are
// pointers because the source files carry gaps; a nil pointer or empty
// string marks a missing cell.
type Entry struct {
	Season        season.Key `csv:"-"`
	Player        string     `csv:"Player"`
	Round         *int       `csv:"Round"`
	Date          string     `csv:"Date"`
	Venue         string     `csv:"Venue"`
	Opponent      string     `csv:"Opponent"`
	Score         string     `csv:"Score"`
	StartTime     string     `csv:"Start Time"`
	EndTime       string     `csv:"End Time"`
	MinutesPlayed *float64   `csv:"Minutes Played"`
	StartResult   string     `csv:"Start Result"`
	EndResult     string     `csv:"End Result"`
	MOTM          string     `csv:"MOTM"`
	Influence     *float64   `csv:"influence"`
	StartElo      *float64   `csv:"Start Elo"`
	RatingChange  *float64   `csv:"Rating Change"`
	EndElo        *float64   `csv:"End Elo"`
}

// Complete reports whether every retained column carries a value. Rows that
// fail this check are dropped from history views; the drop is policy, not
// an error.
func (e Entry) Complete() bool {
	if e.Round == nil || e.MinutesPlayed == nil || e.Influence == nil {
		return false
	}
	if e.StartElo == nil || e.RatingChange == nil || e.EndElo == nil {
		return false
	}
	for _, v := range []string{e.Date, e.Venue, e.Opponent, e.Score, e.StartTime, e.EndTime, e.StartResult, e.EndResult, e.MOTM} {
		if v == "" {
			return false
		}
	}
	return true
}
