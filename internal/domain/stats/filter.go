package stats

// PlayingTimePolicy selects players by minimum participation.
type PlayingTimePolicy string

const (
	// PlayingTimeAll keeps every row.
	PlayingTimeAll PlayingTimePolicy = "all"
	// PlayingTimeHalfSeason keeps rows whose games played reach half of the
	// maximum games played in the table being filtered.
	PlayingTimeHalfSeason PlayingTimePolicy = "half_season"
	// PlayingTimeMinFiveGames keeps rows with at least five games played.
	PlayingTimeMinFiveGames PlayingTimePolicy = "min_5_games"
)

const minGamesThreshold = 5

// ParsePlayingTimePolicy normalizes a form value to a policy. An empty or
// unrecognized value means no playing-time filtering.
func ParsePlayingTimePolicy(v string) PlayingTimePolicy {
	switch v {
	case string(PlayingTimeHalfSeason), "50_percent":
		return PlayingTimeHalfSeason
	case string(PlayingTimeMinFiveGames), "5_games":
		return PlayingTimeMinFiveGames
	default:
		return PlayingTimeAll
	}
}

// Filter narrows a stat table. Stages apply in a fixed order:
// team, then position, then playing time. The half-season threshold is
// computed from the rows remaining after the team and position stages,
// so the denominator follows the narrowed table, not the full season.
type Filter struct {
	Team        string
	Position    string
	PlayingTime PlayingTimePolicy
}

// Apply returns the matching rows as a new slice. The input is never
// mutated.
func (f Filter) Apply(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f.Team != "" && r.Team != f.Team {
			continue
		}
		if f.Position != "" && r.Position != f.Position {
			continue
		}
		out = append(out, r)
	}

	switch f.PlayingTime {
	case PlayingTimeHalfSeason:
		threshold := 0.5 * float64(maxGamesPlayed(out))
		out = keepMinGames(out, threshold)
	case PlayingTimeMinFiveGames:
		out = keepMinGames(out, minGamesThreshold)
	}

	return out
}

func maxGamesPlayed(rows []Row) int {
	max := 0
	for _, r := range rows {
		if r.GamesPlayed > max {
			max = r.GamesPlayed
		}
	}
	return max
}

func keepMinGames(rows []Row, threshold float64) []Row {
	out := rows[:0:0]
	for _, r := range rows {
		if float64(r.GamesPlayed) >= threshold {
			out = append(out, r)
		}
	}
	return out
}
