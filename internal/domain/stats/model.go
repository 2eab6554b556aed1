package stats

import "github.com/afthonia/elo-dashboard/internal/domain/season"

// Row is one player-season summary record. Rows are unique by (player,
// season) in practice, with one row per team when a player transferred
// mid-season; the store treats them as independent records either way.
type Row struct {
	Season      season.Key `csv:"-"`
	Player      string     `csv:"Player"`
	Team        string     `csv:"Team"`
	Position    string     `csv:"Pos"`
	GamesPlayed int        `csv:"GP"`
	AdjPPG      float64    `csv:"AdjPPG"`
	WinPct      float64    `csv:"Win_pct"`
	EndElo      float64    `csv:"End Elo"`
	RelDelta    float64    `csv:"relDelta"`
	EPG         float64    `csv:"EPG"`
	TeamRank    float64    `csv:"teamRank"`
	MarketValue float64    `csv:"Market Value"`
}

// Metric is one of the statistics plotted on the comparison chart.
type Metric struct {
	Name  string
	Value func(Row) float64
}

// TrackedMetrics returns the seven comparison statistics in panel order.
func TrackedMetrics() []Metric {
	return []Metric{
		{Name: "AdjPPG", Value: func(r Row) float64 { return r.AdjPPG }},
		{Name: "Win_pct", Value: func(r Row) float64 { return r.WinPct }},
		{Name: "End Elo", Value: func(r Row) float64 { return r.EndElo }},
		{Name: "relDelta", Value: func(r Row) float64 { return r.RelDelta }},
		{Name: "EPG", Value: func(r Row) float64 { return r.EPG }},
		{Name: "teamRank", Value: func(r Row) float64 { return r.TeamRank }},
		{Name: "Market Value", Value: func(r Row) float64 { return r.MarketValue }},
	}
}
