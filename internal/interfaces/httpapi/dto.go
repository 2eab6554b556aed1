package httpapi

import (
	"github.com/afthonia/elo-dashboard/internal/domain/stats"
	"github.com/afthonia/elo-dashboard/internal/usecase"
)

type statRowDTO struct {
	Season      string  `json:"season"`
	Player      string  `json:"player"`
	Team        string  `json:"team"`
	Position    string  `json:"position"`
	GamesPlayed int     `json:"gamesPlayed"`
	AdjPPG      float64 `json:"adjPpg"`
	WinPct      float64 `json:"winPct"`
	EndElo      float64 `json:"endElo"`
	RelDelta    float64 `json:"relDelta"`
	EPG         float64 `json:"epg"`
	TeamRank    float64 `json:"teamRank"`
	MarketValue float64 `json:"marketValue"`
}

// searchDTO is present only when a search was requested; zero matches is an
// empty results list, not an absent block.
type searchDTO struct {
	Query   string       `json:"query"`
	Results []statRowDTO `json:"results"`
}

type listResponseDTO struct {
	Season      string       `json:"season"`
	Team        string       `json:"team,omitempty"`
	Position    string       `json:"position,omitempty"`
	PlayingTime string       `json:"playingTime"`
	Rows        []statRowDTO `json:"rows"`
	Teams       []string     `json:"teams"`
	Positions   []string     `json:"positions"`
	Seasons     []string     `json:"seasons"`
	Players     []string     `json:"players"`
	Search      *searchDTO   `json:"search,omitempty"`
}

type matchRowDTO struct {
	Season        string  `json:"season,omitempty"`
	Round         int     `json:"round"`
	Date          string  `json:"date"`
	Venue         string  `json:"venue"`
	Opponent      string  `json:"opponent"`
	Score         string  `json:"score"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	MinutesPlayed float64 `json:"minutesPlayed"`
	StartResult   string  `json:"startResult"`
	EndResult     string  `json:"endResult"`
	MOTM          string  `json:"motm"`
	Influence     float64 `json:"influence"`
	StartElo      float64 `json:"startElo"`
	RatingChange  float64 `json:"ratingChange"`
	EndElo        float64 `json:"endElo"`
}

type historyResponseDTO struct {
	Player  string        `json:"player"`
	Season  string        `json:"season"`
	Matches []matchRowDTO `json:"matches"`
}

type compareResponseDTO struct {
	Players []string `json:"players"`
	// Chart is a base64-encoded PNG suitable for an <img> data URL.
	Chart string `json:"chart"`
}

func statRowToDTO(row stats.Row) statRowDTO {
	return statRowDTO{
		Season:      string(row.Season),
		Player:      row.Player,
		Team:        row.Team,
		Position:    row.Position,
		GamesPlayed: row.GamesPlayed,
		AdjPPG:      row.AdjPPG,
		WinPct:      row.WinPct,
		EndElo:      row.EndElo,
		RelDelta:    row.RelDelta,
		EPG:         row.EPG,
		TeamRank:    row.TeamRank,
		MarketValue: row.MarketValue,
	}
}

func statRowsToDTO(rows []stats.Row) []statRowDTO {
	out := make([]statRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, statRowToDTO(row))
	}
	return out
}

func listResultToDTO(result usecase.ListResult) listResponseDTO {
	seasons := make([]string, 0, len(result.Seasons))
	for _, key := range result.Seasons {
		seasons = append(seasons, string(key))
	}

	dto := listResponseDTO{
		Season:      string(result.Season),
		Team:        result.Team,
		Position:    result.Position,
		PlayingTime: string(result.PlayingTime),
		Rows:        statRowsToDTO(result.Rows),
		Teams:       result.Teams,
		Positions:   result.Positions,
		Seasons:     seasons,
		Players:     result.Players,
	}
	if result.Search != nil {
		dto.Search = &searchDTO{
			Query:   result.Search.Query,
			Results: statRowsToDTO(result.Search.Rows),
		}
	}
	return dto
}

func historyResultToDTO(result usecase.HistoryResult) historyResponseDTO {
	matches := make([]matchRowDTO, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, matchRowDTO{
			Season:        m.Season,
			Round:         m.Round,
			Date:          m.Date,
			Venue:         m.Venue,
			Opponent:      m.Opponent,
			Score:         m.Score,
			StartTime:     m.StartTime,
			EndTime:       m.EndTime,
			MinutesPlayed: m.MinutesPlayed,
			StartResult:   m.StartResult,
			EndResult:     m.EndResult,
			MOTM:          m.MOTM,
			Influence:     m.Influence,
			StartElo:      m.StartElo,
			RatingChange:  m.RatingChange,
			EndElo:        m.EndElo,
		})
	}

	return historyResponseDTO{
		Player:  result.Player,
		Season:  string(result.Season),
		Matches: matches,
	}
}
