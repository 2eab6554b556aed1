package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/afthonia/elo-dashboard/internal/domain/ratinglog"
	"github.com/afthonia/elo-dashboard/internal/domain/season"
	"github.com/afthonia/elo-dashboard/internal/platform/logging"
)

// HistoryService serves a player's match-by-match rating progression for
// one season or across all seasons.
type HistoryService struct {
	logRepo       ratinglog.Repository
	defaultSeason season.Key
	logger        *logging.Logger
}

func NewHistoryService(logRepo ratinglog.Repository, defaultSeason season.Key, logger *logging.Logger) *HistoryService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &HistoryService{
		logRepo:       logRepo,
		defaultSeason: defaultSeason,
		logger:        logger,
	}
}

// MatchHistoryRow is one rendered match. Season is set only for the
// all-time view. Rating fields are rounded to two decimals.
type MatchHistoryRow struct {
	Season        string
	Round         int
	Date          string
	Venue         string
	Opponent      string
	Score         string
	StartTime     string
	EndTime       string
	MinutesPlayed float64
	StartResult   string
	EndResult     string
	MOTM          string
	Influence     float64
	StartElo      float64
	RatingChange  float64
	EndElo        float64
}

type HistoryResult struct {
	Player  string
	Season  season.Key
	Matches []MatchHistoryRow
}

func (s *HistoryService) Get(ctx context.Context, player, seasonKey string) (HistoryResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.Get")
	defer span.End()

	player = strings.TrimSpace(player)
	if player == "" {
		return HistoryResult{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	allTime := season.Key(seasonKey) == season.AllTime

	var (
		selected season.Key
		entries  []ratinglog.Entry
		err      error
	)
	if allTime {
		selected = season.AllTime
		entries, err = s.logRepo.AllTimeByPlayer(ctx, player)
	} else {
		selected = season.Resolve(season.Key(seasonKey), s.defaultSeason)
		entries, err = s.logRepo.SeasonByPlayer(ctx, selected, player)
	}
	if err != nil {
		if errors.Is(err, ratinglog.ErrSeasonUnavailable) {
			return HistoryResult{}, fmt.Errorf("%w: data for season %s not found", ErrSeasonUnavailable, selected)
		}
		return HistoryResult{}, fmt.Errorf("load rating log: %w", err)
	}

	// The empty check runs before incomplete rows are dropped: a player
	// whose rows all have gaps yields an empty table, not a not-found
	// condition.
	if len(entries) == 0 {
		if allTime {
			return HistoryResult{}, fmt.Errorf("%w: no game data found for player %s across all seasons", ErrNotFound, player)
		}
		return HistoryResult{}, fmt.Errorf("%w: no game data found for player %s in season %s", ErrNotFound, player, selected)
	}

	matches := make([]MatchHistoryRow, 0, len(entries))
	for _, e := range entries {
		if !e.Complete() {
			continue
		}
		row := MatchHistoryRow{
			Round:         *e.Round,
			Date:          e.Date,
			Venue:         e.Venue,
			Opponent:      e.Opponent,
			Score:         e.Score,
			StartTime:     e.StartTime,
			EndTime:       e.EndTime,
			MinutesPlayed: *e.MinutesPlayed,
			StartResult:   e.StartResult,
			EndResult:     e.EndResult,
			MOTM:          e.MOTM,
			Influence:     *e.Influence,
			StartElo:      round2(*e.StartElo),
			RatingChange:  round2(*e.RatingChange),
			EndElo:        round2(*e.EndElo),
		}
		if allTime {
			row.Season = string(e.Season)
		}
		matches = append(matches, row)
	}

	return HistoryResult{
		Player:  player,
		Season:  selected,
		Matches: matches,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
