package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/afthonia/elo-dashboard/internal/domain/season"
	"github.com/afthonia/elo-dashboard/internal/domain/stats"
	"github.com/afthonia/elo-dashboard/internal/platform/logging"
)

// StatsService backs the listing page: season selection, filtering and
// player search, plus the distinct-value lists that populate the
// selection controls.
type StatsService struct {
	statsRepo     stats.Repository
	defaultSeason season.Key
	logger        *logging.Logger
}

func NewStatsService(statsRepo stats.Repository, defaultSeason season.Key, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StatsService{
		statsRepo:     statsRepo,
		defaultSeason: defaultSeason,
		logger:        logger,
	}
}

// ListInput carries the raw filter selections. Reset discards every other
// field and restores the defaults.
type ListInput struct {
	Season      string
	Team        string
	Position    string
	PlayingTime string
	Search      string
	Reset       bool
}

// SearchResult distinguishes "search performed" from "search not
// requested": a ListResult carries a nil *SearchResult when no query was
// given, and a zero-row SearchResult when a query matched nothing.
type SearchResult struct {
	Query string
	Rows  []stats.Row
}

type ListResult struct {
	Season      season.Key
	Team        string
	Position    string
	PlayingTime stats.PlayingTimePolicy
	Rows        []stats.Row
	Teams       []string
	Positions   []string
	Seasons     []season.Key
	Players     []string
	Search      *SearchResult
}

func (s *StatsService) List(ctx context.Context, in ListInput) (ListResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.List")
	defer span.End()

	if in.Reset {
		in = ListInput{Season: string(s.defaultSeason)}
	}

	selected := season.Resolve(season.Key(in.Season), s.defaultSeason)
	filter := stats.Filter{
		Team:        strings.TrimSpace(in.Team),
		Position:    strings.TrimSpace(in.Position),
		PlayingTime: stats.ParsePlayingTimePolicy(in.PlayingTime),
	}

	rows, err := s.statsRepo.BySeason(ctx, selected)
	if err != nil {
		return ListResult{}, fmt.Errorf("load season table: %w", err)
	}

	result := ListResult{
		Season:      selected,
		Team:        filter.Team,
		Position:    filter.Position,
		PlayingTime: filter.PlayingTime,
		Rows:        filter.Apply(rows),
		Seasons:     s.statsRepo.Seasons(),
	}

	// Dropdowns reflect the selected season's full table, not the
	// filtered rows.
	if result.Teams, err = s.statsRepo.Teams(ctx, selected); err != nil {
		return ListResult{}, fmt.Errorf("list teams: %w", err)
	}
	if result.Positions, err = s.statsRepo.Positions(ctx, selected); err != nil {
		return ListResult{}, fmt.Errorf("list positions: %w", err)
	}
	if result.Players, err = s.statsRepo.PlayerNames(ctx); err != nil {
		return ListResult{}, fmt.Errorf("list player names: %w", err)
	}

	query := strings.TrimSpace(in.Search)
	if query != "" {
		matches, err := s.statsRepo.SearchByName(ctx, query)
		if err != nil {
			return ListResult{}, fmt.Errorf("search players: %w", err)
		}
		result.Search = &SearchResult{Query: query, Rows: matches}
	}

	return result, nil
}
