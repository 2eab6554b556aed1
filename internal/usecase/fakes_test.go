package usecase

import (
	"context"
	"strings"

	"github.com/afthonia/elo-dashboard/internal/domain/ratinglog"
	"github.com/afthonia/elo-dashboard/internal/domain/season"
	"github.com/afthonia/elo-dashboard/internal/domain/stats"
)

type fakeStatsRepo struct {
	bySeason  map[season.Key][]stats.Row
	allTime   []stats.Row
	teams     []string
	positions []string
	players   []string
	seasons   []season.Key

	searchQueries []string
}

func (f *fakeStatsRepo) BySeason(_ context.Context, key season.Key) ([]stats.Row, error) {
	if key == season.AllTime {
		return f.allTime, nil
	}
	return f.bySeason[key], nil
}

func (f *fakeStatsRepo) ByPlayerNames(_ context.Context, names []string) ([]stats.Row, error) {
	var out []stats.Row
	for _, row := range f.allTime {
		for _, name := range names {
			if row.Player == name {
				out = append(out, row)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStatsRepo) SearchByName(_ context.Context, query string) ([]stats.Row, error) {
	f.searchQueries = append(f.searchQueries, query)
	out := []stats.Row{}
	for _, row := range f.allTime {
		if strings.Contains(strings.ToLower(row.Player), strings.ToLower(query)) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStatsRepo) Teams(context.Context, season.Key) ([]string, error) {
	return f.teams, nil
}

func (f *fakeStatsRepo) Positions(context.Context, season.Key) ([]string, error) {
	return f.positions, nil
}

func (f *fakeStatsRepo) PlayerNames(context.Context) ([]string, error) {
	return f.players, nil
}

func (f *fakeStatsRepo) Seasons() []season.Key {
	return f.seasons
}

type fakeLogRepo struct {
	allTime  map[string][]ratinglog.Entry
	bySeason map[season.Key]map[string][]ratinglog.Entry
	missing  map[season.Key]bool
}

func (f *fakeLogRepo) AllTimeByPlayer(_ context.Context, player string) ([]ratinglog.Entry, error) {
	return f.allTime[player], nil
}

func (f *fakeLogRepo) SeasonByPlayer(_ context.Context, key season.Key, player string) ([]ratinglog.Entry, error) {
	if f.missing[key] {
		return nil, ratinglog.ErrSeasonUnavailable
	}
	return f.bySeason[key][player], nil
}
