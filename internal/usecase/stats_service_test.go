package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afthonia/elo-dashboard/internal/domain/season"
	"github.com/afthonia/elo-dashboard/internal/domain/stats"
)

func newListRepo() *fakeStatsRepo {
	current := []stats.Row{
		{Season: season.S2024, Player: "Bukayo Saka", Team: "Arsenal", Position: "FW", GamesPlayed: 30, AdjPPG: 2.3},
		{Season: season.S2024, Player: "Cole Palmer", Team: "Chelsea", Position: "MF", GamesPlayed: 34, AdjPPG: 2.0},
		{Season: season.S2024, Player: "Josko Gvardiol", Team: "Man City", Position: "DF", GamesPlayed: 12, AdjPPG: 2.1},
	}
	previous := []stats.Row{
		{Season: season.S2023, Player: "Bukayo Saka", Team: "Arsenal", Position: "FW", GamesPlayed: 35, AdjPPG: 2.2},
	}
	return &fakeStatsRepo{
		bySeason: map[season.Key][]stats.Row{
			season.S2024: current,
			season.S2023: previous,
		},
		allTime:   append(append([]stats.Row{}, previous...), current...),
		teams:     []string{"Arsenal", "Chelsea", "Man City"},
		positions: []string{"DF", "FW", "MF"},
		players:   []string{"Bukayo Saka", "Cole Palmer", "Josko Gvardiol"},
		seasons:   []season.Key{season.AllTime, season.S2023, season.S2024},
	}
}

func TestStatsService_List_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(newListRepo(), season.S2024, nil)

	result, err := svc.List(context.Background(), ListInput{})
	require.NoError(t, err)

	assert.Equal(t, season.S2024, result.Season)
	assert.Len(t, result.Rows, 3)
	assert.Equal(t, stats.PlayingTimeAll, result.PlayingTime)
	assert.Nil(t, result.Search)
	assert.Equal(t, []string{"Arsenal", "Chelsea", "Man City"}, result.Teams)
	assert.Equal(t, []season.Key{season.AllTime, season.S2023, season.S2024}, result.Seasons)
}

func TestStatsService_List_UnknownSeasonFallsBackSilently(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(newListRepo(), season.S2024, nil)

	result, err := svc.List(context.Background(), ListInput{Season: "1999/2000"})
	require.NoError(t, err)
	assert.Equal(t, season.S2024, result.Season)
	assert.Len(t, result.Rows, 3)
}

func TestStatsService_List_FiltersApply(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(newListRepo(), season.S2024, nil)

	result, err := svc.List(context.Background(), ListInput{
		Team:        "Arsenal",
		PlayingTime: "half_season",
	})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Bukayo Saka", result.Rows[0].Player)

	// Dropdown facets still reflect the season's full table.
	assert.Equal(t, []string{"Arsenal", "Chelsea", "Man City"}, result.Teams)
	assert.Equal(t, []string{"DF", "FW", "MF"}, result.Positions)
}

func TestStatsService_List_SearchDistinguishesAbsentFromEmpty(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(newListRepo(), season.S2024, nil)
	ctx := context.Background()

	noSearch, err := svc.List(ctx, ListInput{})
	require.NoError(t, err)
	assert.Nil(t, noSearch.Search)

	matched, err := svc.List(ctx, ListInput{Search: "saka"})
	require.NoError(t, err)
	require.NotNil(t, matched.Search)
	assert.Equal(t, "saka", matched.Search.Query)
	require.Len(t, matched.Search.Rows, 2)

	unmatched, err := svc.List(ctx, ListInput{Search: "zzz"})
	require.NoError(t, err)
	require.NotNil(t, unmatched.Search)
	assert.NotNil(t, unmatched.Search.Rows)
	assert.Empty(t, unmatched.Search.Rows)
}

func TestStatsService_List_BlankSearchIsNoSearch(t *testing.T) {
	t.Parallel()

	repo := newListRepo()
	svc := NewStatsService(repo, season.S2024, nil)

	result, err := svc.List(context.Background(), ListInput{Search: "   "})
	require.NoError(t, err)
	assert.Nil(t, result.Search)
	assert.Empty(t, repo.searchQueries)
}

func TestStatsService_List_ResetDiscardsEverySelection(t *testing.T) {
	t.Parallel()

	svc := NewStatsService(newListRepo(), season.S2024, nil)

	result, err := svc.List(context.Background(), ListInput{
		Season:      string(season.S2023),
		Team:        "Arsenal",
		Position:    "FW",
		PlayingTime: "min_5_games",
		Search:      "saka",
		Reset:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, season.S2024, result.Season)
	assert.Empty(t, result.Team)
	assert.Empty(t, result.Position)
	assert.Equal(t, stats.PlayingTimeAll, result.PlayingTime)
	assert.Nil(t, result.Search)
	assert.Len(t, result.Rows, 3)
}
