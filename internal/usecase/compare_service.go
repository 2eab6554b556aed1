package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/afthonia/elo-dashboard/internal/domain/season"
	"github.com/afthonia/elo-dashboard/internal/domain/stats"
	"github.com/afthonia/elo-dashboard/internal/platform/chart"
	"github.com/afthonia/elo-dashboard/internal/platform/logging"
)

// ChartRenderer renders a comparison grid to PNG bytes.
type ChartRenderer interface {
	RenderGrid(ctx context.Context, in chart.Input) ([]byte, error)
}

// CompareService builds the multi-panel comparison chart for a free-text
// list of player names.
type CompareService struct {
	statsRepo stats.Repository
	renderer  ChartRenderer
	logger    *logging.Logger
}

func NewCompareService(statsRepo stats.Repository, renderer ChartRenderer, logger *logging.Logger) *CompareService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &CompareService{
		statsRepo: statsRepo,
		renderer:  renderer,
		logger:    logger,
	}
}

type CompareResult struct {
	Players []string
	// ChartPNG is the rendered grid, base64-encoded for inline embedding.
	ChartPNG string
}

// Compare parses a comma-separated player list and renders one panel per
// tracked statistic, one line per player. Names absent from the data
// contribute no line and raise no error; only an entirely unmatched list
// does.
func (s *CompareService) Compare(ctx context.Context, playersInput string) (CompareResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompareService.Compare")
	defer span.End()

	players := splitPlayerList(playersInput)
	if len(players) == 0 {
		return CompareResult{}, fmt.Errorf("%w: enter at least one player name", ErrNoPlayersSupplied)
	}

	rows, err := s.statsRepo.ByPlayerNames(ctx, players)
	if err != nil {
		return CompareResult{}, fmt.Errorf("load comparison rows: %w", err)
	}
	if len(rows) == 0 {
		return CompareResult{}, fmt.Errorf("%w: check the names and try again", ErrNoMatchingPlayers)
	}

	png, err := s.renderer.RenderGrid(ctx, buildChartInput(players, rows))
	if err != nil {
		return CompareResult{}, fmt.Errorf("render comparison chart: %w", err)
	}

	return CompareResult{
		Players:  players,
		ChartPNG: base64.StdEncoding.EncodeToString(png),
	}, nil
}

func splitPlayerList(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// buildChartInput lays out one panel per tracked metric. Each player's
// points follow canonical season order regardless of row order in the
// source tables.
func buildChartInput(players []string, rows []stats.Row) chart.Input {
	seasons := season.Known()
	seasonIndex := make(map[season.Key]int, len(seasons))
	labels := make([]string, len(seasons))
	for i, key := range seasons {
		seasonIndex[key] = i
		labels[i] = string(key)
	}

	rowsByPlayer := make(map[string][]stats.Row, len(players))
	for _, row := range rows {
		rowsByPlayer[row.Player] = append(rowsByPlayer[row.Player], row)
	}

	metrics := stats.TrackedMetrics()
	panels := make([]chart.Panel, 0, len(metrics))
	for _, metric := range metrics {
		panel := chart.Panel{Title: metric.Name}
		for _, player := range players {
			playerRows := rowsByPlayer[player]
			if len(playerRows) == 0 {
				continue
			}
			points := make([]chart.Point, 0, len(playerRows))
			for _, row := range playerRows {
				points = append(points, chart.Point{
					SeasonIndex: seasonIndex[row.Season],
					Value:       metric.Value(row),
				})
			}
			sort.SliceStable(points, func(i, j int) bool {
				return points[i].SeasonIndex < points[j].SeasonIndex
			})
			panel.Lines = append(panel.Lines, chart.Line{Label: player, Points: points})
		}
		panels = append(panels, panel)
	}

	return chart.Input{
		SeasonLabels: labels,
		Panels:       panels,
	}
}
