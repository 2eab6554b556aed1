package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/afthonia/elo-dashboard/internal/domain/season"
	"github.com/afthonia/elo-dashboard/internal/domain/stats"
)

// StatsRepository serves the per-season stat tables and their cross-season
// concatenation. Tables are copied at construction and never mutated
// afterwards, so reads need no locking.
type StatsRepository struct {
	tables        map[season.Key][]stats.Row
	allTime       []stats.Row
	defaultSeason season.Key
	order         []season.Key
}

func NewStatsRepository(tables map[season.Key][]stats.Row, defaultSeason season.Key) *StatsRepository {
	owned := make(map[season.Key][]stats.Row, len(tables))
	order := make([]season.Key, 0, len(tables))
	total := 0

	for _, key := range season.Known() {
		rows, ok := tables[key]
		if !ok {
			continue
		}
		cp := make([]stats.Row, len(rows))
		copy(cp, rows)
		for i := range cp {
			cp[i].Season = key
		}
		owned[key] = cp
		order = append(order, key)
		total += len(cp)
	}

	allTime := make([]stats.Row, 0, total)
	for _, key := range order {
		allTime = append(allTime, owned[key]...)
	}

	return &StatsRepository{
		tables:        owned,
		allTime:       allTime,
		defaultSeason: defaultSeason,
		order:         order,
	}
}

func (r *StatsRepository) BySeason(_ context.Context, key season.Key) ([]stats.Row, error) {
	return copyRows(r.table(key)), nil
}

func (r *StatsRepository) ByPlayerNames(_ context.Context, names []string) ([]stats.Row, error) {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	out := make([]stats.Row, 0, len(names))
	for _, row := range r.allTime {
		if _, ok := wanted[row.Player]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *StatsRepository) SearchByName(_ context.Context, query string) ([]stats.Row, error) {
	needle := strings.ToLower(query)
	out := make([]stats.Row, 0)
	for _, row := range r.allTime {
		if strings.Contains(strings.ToLower(row.Player), needle) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *StatsRepository) Teams(_ context.Context, key season.Key) ([]string, error) {
	return distinctSorted(r.table(key), func(row stats.Row) string { return row.Team }), nil
}

func (r *StatsRepository) Positions(_ context.Context, key season.Key) ([]string, error) {
	return distinctSorted(r.table(key), func(row stats.Row) string { return row.Position }), nil
}

func (r *StatsRepository) PlayerNames(_ context.Context) ([]string, error) {
	return distinctSorted(r.allTime, func(row stats.Row) string { return row.Player }), nil
}

func (r *StatsRepository) Seasons() []season.Key {
	out := make([]season.Key, 0, len(r.order)+1)
	out = append(out, season.AllTime)
	out = append(out, r.order...)
	return out
}

// table resolves a key to its backing slice: AllTime to the concatenation,
// unrecognized keys to the default season's table.
func (r *StatsRepository) table(key season.Key) []stats.Row {
	if key == season.AllTime {
		return r.allTime
	}
	if rows, ok := r.tables[key]; ok {
		return rows
	}
	return r.tables[r.defaultSeason]
}

func copyRows(rows []stats.Row) []stats.Row {
	out := make([]stats.Row, len(rows))
	copy(out, rows)
	return out
}

func distinctSorted(rows []stats.Row, field func(stats.Row) string) []string {
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		v := field(row)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
