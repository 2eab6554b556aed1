// Package dataset loads the per-season CSV files the dashboard serves.
// Two file families exist under one data directory: player-season summary
// stats (stats_PL_<season>.csv) and per-match Elo rating logs
// (elo_PL_<season>.csv).
package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gocarina/gocsv"
	"github.com/sourcegraph/conc/pool"

	"github.com/afthonia/elo-dashboard/internal/domain/ratinglog"
	"github.com/afthonia/elo-dashboard/internal/domain/season"
	"github.com/afthonia/elo-dashboard/internal/domain/stats"
	"github.com/afthonia/elo-dashboard/internal/platform/logging"
	"github.com/afthonia/elo-dashboard/internal/platform/metrics"
)

const maxParallelLoads = 4

// Tables holds everything loaded at startup, keyed by season.
type Tables struct {
	Stats map[season.Key][]stats.Row
	Logs  map[season.Key][]ratinglog.Entry
}

type Loader struct {
	dir     string
	logger  *logging.Logger
	metrics *metrics.Manager
}

func NewLoader(dir string, logger *logging.Logger, m *metrics.Manager) *Loader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Loader{
		dir:     dir,
		logger:  logger,
		metrics: m,
	}
}

// LoadAll loads both file families for every known season. Any missing or
// malformed file fails the whole load; the error names the file.
func (l *Loader) LoadAll(ctx context.Context) (Tables, error) {
	started := time.Now()

	tables := Tables{
		Stats: make(map[season.Key][]stats.Row),
		Logs:  make(map[season.Key][]ratinglog.Entry),
	}

	var mu sync.Mutex
	p := pool.New().WithErrors().WithMaxGoroutines(maxParallelLoads)
	for _, key := range season.Known() {
		key := key
		p.Go(func() error {
			rows, err := l.StatsTable(ctx, key)
			if err != nil {
				return err
			}
			mu.Lock()
			tables.Stats[key] = rows
			mu.Unlock()
			return nil
		})
		p.Go(func() error {
			entries, err := l.RatingLog(ctx, key)
			if err != nil {
				return err
			}
			mu.Lock()
			tables.Logs[key] = entries
			mu.Unlock()
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Tables{}, err
	}

	l.logger.InfoContext(ctx, "season tables loaded",
		"seasons", len(season.Known()),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return tables, nil
}

// StatsTable loads one season's summary stat table, tagging every row with
// the season key.
func (l *Loader) StatsTable(_ context.Context, key season.Key) ([]stats.Row, error) {
	started := time.Now()
	path := filepath.Join(l.dir, "stats_PL_"+key.FileToken()+".csv")

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open stats table for season %s", key)
	}
	defer f.Close()

	var rows []stats.Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, errors.Wrapf(err, "decode stats table %s", path)
	}

	for i := range rows {
		rows[i].Season = key
	}

	l.metrics.ObserveDatasetLoad("stats", time.Since(started))
	return rows, nil
}

// RatingLog loads one season's per-match rating log, tagging every entry
// with the season key. A missing file keeps fs.ErrNotExist in the chain so
// callers can surface a "season data unavailable" condition.
func (l *Loader) RatingLog(_ context.Context, key season.Key) ([]ratinglog.Entry, error) {
	started := time.Now()
	path := filepath.Join(l.dir, "elo_PL_"+key.FileToken()+".csv")

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open rating log for season %s", key)
	}
	defer f.Close()

	var entries []ratinglog.Entry
	if err := gocsv.UnmarshalFile(f, &entries); err != nil {
		return nil, errors.Wrapf(err, "decode rating log %s", path)
	}

	for i := range entries {
		entries[i].Season = key
	}

	l.metrics.ObserveDatasetLoad("ratinglog", time.Since(started))
	return entries, nil
}
