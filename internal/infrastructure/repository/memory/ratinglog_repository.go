package memory

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/cockroachdb/errors"

	"github.com/afthonia/elo-dashboard/internal/domain/ratinglog"
	"github.com/afthonia/elo-dashboard/internal/domain/season"
	"github.com/afthonia/elo-dashboard/internal/platform/cache"
	"github.com/afthonia/elo-dashboard/internal/platform/logging"
	"github.com/afthonia/elo-dashboard/internal/platform/metrics"
)

// SeasonLogLoader fetches one season's rating log from its backing file.
type SeasonLogLoader func(ctx context.Context, key season.Key) ([]ratinglog.Entry, error)

// RatingLogRepository serves per-match rating histories. The cross-season
// view is built once from the eagerly loaded tables; per-season queries go
// through a fill-once cache so a season file is read at most once even
// under concurrent first requests.
type RatingLogRepository struct {
	byPlayer map[string][]ratinglog.Entry
	seasons  *cache.Store
	loader   SeasonLogLoader
	logger   *logging.Logger
	metrics  *metrics.Manager
}

func NewRatingLogRepository(
	initial map[season.Key][]ratinglog.Entry,
	loader SeasonLogLoader,
	logger *logging.Logger,
	m *metrics.Manager,
) *RatingLogRepository {
	if logger == nil {
		logger = logging.NewNop()
	}

	byPlayer := make(map[string][]ratinglog.Entry)
	seasons := cache.NewStore()
	ctx := context.Background()

	for _, key := range season.Known() {
		entries, ok := initial[key]
		if !ok {
			continue
		}
		cp := make([]ratinglog.Entry, len(entries))
		copy(cp, entries)
		for i := range cp {
			cp[i].Season = key
			byPlayer[cp[i].Player] = append(byPlayer[cp[i].Player], cp[i])
		}
		seasons.Set(ctx, string(key), cp)
	}

	return &RatingLogRepository{
		byPlayer: byPlayer,
		seasons:  seasons,
		loader:   loader,
		logger:   logger,
		metrics:  m,
	}
}

func (r *RatingLogRepository) AllTimeByPlayer(_ context.Context, player string) ([]ratinglog.Entry, error) {
	entries := r.byPlayer[player]
	out := make([]ratinglog.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *RatingLogRepository) SeasonByPlayer(ctx context.Context, key season.Key, player string) ([]ratinglog.Entry, error) {
	entries, err := r.seasonLog(ctx, key)
	if err != nil {
		return nil, err
	}

	out := make([]ratinglog.Entry, 0)
	for _, e := range entries {
		if e.Player == player {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *RatingLogRepository) seasonLog(ctx context.Context, key season.Key) ([]ratinglog.Entry, error) {
	v, err := r.seasons.GetOrLoad(ctx, string(key), func() (any, error) {
		if r.loader == nil {
			return nil, fmt.Errorf("%w: season %s", ratinglog.ErrSeasonUnavailable, key)
		}

		r.logger.InfoContext(ctx, "loading season rating log", "season", string(key))
		entries, err := r.loader(ctx, key)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: season %s", ratinglog.ErrSeasonUnavailable, key)
			}
			return nil, err
		}
		r.metrics.IncSeasonLogLoad()
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	entries, ok := v.([]ratinglog.Entry)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry type for season %s", key)
	}
	return entries, nil
}
