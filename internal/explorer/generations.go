package explorer

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/aeexplorer/internal/store/memdb"
)

// DefaultWindowSize is the number of generations preloaded on start.
const DefaultWindowSize = 10

type GenerationStore struct {
	base
	generations  *memdb.Keyed[int64, *middleware.Generation]
	hashToHeight *memdb.Keyed[string, int64]

	mu          sync.Mutex
	lastFetched int64
	fetched     bool
}

func NewGenerationStore(logger *logrus.Logger, fetcher Fetcher, notifier Notifier, opts ...memdb.Option) *GenerationStore {
	return &GenerationStore{
		base:         newBase("generations", logger, fetcher, notifier),
		generations:  memdb.NewKeyed[int64, *middleware.Generation](opts...),
		hashToHeight: memdb.NewKeyed[string, int64](opts...),
	}
}

// GetLatestGenerations fetches the next window of at most maxBlocks generations below the
// previously fetched one, starting from the chain head on the first call.
func (s *GenerationStore) GetLatestGenerations(ctx context.Context, cfg Config, maxBlocks int64) (map[string]*middleware.Generation, error) {
	lastFetched, fetched := s.LastFetched()
	window, err := NextWindow(cfg.Height, lastFetched, fetched, maxBlocks)
	if err != nil {
		s.logger.WithContext(ctx).WithFields(logrus.Fields{
			"height":       cfg.Height,
			"last_fetched": lastFetched,
			"max_blocks":   maxBlocks,
		}).WithError(err).Warn("Cannot compute next generations window")
		s.fail()
		return nil, err
	}

	var generations middleware.Generations
	err = s.fetch(ctx, cfg, "GetLatestGenerations", middleware.GenerationsPath(window.Start, window.End), nil, &generations)
	if err != nil {
		return nil, err
	}

	s.setGenerations(ctx, generations.Data)
	s.setLastFetched(window.Start)
	return generations.Data, nil
}

// setGenerations keeps the first record seen for every height.
func (s *GenerationStore) setGenerations(ctx context.Context, generations map[string]*middleware.Generation) {
	var merged int
	for _, generation := range generations {
		if generation == nil {
			continue
		}
		if s.generations.Merge(ctx, generation.Height, generation) {
			s.hashToHeight.Upsert(ctx, generation.Hash, generation.Height)
			merged++
		}
	}
	mergedRecords.WithLabelValues(s.resource).Add(float64(merged))
}

func (s *GenerationStore) setLastFetched(start int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastFetched = start
	s.fetched = true
}

// LastFetched returns the start of the last fetched window, if any.
func (s *GenerationStore) LastFetched() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastFetched, s.fetched
}

func (s *GenerationStore) ByHeight(ctx context.Context, height int64) (*middleware.Generation, error) {
	return s.generations.Get(ctx, height)
}

func (s *GenerationStore) ByHash(ctx context.Context, hash string) (*middleware.Generation, error) {
	height, err := s.hashToHeight.Get(ctx, hash)
	if err != nil {
		return nil, err
	}
	return s.generations.Get(ctx, height)
}

// All returns the stored generations, highest first.
func (s *GenerationStore) All(ctx context.Context) []*middleware.Generation {
	all := s.generations.All(ctx)
	out := make([]*middleware.Generation, 0, len(all))
	for _, g := range all {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b *middleware.Generation) int {
		return cmp.Compare(b.Height, a.Height)
	})
	return out
}
