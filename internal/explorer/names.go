package explorer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/aeexplorer/internal/store/memdb"
)

type NameStore struct {
	base
	names *memdb.Keyed[middleware.Key, *middleware.Name]
}

func NewNameStore(logger *logrus.Logger, fetcher Fetcher, notifier Notifier, opts ...memdb.Option) *NameStore {
	return &NameStore{
		base:  newBase("names", logger, fetcher, notifier),
		names: memdb.NewKeyed[middleware.Key, *middleware.Name](opts...),
	}
}

// GetNames fetches one page of name registrations and merges them by id.
func (s *NameStore) GetNames(ctx context.Context, cfg Config, page, limit int) ([]*middleware.Name, error) {
	var names []*middleware.Name
	err := s.fetch(ctx, cfg, "GetNames", middleware.NamesPath, middleware.PageQuery(page, limit), &names)
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		s.names.Upsert(ctx, name.ID, name)
	}
	mergedRecords.WithLabelValues(s.resource).Add(float64(len(names)))
	return names, nil
}

func (s *NameStore) Names(ctx context.Context) map[middleware.Key]*middleware.Name {
	return s.names.All(ctx)
}
