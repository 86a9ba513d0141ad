package explorer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/aeexplorer/internal/store/memdb"
)

type OracleStore struct {
	base
	oracles *memdb.Keyed[string, *middleware.Oracle]
	queries *memdb.Grouped[string, middleware.OracleQuery]
}

func NewOracleStore(logger *logrus.Logger, fetcher Fetcher, notifier Notifier, opts ...memdb.Option) *OracleStore {
	return &OracleStore{
		base:    newBase("oracles", logger, fetcher, notifier),
		oracles: memdb.NewKeyed[string, *middleware.Oracle](opts...),
		queries: memdb.NewGrouped[string, middleware.OracleQuery](opts...),
	}
}

// GetOracles fetches one page of oracles and merges them by register transaction hash.
func (s *OracleStore) GetOracles(ctx context.Context, cfg Config, page, limit int) ([]*middleware.Oracle, error) {
	var oracles []*middleware.Oracle
	err := s.fetch(ctx, cfg, "GetOracles", middleware.OraclesPath, middleware.PageQuery(page, limit), &oracles)
	if err != nil {
		return nil, err
	}

	for _, oracle := range oracles {
		s.oracles.Upsert(ctx, oracle.TransactionHash, oracle)
	}
	mergedRecords.WithLabelValues(s.resource).Add(float64(len(oracles)))
	return oracles, nil
}

// GetOracleQueries fetches one page of queries sent to the oracle with the given id.
func (s *OracleStore) GetOracleQueries(ctx context.Context, cfg Config, id string, page, limit int) ([]middleware.OracleQuery, error) {
	var queries []middleware.OracleQuery
	err := s.fetch(ctx, cfg, "GetOracleQueries", middleware.OracleQueriesPath(id), middleware.PageQuery(page, limit), &queries)
	if err != nil {
		return nil, err
	}

	s.queries.Replace(ctx, id, queries)
	return queries, nil
}

func (s *OracleStore) Oracles(ctx context.Context) map[string]*middleware.Oracle {
	return s.oracles.All(ctx)
}

func (s *OracleStore) Queries(ctx context.Context, id string) ([]middleware.OracleQuery, bool) {
	return s.queries.Items(ctx, id)
}
