package explorer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/aeexplorer/internal/store/memdb"
)

type ChannelStore struct {
	base
	channels     *memdb.List[middleware.Channel]
	transactions *memdb.Grouped[string, *middleware.Transaction]
}

func NewChannelStore(logger *logrus.Logger, fetcher Fetcher, notifier Notifier, opts ...memdb.Option) *ChannelStore {
	return &ChannelStore{
		base:         newBase("channels", logger, fetcher, notifier),
		channels:     memdb.NewList[middleware.Channel](),
		transactions: memdb.NewGrouped[string, *middleware.Transaction](opts...),
	}
}

// GetChannels fetches the active channels and replaces the stored list with them.
func (s *ChannelStore) GetChannels(ctx context.Context, cfg Config) ([]middleware.Channel, error) {
	var channels []middleware.Channel
	err := s.fetch(ctx, cfg, "GetChannels", middleware.ActiveChannelsPath, nil, &channels)
	if err != nil {
		return nil, err
	}

	s.channels.Replace(ctx, channels)
	mergedRecords.WithLabelValues(s.resource).Add(float64(len(channels)))
	return channels, nil
}

// GetChannelTransactions fetches the transactions of the channel with the given id.
func (s *ChannelStore) GetChannelTransactions(ctx context.Context, cfg Config, id string) ([]*middleware.Transaction, error) {
	var txs []*middleware.Transaction
	err := s.fetch(ctx, cfg, "GetChannelTransactions", middleware.ChannelTransactionsPath(id), nil, &txs)
	if err != nil {
		return nil, err
	}

	s.transactions.Replace(ctx, id, txs)
	return txs, nil
}

func (s *ChannelStore) Channels(ctx context.Context) []middleware.Channel {
	return s.channels.Items(ctx)
}

func (s *ChannelStore) Transactions(ctx context.Context, id string) ([]*middleware.Transaction, bool) {
	return s.transactions.Items(ctx, id)
}
