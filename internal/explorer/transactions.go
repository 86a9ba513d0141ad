package explorer

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/aeexplorer/internal/store/memdb"
)

type TransactionStore struct {
	base
	transactions *memdb.Keyed[string, *middleware.Transaction]
	lastPage     atomic.Int64
}

func NewTransactionStore(logger *logrus.Logger, fetcher Fetcher, notifier Notifier, opts ...memdb.Option) *TransactionStore {
	return &TransactionStore{
		base:         newBase("transactions", logger, fetcher, notifier),
		transactions: memdb.NewKeyed[string, *middleware.Transaction](opts...),
	}
}

// GetLatestTransactions fetches the page after the last fetched one from the interval
// ending at the current height and merges it by hash.
func (s *TransactionStore) GetLatestTransactions(ctx context.Context, cfg Config, limit int) ([]*middleware.Transaction, error) {
	page := s.lastPage.Load() + 1

	var txPage middleware.TransactionPage
	query := middleware.PageQuery(int(page), limit)
	err := s.fetch(ctx, cfg, "GetLatestTransactions", middleware.TransactionsIntervalPath(cfg.Height), query, &txPage)
	if err != nil {
		return nil, err
	}

	s.setTransactions(ctx, txPage.Transactions)
	s.lastPage.Store(page)
	return txPage.Transactions, nil
}

// GetTxByType fetches one page of transactions of the given type. Results are not stored.
func (s *TransactionStore) GetTxByType(ctx context.Context, cfg Config, page, limit int, txType string) ([]*middleware.Transaction, error) {
	var txPage middleware.TransactionPage
	query := middleware.PageQuery(page, limit)
	query.Set("txtype", txType)
	err := s.fetch(ctx, cfg, "GetTxByType", middleware.TransactionsIntervalPath(cfg.Height), query, &txPage)
	if err != nil {
		return nil, err
	}

	return txPage.Transactions, nil
}

// GetTransactionByHash fetches a single transaction from the node and merges it.
func (s *TransactionStore) GetTransactionByHash(ctx context.Context, cfg Config, hash string) (*middleware.Transaction, error) {
	var tx middleware.Transaction
	err := s.fetch(ctx, cfg, "GetTransactionByHash", middleware.TransactionPath(hash), nil, &tx)
	if err != nil {
		return nil, err
	}

	s.setTransactions(ctx, []*middleware.Transaction{&tx})
	return &tx, nil
}

// GetTransactionsByAccount fetches one page of transactions of an account. Results are not stored.
func (s *TransactionStore) GetTransactionsByAccount(ctx context.Context, cfg Config, address string, page, limit int) ([]*middleware.Transaction, error) {
	var txs []*middleware.Transaction
	err := s.fetch(ctx, cfg, "GetTransactionsByAccount", middleware.AccountTransactionsPath(address), middleware.PageQuery(page, limit), &txs)
	if err != nil {
		return nil, err
	}

	return txs, nil
}

// setTransactions keeps the first record seen for every hash.
func (s *TransactionStore) setTransactions(ctx context.Context, txs []*middleware.Transaction) {
	var merged int
	for _, tx := range txs {
		if tx != nil && s.transactions.Merge(ctx, tx.Hash, tx) {
			merged++
		}
	}
	mergedRecords.WithLabelValues(s.resource).Add(float64(merged))
}

func (s *TransactionStore) Transaction(ctx context.Context, hash string) (*middleware.Transaction, error) {
	return s.transactions.Get(ctx, hash)
}

func (s *TransactionStore) Transactions(ctx context.Context) map[string]*middleware.Transaction {
	return s.transactions.All(ctx)
}

// LastPage returns the last page fetched by GetLatestTransactions, 0 if none.
func (s *TransactionStore) LastPage() int64 {
	return s.lastPage.Load()
}
