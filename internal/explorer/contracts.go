package explorer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/aeexplorer/internal/store/memdb"
)

type ContractStore struct {
	base
	contracts    *memdb.Keyed[middleware.Key, *middleware.Contract]
	all          *memdb.List[*middleware.Contract]
	transactions *memdb.Grouped[string, *middleware.Transaction]
}

func NewContractStore(logger *logrus.Logger, fetcher Fetcher, notifier Notifier, opts ...memdb.Option) *ContractStore {
	return &ContractStore{
		base:         newBase("contracts", logger, fetcher, notifier),
		contracts:    memdb.NewKeyed[middleware.Key, *middleware.Contract](opts...),
		all:          memdb.NewList[*middleware.Contract](),
		transactions: memdb.NewGrouped[string, *middleware.Transaction](opts...),
	}
}

// GetContracts fetches one page of contracts and merges them by contract id,
// overwriting previously stored records.
func (s *ContractStore) GetContracts(ctx context.Context, cfg Config, page, limit int) ([]*middleware.Contract, error) {
	var contracts []*middleware.Contract
	err := s.fetch(ctx, cfg, "GetContracts", middleware.ContractsPath, middleware.PageQuery(page, limit), &contracts)
	if err != nil {
		return nil, err
	}

	for _, contract := range contracts {
		s.contracts.Upsert(ctx, contract.ID, contract)
	}
	mergedRecords.WithLabelValues(s.resource).Add(float64(len(contracts)))
	return contracts, nil
}

// GetAllContracts fetches the unpaginated contract list and replaces the stored list.
func (s *ContractStore) GetAllContracts(ctx context.Context, cfg Config) ([]*middleware.Contract, error) {
	var contracts []*middleware.Contract
	err := s.fetch(ctx, cfg, "GetAllContracts", middleware.ContractsPath, nil, &contracts)
	if err != nil {
		return nil, err
	}

	s.all.Replace(ctx, contracts)
	mergedRecords.WithLabelValues(s.resource).Add(float64(len(contracts)))
	return contracts, nil
}

// GetContractTransactions fetches the transactions calling the contract with the given id.
func (s *ContractStore) GetContractTransactions(ctx context.Context, cfg Config, id string) ([]*middleware.Transaction, error) {
	var txs []*middleware.Transaction
	err := s.fetch(ctx, cfg, "GetContractTransactions", middleware.ContractTransactionsPath(id), nil, &txs)
	if err != nil {
		return nil, err
	}

	s.transactions.Replace(ctx, id, txs)
	return txs, nil
}

func (s *ContractStore) Contracts(ctx context.Context) map[middleware.Key]*middleware.Contract {
	return s.contracts.All(ctx)
}

func (s *ContractStore) AllContracts(ctx context.Context) []*middleware.Contract {
	return s.all.Items(ctx)
}

func (s *ContractStore) Transactions(ctx context.Context, id string) ([]*middleware.Transaction, bool) {
	return s.transactions.Items(ctx, id)
}
