package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/aeexplorer/internal/store/memdb"
)

// DefaultPreloadLimit is the number of latest transactions fetched on preload.
const DefaultPreloadLimit = 10

// Explorer bundles the stores around one shared root and runs their actions with the
// root's current configuration.
type Explorer struct {
	logger *logrus.Logger
	root   *Root

	Accounts     *AccountStore
	Channels     *ChannelStore
	Contracts    *ContractStore
	Generations  *GenerationStore
	Names        *NameStore
	Oracles      *OracleStore
	Transactions *TransactionStore
}

func New(logger *logrus.Logger, fetcher Fetcher, root *Root, opts ...memdb.Option) *Explorer {
	return &Explorer{
		logger:       logger,
		root:         root,
		Accounts:     NewAccountStore(logger, fetcher, root, opts...),
		Channels:     NewChannelStore(logger, fetcher, root, opts...),
		Contracts:    NewContractStore(logger, fetcher, root, opts...),
		Generations:  NewGenerationStore(logger, fetcher, root, opts...),
		Names:        NewNameStore(logger, fetcher, root, opts...),
		Oracles:      NewOracleStore(logger, fetcher, root, opts...),
		Transactions: NewTransactionStore(logger, fetcher, root, opts...),
	}
}

// Preload fills the generation and transaction stores the way a fresh page load does.
func (e *Explorer) Preload(ctx context.Context) error {
	_, errGenerations := e.GetLatestGenerations(ctx, DefaultWindowSize)
	if errGenerations != nil {
		errGenerations = fmt.Errorf("preload generations: %w", errGenerations)
	}
	_, errTransactions := e.GetLatestTransactions(ctx, DefaultPreloadLimit)
	if errTransactions != nil {
		errTransactions = fmt.Errorf("preload transactions: %w", errTransactions)
	}

	err := errors.Join(errGenerations, errTransactions)
	if err == nil {
		e.logger.WithField("height", e.root.Config().Height).Info("Preloaded latest generations and transactions")
	}
	return err
}

func (e *Explorer) Status() Status {
	return e.root.Status()
}

func (e *Explorer) GetAccountDetails(ctx context.Context, address string) (*middleware.Account, error) {
	return e.Accounts.GetAccountDetails(ctx, e.root.Config(), address)
}

func (e *Explorer) GetChannels(ctx context.Context) ([]middleware.Channel, error) {
	return e.Channels.GetChannels(ctx, e.root.Config())
}

func (e *Explorer) GetChannelTransactions(ctx context.Context, id string) ([]*middleware.Transaction, error) {
	return e.Channels.GetChannelTransactions(ctx, e.root.Config(), id)
}

func (e *Explorer) GetContracts(ctx context.Context, page, limit int) ([]*middleware.Contract, error) {
	return e.Contracts.GetContracts(ctx, e.root.Config(), page, limit)
}

func (e *Explorer) GetAllContracts(ctx context.Context) ([]*middleware.Contract, error) {
	return e.Contracts.GetAllContracts(ctx, e.root.Config())
}

func (e *Explorer) GetContractTransactions(ctx context.Context, id string) ([]*middleware.Transaction, error) {
	return e.Contracts.GetContractTransactions(ctx, e.root.Config(), id)
}

func (e *Explorer) GetLatestGenerations(ctx context.Context, maxBlocks int64) (map[string]*middleware.Generation, error) {
	return e.Generations.GetLatestGenerations(ctx, e.root.Config(), maxBlocks)
}

func (e *Explorer) GenerationByHeight(ctx context.Context, height int64) (*middleware.Generation, error) {
	return e.Generations.ByHeight(ctx, height)
}

func (e *Explorer) GenerationByHash(ctx context.Context, hash string) (*middleware.Generation, error) {
	return e.Generations.ByHash(ctx, hash)
}

func (e *Explorer) GetNames(ctx context.Context, page, limit int) ([]*middleware.Name, error) {
	return e.Names.GetNames(ctx, e.root.Config(), page, limit)
}

func (e *Explorer) GetOracles(ctx context.Context, page, limit int) ([]*middleware.Oracle, error) {
	return e.Oracles.GetOracles(ctx, e.root.Config(), page, limit)
}

func (e *Explorer) GetOracleQueries(ctx context.Context, id string, page, limit int) ([]middleware.OracleQuery, error) {
	return e.Oracles.GetOracleQueries(ctx, e.root.Config(), id, page, limit)
}

func (e *Explorer) GetLatestTransactions(ctx context.Context, limit int) ([]*middleware.Transaction, error) {
	return e.Transactions.GetLatestTransactions(ctx, e.root.Config(), limit)
}

func (e *Explorer) GetTxByType(ctx context.Context, page, limit int, txType string) ([]*middleware.Transaction, error) {
	return e.Transactions.GetTxByType(ctx, e.root.Config(), page, limit, txType)
}

func (e *Explorer) GetTransactionByHash(ctx context.Context, hash string) (*middleware.Transaction, error) {
	return e.Transactions.GetTransactionByHash(ctx, e.root.Config(), hash)
}

func (e *Explorer) GetTransactionsByAccount(ctx context.Context, address string, page, limit int) ([]*middleware.Transaction, error) {
	return e.Transactions.GetTransactionsByAccount(ctx, e.root.Config(), address, page, limit)
}
