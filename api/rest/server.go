package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/explorer"
	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/aeexplorer/internal/store"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type StatusProvider interface {
	Status() explorer.Status
}

type AccountService interface {
	GetAccountDetails(ctx context.Context, address string) (*middleware.Account, error)
	GetTransactionsByAccount(ctx context.Context, address string, page, limit int) ([]*middleware.Transaction, error)
}

type ChainService interface {
	GetLatestGenerations(ctx context.Context, maxBlocks int64) (map[string]*middleware.Generation, error)
	GenerationByHeight(ctx context.Context, height int64) (*middleware.Generation, error)
	GenerationByHash(ctx context.Context, hash string) (*middleware.Generation, error)
	GetLatestTransactions(ctx context.Context, limit int) ([]*middleware.Transaction, error)
	GetTxByType(ctx context.Context, page, limit int, txType string) ([]*middleware.Transaction, error)
	GetTransactionByHash(ctx context.Context, hash string) (*middleware.Transaction, error)
}

type RegistryService interface {
	GetChannels(ctx context.Context) ([]middleware.Channel, error)
	GetChannelTransactions(ctx context.Context, id string) ([]*middleware.Transaction, error)
	GetContracts(ctx context.Context, page, limit int) ([]*middleware.Contract, error)
	GetAllContracts(ctx context.Context) ([]*middleware.Contract, error)
	GetContractTransactions(ctx context.Context, id string) ([]*middleware.Transaction, error)
	GetNames(ctx context.Context, page, limit int) ([]*middleware.Name, error)
	GetOracles(ctx context.Context, page, limit int) ([]*middleware.Oracle, error)
	GetOracleQueries(ctx context.Context, id string, page, limit int) ([]middleware.OracleQuery, error)
}

type Server struct {
	logger   *logrus.Logger
	status   StatusProvider
	accounts AccountService
	chain    ChainService
	registry RegistryService
}

func NewServer(logger *logrus.Logger, status StatusProvider, accounts AccountService, chain ChainService, registry RegistryService) *Server {
	return &Server{
		logger:   logger,
		status:   status,
		accounts: accounts,
		chain:    chain,
		registry: registry,
	}
}

func (s *Server) GetStatus(_ context.Context, _ *GetStatusRequest) (*GetStatusResponse, error) {
	return &GetStatusResponse{Status: s.status.Status()}, nil
}

// GetAccount always answers with an account record; lookups that failed upstream carry
// the reason in the record's error field.
func (s *Server) GetAccount(ctx context.Context, req *GetAccountRequest) (*GetAccountResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("address", req.Address)

	address := strings.TrimSpace(req.Address)
	if address == "" {
		logger.Warn("Address is required to get account details")
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'address'")
	}

	account, err := s.accounts.GetAccountDetails(ctx, address)
	if err != nil {
		logger.WithError(err).Warn("Serving fallback account record")
	}

	return &GetAccountResponse{Account: account}, nil
}

func (s *Server) ListAccountTransactions(ctx context.Context, req *ListAccountTransactionsRequest) (*ListTransactionsResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("address", req.Address)

	address := strings.TrimSpace(req.Address)
	if address == "" {
		logger.Warn("Address is required to list account transactions")
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'address'")
	}
	page, limit, err := pagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	txs, err := s.accounts.GetTransactionsByAccount(ctx, address, page, limit)
	if err != nil {
		return nil, upstreamErr(logger, err, "account transactions")
	}

	return &ListTransactionsResponse{Transactions: txs}, nil
}

func (s *Server) ListChannels(ctx context.Context, _ *ListChannelsRequest) (*ListChannelsResponse, error) {
	logger := s.logger.WithContext(ctx)

	channels, err := s.registry.GetChannels(ctx)
	if err != nil {
		return nil, upstreamErr(logger, err, "channels")
	}

	return &ListChannelsResponse{Channels: channels}, nil
}

func (s *Server) ListChannelTransactions(ctx context.Context, req *ListByIDRequest) (*ListTransactionsResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("channel_id", req.ID)

	txs, err := s.registry.GetChannelTransactions(ctx, req.ID)
	if err != nil {
		return nil, upstreamErr(logger, err, "channel transactions")
	}

	return &ListTransactionsResponse{Transactions: txs}, nil
}

// ListContracts returns one page of contracts, or the whole list when neither page nor
// limit is given.
func (s *Server) ListContracts(ctx context.Context, req *ListContractsRequest) (*ListContractsResponse, error) {
	logger := s.logger.WithContext(ctx)

	var contracts []*middleware.Contract
	var err error
	if req.Page == 0 && req.Limit == 0 {
		contracts, err = s.registry.GetAllContracts(ctx)
	} else {
		page, limit, perr := pagination(req.Page, req.Limit)
		if perr != nil {
			return nil, perr
		}
		contracts, err = s.registry.GetContracts(ctx, page, limit)
	}
	if err != nil {
		return nil, upstreamErr(logger, err, "contracts")
	}

	return &ListContractsResponse{Contracts: contracts}, nil
}

func (s *Server) ListContractTransactions(ctx context.Context, req *ListByIDRequest) (*ListTransactionsResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("contract_id", req.ID)

	txs, err := s.registry.GetContractTransactions(ctx, req.ID)
	if err != nil {
		return nil, upstreamErr(logger, err, "contract transactions")
	}

	return &ListTransactionsResponse{Transactions: txs}, nil
}

// ListGenerations fetches the next window of generations below the previously served one.
func (s *Server) ListGenerations(ctx context.Context, req *ListGenerationsRequest) (*ListGenerationsResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("max", req.Max)

	maxBlocks := req.Max
	if maxBlocks == 0 {
		maxBlocks = explorer.DefaultWindowSize
	}
	if maxBlocks < 0 || maxBlocks > MaxLimit {
		logger.Warn("Invalid generations window size")
		return nil, NewErrf(http.StatusBadRequest, "'max' must be between 1 and %d", MaxLimit)
	}

	generations, err := s.chain.GetLatestGenerations(ctx, maxBlocks)
	if err != nil {
		return nil, upstreamErr(logger, err, "generations")
	}

	return &ListGenerationsResponse{Generations: generations}, nil
}

// GetGeneration looks up an already fetched generation by height or hash.
func (s *Server) GetGeneration(ctx context.Context, req *GetGenerationRequest) (*GetGenerationResponse, error) {
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"height": req.Height,
		"hash":   req.Hash,
	})

	var generation *middleware.Generation
	var err error
	if req.Hash != "" {
		generation, err = s.chain.GenerationByHash(ctx, req.Hash)
	} else {
		generation, err = s.chain.GenerationByHeight(ctx, req.Height)
	}
	if err != nil {
		return nil, upstreamErr(logger, err, "generation")
	}

	return &GetGenerationResponse{Generation: generation}, nil
}

func (s *Server) ListNames(ctx context.Context, req *ListNamesRequest) (*ListNamesResponse, error) {
	logger := s.logger.WithContext(ctx)

	page, limit, err := pagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	names, err := s.registry.GetNames(ctx, page, limit)
	if err != nil {
		return nil, upstreamErr(logger, err, "names")
	}

	return &ListNamesResponse{Names: names}, nil
}

func (s *Server) ListOracles(ctx context.Context, req *ListOraclesRequest) (*ListOraclesResponse, error) {
	logger := s.logger.WithContext(ctx)

	page, limit, err := pagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	oracles, err := s.registry.GetOracles(ctx, page, limit)
	if err != nil {
		return nil, upstreamErr(logger, err, "oracles")
	}

	return &ListOraclesResponse{Oracles: oracles}, nil
}

func (s *Server) ListOracleQueries(ctx context.Context, req *ListOracleQueriesRequest) (*ListOracleQueriesResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("oracle_id", req.ID)

	page, limit, err := pagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	queries, err := s.registry.GetOracleQueries(ctx, req.ID, page, limit)
	if err != nil {
		return nil, upstreamErr(logger, err, "oracle queries")
	}

	return &ListOracleQueriesResponse{Queries: queries}, nil
}

// ListLatestTransactions fetches the next page of the latest transactions.
func (s *Server) ListLatestTransactions(ctx context.Context, req *ListLatestTransactionsRequest) (*ListTransactionsResponse, error) {
	logger := s.logger.WithContext(ctx)

	_, limit, err := pagination(DefaultPage, req.Limit)
	if err != nil {
		return nil, err
	}

	txs, err := s.chain.GetLatestTransactions(ctx, limit)
	if err != nil {
		return nil, upstreamErr(logger, err, "latest transactions")
	}

	return &ListTransactionsResponse{Transactions: txs}, nil
}

func (s *Server) ListTransactions(ctx context.Context, req *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("txtype", req.TxType)

	txType := strings.TrimSpace(req.TxType)
	if txType == "" {
		logger.Warn("Transaction type is required to list transactions")
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'txtype'")
	}
	page, limit, err := pagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	txs, err := s.chain.GetTxByType(ctx, page, limit, txType)
	if err != nil {
		return nil, upstreamErr(logger, err, "transactions")
	}

	return &ListTransactionsResponse{Transactions: txs}, nil
}

func (s *Server) GetTransaction(ctx context.Context, req *GetTransactionRequest) (*GetTransactionResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("hash", req.Hash)

	hash := strings.TrimSpace(req.Hash)
	if hash == "" {
		logger.Warn("Hash is required to get a transaction")
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'hash'")
	}

	tx, err := s.chain.GetTransactionByHash(ctx, hash)
	if err != nil {
		return nil, upstreamErr(logger, err, "transaction")
	}

	return &GetTransactionResponse{Transaction: tx}, nil
}

func pagination(page, limit int) (int, int, error) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if page < 0 {
		return 0, 0, NewErrf(http.StatusBadRequest, "'page' must be positive")
	}
	if limit < 0 || limit > MaxLimit {
		return 0, 0, NewErrf(http.StatusBadRequest, "'limit' must be between 1 and %d", MaxLimit)
	}
	return page, limit, nil
}

// upstreamErr maps a store failure to the API error returned to clients.
func upstreamErr(logger *logrus.Entry, err error, what string) error {
	var statusErr *middleware.StatusError
	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.WithError(err).Warn("Requested record is not stored")
		return NewErrf(http.StatusNotFound, "No %s stored, fetch it first", what)
	case errors.Is(err, explorer.ErrGenesisReached):
		logger.Warn("Generations already fetched down to genesis")
		return NewErrf(http.StatusNotFound, "No generations left below genesis")
	case errors.Is(err, explorer.ErrHeightUnknown):
		logger.Warn("Chain height is not known yet")
		return NewErrf(http.StatusServiceUnavailable, "Chain height is not known yet, try again shortly")
	case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound:
		logger.WithError(err).Warn("Middleware has no such record")
		return NewErrf(http.StatusNotFound, "Could not find %s", what)
	}

	logger.WithError(err).Errorf("Failed to fetch %s from middleware", what)
	return NewErrf(http.StatusBadGateway, "Could not fetch %s from middleware", what)
}
