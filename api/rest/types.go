package rest

import (
	"github.com/hedisam/aeexplorer/internal/explorer"
	"github.com/hedisam/aeexplorer/internal/middleware"
)

// request and response types are defined below
// records are passed through as the middleware sent them

type GetStatusRequest struct{}

type GetStatusResponse struct {
	explorer.Status
}

type GetAccountRequest struct {
	Address string `schema:"address"`
}

type GetAccountResponse struct {
	Account *middleware.Account `json:"account"`
}

type ListAccountTransactionsRequest struct {
	Address string `schema:"address"`
	Page    int    `schema:"page"`
	Limit   int    `schema:"limit"`
}

type ListChannelsRequest struct{}

type ListChannelsResponse struct {
	Channels []middleware.Channel `json:"channels"`
}

type ListByIDRequest struct {
	ID string `schema:"id"`
}

type ListContractsRequest struct {
	Page  int `schema:"page"`
	Limit int `schema:"limit"`
}

type ListContractsResponse struct {
	Contracts []*middleware.Contract `json:"contracts"`
}

type ListGenerationsRequest struct {
	Max int64 `schema:"max"`
}

type ListGenerationsResponse struct {
	Generations map[string]*middleware.Generation `json:"generations"`
}

type GetGenerationRequest struct {
	Height int64  `schema:"height"`
	Hash   string `schema:"hash"`
}

type GetGenerationResponse struct {
	Generation *middleware.Generation `json:"generation"`
}

type ListNamesRequest struct {
	Page  int `schema:"page"`
	Limit int `schema:"limit"`
}

type ListNamesResponse struct {
	Names []*middleware.Name `json:"names"`
}

type ListOraclesRequest struct {
	Page  int `schema:"page"`
	Limit int `schema:"limit"`
}

type ListOraclesResponse struct {
	Oracles []*middleware.Oracle `json:"oracles"`
}

type ListOracleQueriesRequest struct {
	ID    string `schema:"id"`
	Page  int    `schema:"page"`
	Limit int    `schema:"limit"`
}

type ListOracleQueriesResponse struct {
	Queries []middleware.OracleQuery `json:"queries"`
}

type ListLatestTransactionsRequest struct {
	Limit int `schema:"limit"`
}

type ListTransactionsRequest struct {
	TxType string `schema:"txtype"`
	Page   int    `schema:"page"`
	Limit  int    `schema:"limit"`
}

type ListTransactionsResponse struct {
	Transactions []*middleware.Transaction `json:"transactions"`
}

type GetTransactionRequest struct {
	Hash string `schema:"hash"`
}

type GetTransactionResponse struct {
	Transaction *middleware.Transaction `json:"transaction"`
}
