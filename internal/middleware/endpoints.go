package middleware

import (
	"net/url"
	"strconv"
)

const (
	ActiveChannelsPath = "/middleware/channels/active"
	ContractsPath      = "/middleware/contracts/all"
	NamesPath          = "/middleware/names"
	OraclesPath        = "/middleware/oracles/list"
	CurrentHeightPath  = "/v2/key-blocks/current/height"
)

func AccountPath(address string) string {
	return "/v2/accounts/" + url.PathEscape(address)
}

func ChannelTransactionsPath(id string) string {
	return "/middleware/channels/transactions/address/" + url.PathEscape(id)
}

func ContractTransactionsPath(id string) string {
	return "/middleware/contracts/transactions/address/" + url.PathEscape(id)
}

func GenerationsPath(start, end int64) string {
	return "/middleware/generations/" + strconv.FormatInt(start, 10) + "/" + strconv.FormatInt(end, 10)
}

func OracleQueriesPath(id string) string {
	return "/middleware/oracles/" + url.PathEscape(id)
}

// TransactionsIntervalPath lists transactions from height 1 up to the given height.
func TransactionsIntervalPath(height int64) string {
	return "/middleware/transactions/interval/1/" + strconv.FormatInt(height, 10)
}

func TransactionPath(hash string) string {
	return "/v2/transactions/" + url.PathEscape(hash)
}

func AccountTransactionsPath(address string) string {
	return "/middleware/transactions/account/" + url.PathEscape(address)
}

// PageQuery builds the limit/page query shared by the paginated endpoints.
func PageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))
	return q
}
