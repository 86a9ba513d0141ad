package explorer_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/aeexplorer/internal/explorer"
	"github.com/hedisam/aeexplorer/internal/middleware"
)

func TestGetContractsOverwritesByID(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/contracts/all": {
			okBody(`[{"contract_id":"ct_1","rev":1},{"contract_id":"ct_2"}]`),
			okBody(`[{"contract_id":"ct_1","rev":2}]`),
		},
	})
	s := explorer.NewContractStore(logrus.New(), fake.Client(), newNotifier())
	ctx := context.Background()
	cfg := explorer.Config{NodeURL: fake.URL()}

	_, err := s.GetContracts(ctx, cfg, 1, 10)
	require.NoError(t, err)
	second, err := s.GetContracts(ctx, cfg, 2, 10)
	require.NoError(t, err)
	require.Len(t, second, 1)

	contracts := s.Contracts(ctx)
	require.Len(t, contracts, 2)
	assert.JSONEq(t, `{"contract_id":"ct_1","rev":2}`, string(contracts["ct_1"].Raw))
	assert.Equal(t, []string{
		"/middleware/contracts/all?limit=10&page=1",
		"/middleware/contracts/all?limit=10&page=2",
	}, fake.Requests())
}

func TestGetAllContractsReplaces(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/contracts/all": {
			okBody(`[{"contract_id":"ct_1"},{"contract_id":"ct_2"}]`),
			okBody(`[{"contract_id":"ct_3"}]`),
		},
	})
	s := explorer.NewContractStore(logrus.New(), fake.Client(), newNotifier())
	ctx := context.Background()
	cfg := explorer.Config{NodeURL: fake.URL()}

	_, err := s.GetAllContracts(ctx, cfg)
	require.NoError(t, err)
	_, err = s.GetAllContracts(ctx, cfg)
	require.NoError(t, err)

	all := s.AllContracts(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, middleware.Key("ct_3"), all[0].ID)
	assert.Equal(t, []string{"/middleware/contracts/all", "/middleware/contracts/all"}, fake.Requests())
}

func TestGetContractTransactions(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/contracts/transactions/address/ct_1": {okBody(`[{"hash":"th_call"}]`)},
	})
	notifier := newNotifier()
	s := explorer.NewContractStore(logrus.New(), fake.Client(), notifier)
	ctx := context.Background()

	txs, err := s.GetContractTransactions(ctx, explorer.Config{NodeURL: fake.URL()}, "ct_1")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	stored, ok := s.Transactions(ctx, "ct_1")
	require.True(t, ok)
	assert.Equal(t, txs, stored)

	_, err = s.GetContractTransactions(ctx, explorer.Config{NodeURL: fake.URL()}, "ct_unknown")
	require.Error(t, err)
	assert.Len(t, notifier.CatchErrorCalls(), 1)
}

func TestGetNamesMergesByID(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/names": {
			okBody(`[{"id":1,"name":"alice.test"},{"id":2,"name":"bob.test"}]`),
			okBody(`[{"id":2,"name":"bob.test","expires_at":9}]`),
		},
	})
	s := explorer.NewNameStore(logrus.New(), fake.Client(), newNotifier())
	ctx := context.Background()
	cfg := explorer.Config{NodeURL: fake.URL()}

	_, err := s.GetNames(ctx, cfg, 1, 2)
	require.NoError(t, err)
	_, err = s.GetNames(ctx, cfg, 2, 2)
	require.NoError(t, err)

	names := s.Names(ctx)
	require.Len(t, names, 2)
	assert.Equal(t, "alice.test", names["1"].Name)
	assert.JSONEq(t, `{"id":2,"name":"bob.test","expires_at":9}`, string(names["2"].Raw))
	assert.Equal(t, "/middleware/names?limit=2&page=1", fake.Requests()[0])
}

func TestGetOracles(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/oracles/list": {okBody(`[{"transaction_hash":"th_o1","oracle_id":"ok_1"}]`)},
		"/middleware/oracles/ok_1": {okBody(`[{"query_id":"oq_1"},{"query_id":"oq_2"}]`)},
	})
	s := explorer.NewOracleStore(logrus.New(), fake.Client(), newNotifier())
	ctx := context.Background()
	cfg := explorer.Config{NodeURL: fake.URL()}

	oracles, err := s.GetOracles(ctx, cfg, 1, 10)
	require.NoError(t, err)
	require.Len(t, oracles, 1)
	assert.Contains(t, s.Oracles(ctx), "th_o1")

	queries, err := s.GetOracleQueries(ctx, cfg, "ok_1", 1, 10)
	require.NoError(t, err)
	require.Len(t, queries, 2)
	assert.JSONEq(t, `{"query_id":"oq_1"}`, string(queries[0]))

	stored, ok := s.Queries(ctx, "ok_1")
	require.True(t, ok)
	assert.Len(t, stored, 2)
	assert.Equal(t, []string{
		"/middleware/oracles/list?limit=10&page=1",
		"/middleware/oracles/ok_1?limit=10&page=1",
	}, fake.Requests())
}

func TestGetOraclesOverwritesByTransactionHash(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/oracles/list": {
			okBody(`[{"transaction_hash":"th_o1","oracle_id":"ok_1","expires_at":10},{"transaction_hash":"th_o2","oracle_id":"ok_2"}]`),
			okBody(`[{"transaction_hash":"th_o1","oracle_id":"ok_1","expires_at":20}]`),
		},
	})
	s := explorer.NewOracleStore(logrus.New(), fake.Client(), newNotifier())
	ctx := context.Background()
	cfg := explorer.Config{NodeURL: fake.URL()}

	_, err := s.GetOracles(ctx, cfg, 1, 2)
	require.NoError(t, err)
	_, err = s.GetOracles(ctx, cfg, 2, 2)
	require.NoError(t, err)

	oracles := s.Oracles(ctx)
	require.Len(t, oracles, 2)
	assert.JSONEq(t, `{"transaction_hash":"th_o1","oracle_id":"ok_1","expires_at":20}`, string(oracles["th_o1"].Raw))
	assert.JSONEq(t, `{"transaction_hash":"th_o2","oracle_id":"ok_2"}`, string(oracles["th_o2"].Raw))
}

func TestGetChannels(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/channels/active": {
			okBody(`["ch_1","ch_2"]`),
			okBody(`["ch_3"]`),
		},
		"/middleware/channels/transactions/address/ch_3": {okBody(`{"transactions":[]}`)},
	})
	notifier := newNotifier()
	s := explorer.NewChannelStore(logrus.New(), fake.Client(), notifier)
	ctx := context.Background()
	cfg := explorer.Config{NodeURL: fake.URL()}

	_, err := s.GetChannels(ctx, cfg)
	require.NoError(t, err)
	channels, err := s.GetChannels(ctx, cfg)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.JSONEq(t, `"ch_3"`, string(s.Channels(ctx)[0]))

	// a shape mismatch is reported like any other failure
	txs, err := s.GetChannelTransactions(ctx, cfg, "ch_3")
	require.ErrorIs(t, err, middleware.ErrMalformed)
	assert.Nil(t, txs)
	assert.Len(t, notifier.CatchErrorCalls(), 1)
}

func TestGetChannelTransactions(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/channels/transactions/address/ch_1": {okBody(`[{"hash":"th_open"},{"hash":"th_close"}]`)},
		"/middleware/channels/active":                    {{status: http.StatusBadGateway}},
	})
	notifier := newNotifier()
	s := explorer.NewChannelStore(logrus.New(), fake.Client(), notifier)
	ctx := context.Background()
	cfg := explorer.Config{NodeURL: fake.URL()}

	txs, err := s.GetChannelTransactions(ctx, cfg, "ch_1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	stored, ok := s.Transactions(ctx, "ch_1")
	require.True(t, ok)
	assert.Equal(t, "th_close", stored[1].Hash)

	channels, err := s.GetChannels(ctx, cfg)
	require.Error(t, err)
	assert.Nil(t, channels)
	assert.Len(t, notifier.CatchErrorCalls(), 1)
}
