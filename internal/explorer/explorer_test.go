package explorer_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/aeexplorer/internal/explorer"
)

func TestPreload(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/generations/40/50":          {okBody(`{"data":{"50":{"height":50,"hash":"kh_50"}}}`)},
		"/middleware/transactions/interval/1/50": {okBody(`{"transactions":[{"hash":"th_1"}]}`)},
	})
	root := explorer.NewRoot(fake.URL(), 50)
	e := explorer.New(logrus.New(), fake.Client(), root)

	require.NoError(t, e.Preload(context.Background()))
	assert.Equal(t, []string{
		"/middleware/generations/40/50",
		"/middleware/transactions/interval/1/50?limit=10&page=1",
	}, fake.Requests())

	g, err := e.GenerationByHeight(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, "kh_50", g.Hash)

	_, raised := root.ErrorFlag()
	assert.False(t, raised)
}

func TestPreloadFailureRaisesFlagPerAction(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/generations/40/50":          {{status: http.StatusInternalServerError}},
		"/middleware/transactions/interval/1/50": {{status: http.StatusInternalServerError}},
	})
	root := explorer.NewRoot(fake.URL(), 50)
	e := explorer.New(logrus.New(), fake.Client(), root)

	err := e.Preload(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "preload generations")
	assert.ErrorContains(t, err, "preload transactions")

	msg, raised := root.ErrorFlag()
	assert.True(t, raised)
	assert.Equal(t, explorer.ErrorMessage, msg)
	assert.Equal(t, int64(2), root.ErrorCount())

	root.ClearError()
	status := e.Status()
	assert.Equal(t, explorer.Status{NodeURL: fake.URL(), Height: 50, ErrorCount: 2}, status)
}

func TestConcurrentActionsAreIdempotent(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/v2/transactions/th_1": {okBody(`{"hash":"th_1"}`)},
	})
	root := explorer.NewRoot(fake.URL(), 1)
	e := explorer.New(logrus.New(), fake.Client(), root)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.GetTransactionByHash(context.Background(), "th_1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, e.Transactions.Transactions(context.Background()), 1)
	assert.Equal(t, int64(0), root.ErrorCount())
}
