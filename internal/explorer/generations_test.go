package explorer_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/aeexplorer/internal/explorer"
	"github.com/hedisam/aeexplorer/internal/store"
)

func TestGetLatestGenerationsWalksBackward(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/generations/90/100": {okBody(`{"total_transactions":0,"data":{
			"100":{"height":100,"hash":"kh_100"},
			"99":{"height":99,"hash":"kh_99"}
		}}`)},
		"/middleware/generations/79/89": {okBody(`{"data":{
			"89":{"height":89,"hash":"kh_89"}
		}}`)},
	})
	notifier := newNotifier()
	s := explorer.NewGenerationStore(logrus.New(), fake.Client(), notifier)
	ctx := context.Background()
	cfg := explorer.Config{NodeURL: fake.URL(), Height: 100}

	_, fetched := s.LastFetched()
	assert.False(t, fetched)

	first, err := s.GetLatestGenerations(ctx, cfg, 10)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "kh_100", first["100"].Hash)
	last, fetched := s.LastFetched()
	assert.True(t, fetched)
	assert.Equal(t, int64(90), last)

	second, err := s.GetLatestGenerations(ctx, cfg, 10)
	require.NoError(t, err)
	require.Len(t, second, 1)
	last, _ = s.LastFetched()
	assert.Equal(t, int64(79), last)

	assert.Equal(t, []string{
		"/middleware/generations/90/100",
		"/middleware/generations/79/89",
	}, fake.Requests())
	assert.Empty(t, notifier.CatchErrorCalls())

	all := s.All(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{100, 99, 89}, []int64{all[0].Height, all[1].Height, all[2].Height})

	g, err := s.ByHash(ctx, "kh_99")
	require.NoError(t, err)
	assert.Equal(t, int64(99), g.Height)
}

func TestGetLatestGenerationsKeepsFirstRecord(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/generations/90/100": {okBody(`{"data":{
			"90":{"height":90,"hash":"kh_90"},
			"89":{"height":89,"hash":"kh_original"}
		}}`)},
		"/middleware/generations/79/89": {okBody(`{"data":{
			"89":{"height":89,"hash":"kh_replaced"},
			"88":{"height":88,"hash":"kh_88"}
		}}`)},
	})
	s := explorer.NewGenerationStore(logrus.New(), fake.Client(), newNotifier())
	ctx := context.Background()
	cfg := explorer.Config{NodeURL: fake.URL(), Height: 100}

	_, err := s.GetLatestGenerations(ctx, cfg, 10)
	require.NoError(t, err)
	second, err := s.GetLatestGenerations(ctx, cfg, 10)
	require.NoError(t, err)
	assert.Equal(t, "kh_replaced", second["89"].Hash, "the payload is returned as fetched")

	g, err := s.ByHeight(ctx, 89)
	require.NoError(t, err)
	assert.Equal(t, "kh_original", g.Hash)

	_, err = s.ByHash(ctx, "kh_replaced")
	assert.ErrorIs(t, err, store.ErrNotFound)

	g, err = s.ByHash(ctx, "kh_88")
	require.NoError(t, err)
	assert.Equal(t, int64(88), g.Height)
}

func TestGetLatestGenerationsFailure(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/generations/90/100": {{status: http.StatusServiceUnavailable}},
	})
	notifier := newNotifier()
	s := explorer.NewGenerationStore(logrus.New(), fake.Client(), notifier)
	ctx := context.Background()

	got, err := s.GetLatestGenerations(ctx, explorer.Config{NodeURL: fake.URL(), Height: 100}, 10)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Len(t, notifier.CatchErrorCalls(), 1)

	_, fetched := s.LastFetched()
	assert.False(t, fetched, "a failed fetch must not advance the window")

	_, err = s.ByHeight(ctx, 100)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetLatestGenerationsStopsAtGenesis(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/generations/0/3": {okBody(`{"data":{"3":{"height":3,"hash":"kh_3"},"0":{"height":0,"hash":"kh_0"}}}`)},
	})
	notifier := newNotifier()
	s := explorer.NewGenerationStore(logrus.New(), fake.Client(), notifier)
	ctx := context.Background()
	cfg := explorer.Config{NodeURL: fake.URL(), Height: 3}

	_, err := s.GetLatestGenerations(ctx, cfg, 10)
	require.NoError(t, err)

	got, err := s.GetLatestGenerations(ctx, cfg, 10)
	require.ErrorIs(t, err, explorer.ErrGenesisReached)
	assert.Nil(t, got)
	assert.Len(t, fake.Requests(), 1)
	assert.Len(t, notifier.CatchErrorCalls(), 1)
}

func TestGetLatestGenerationsWaitsForChainHeight(t *testing.T) {
	fake := newFakeMiddleware(t, map[string][]fakeResponse{
		"/middleware/generations/90/100": {okBody(`{"data":{"100":{"height":100,"hash":"kh_100"}}}`)},
	})
	root := explorer.NewRoot(fake.URL(), 0)
	s := explorer.NewGenerationStore(logrus.New(), fake.Client(), root)
	ctx := context.Background()

	got, err := s.GetLatestGenerations(ctx, root.Config(), 10)
	require.ErrorIs(t, err, explorer.ErrHeightUnknown)
	assert.Nil(t, got)
	assert.Empty(t, fake.Requests())
	assert.Equal(t, int64(1), root.ErrorCount())
	_, fetched := s.LastFetched()
	assert.False(t, fetched)

	root.SetHeight(100)
	got, err = s.GetLatestGenerations(ctx, root.Config(), 10)
	require.NoError(t, err)
	assert.Equal(t, "kh_100", got["100"].Hash)
	assert.Equal(t, []string{"/middleware/generations/90/100"}, fake.Requests())
	last, fetched := s.LastFetched()
	assert.True(t, fetched)
	assert.Equal(t, int64(90), last)
}
