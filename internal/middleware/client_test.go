package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/aeexplorer/internal/middleware"
)

func TestGet(t *testing.T) {
	tests := map[string]struct {
		status       int
		body         string
		path         string
		query        url.Values
		expectedPath string
		expectedTxs  []string
		expectedCode int
		errIs        error
	}{
		"success": {
			status:       http.StatusOK,
			body:         `{"transactions":[{"hash":"th_1","block_height":3},{"hash":"th_2"}]}`,
			path:         middleware.TransactionsIntervalPath(100),
			query:        middleware.PageQuery(2, 10),
			expectedPath: "/middleware/transactions/interval/1/100?limit=10&page=2",
			expectedTxs:  []string{"th_1", "th_2"},
		},
		"server error": {
			status:       http.StatusInternalServerError,
			body:         `{"reason":"boom"}`,
			path:         middleware.TransactionPath("th_1"),
			expectedPath: "/v2/transactions/th_1",
			expectedCode: http.StatusInternalServerError,
		},
		"not found": {
			status:       http.StatusNotFound,
			path:         middleware.TransactionPath("th_1"),
			expectedPath: "/v2/transactions/th_1",
			expectedCode: http.StatusNotFound,
		},
		"malformed body": {
			status:       http.StatusOK,
			body:         `{"transactions": 12}`,
			path:         middleware.TransactionsIntervalPath(1),
			expectedPath: "/middleware/transactions/interval/1/1",
			errIs:        middleware.ErrMalformed,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.RequestURI()
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			}))
			defer srv.Close()

			c := middleware.New(logrus.New(), srv.Client())
			var page middleware.TransactionPage
			resolved, err := c.Get(context.Background(), srv.URL+"/", test.path, test.query, &page)
			assert.Equal(t, test.expectedPath, gotPath)
			assert.Equal(t, srv.URL+test.expectedPath, resolved)

			if test.expectedCode != 0 {
				require.Error(t, err)
				var statusErr *middleware.StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, test.expectedCode, statusErr.StatusCode)
				return
			}
			if test.errIs != nil {
				require.ErrorIs(t, err, test.errIs)
				return
			}
			require.NoError(t, err)

			var hashes []string
			for _, tx := range page.Transactions {
				hashes = append(hashes, tx.Hash)
			}
			assert.Equal(t, test.expectedTxs, hashes)
		})
	}
}

func TestGetTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	var calls int
	httpClient := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return http.DefaultTransport.RoundTrip(r)
	})}

	c := middleware.New(logrus.New(), httpClient)
	var out middleware.Height
	_, err := c.Get(context.Background(), addr, middleware.CurrentHeightPath, nil, &out)
	require.ErrorIs(t, err, middleware.ErrTransport)
	assert.Equal(t, 1, calls, "no retries by default")
}

func TestGetRetriesTransportErrors(t *testing.T) {
	var calls int
	httpClient := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("connection reset")
		}
		rec := httptest.NewRecorder()
		_, _ = rec.WriteString(`{"height": 42}`)
		return rec.Result(), nil
	})}

	c := middleware.New(logrus.New(), httpClient, middleware.WithRetry(5*time.Second))
	var out middleware.Height
	_, err := c.Get(context.Background(), "http://node.invalid", middleware.CurrentHeightPath, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, int64(42), out.Height)
}

func TestResolveURL(t *testing.T) {
	tests := map[string]struct {
		base     string
		path     string
		query    url.Values
		expected string
	}{
		"no slashes": {
			base:     "https://node.example",
			path:     "middleware/names",
			expected: "https://node.example/middleware/names",
		},
		"double slash": {
			base:     "https://node.example/",
			path:     middleware.NamesPath,
			query:    middleware.PageQuery(1, 20),
			expected: "https://node.example/middleware/names?limit=20&page=1",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, middleware.ResolveURL(test.base, test.path, test.query))
		})
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
