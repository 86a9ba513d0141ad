package explorer_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/explorer/mocks"
	"github.com/hedisam/aeexplorer/internal/middleware"
)

//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure . Notifier

type fakeResponse struct {
	status int
	body   string
}

// fakeMiddleware serves canned responses by request path. Responses for a path are
// consumed in order and the last one repeats.
type fakeMiddleware struct {
	srv       *httptest.Server
	mu        sync.Mutex
	responses map[string][]fakeResponse
	requests  []string
}

func newFakeMiddleware(t *testing.T, responses map[string][]fakeResponse) *fakeMiddleware {
	t.Helper()

	f := &fakeMiddleware{responses: responses}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeMiddleware) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL.RequestURI())
	queue := f.responses[r.URL.Path]
	var resp fakeResponse
	switch len(queue) {
	case 0:
		resp = fakeResponse{status: http.StatusNotFound}
	case 1:
		resp = queue[0]
	default:
		resp = queue[0]
		f.responses[r.URL.Path] = queue[1:]
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func (f *fakeMiddleware) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.requests...)
}

func (f *fakeMiddleware) URL() string {
	return f.srv.URL
}

func (f *fakeMiddleware) Client() *middleware.Client {
	return middleware.New(logrus.New(), f.srv.Client())
}

func okBody(body string) fakeResponse {
	return fakeResponse{status: http.StatusOK, body: body}
}

func newNotifier() *mocks.NotifierMock {
	return &mocks.NotifierMock{
		CatchErrorFunc: func(msg string) {},
	}
}
