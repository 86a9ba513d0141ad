package explorer

import (
	"sync"
	"sync/atomic"
)

// ErrorMessage is the value every failed action raises on the shared error flag.
const ErrorMessage = "Error"

// Notifier is told about every failed action.
type Notifier interface {
	CatchError(msg string)
}

// Config is the snapshot of root state an action needs to issue its request.
type Config struct {
	NodeURL string
	Height  int64
}

// Status describes the shared root state.
type Status struct {
	NodeURL    string `json:"nodeUrl"`
	Height     int64  `json:"height"`
	Error      string `json:"error,omitempty"`
	ErrorCount int64  `json:"errorCount"`
}

// Root is the state shared by all stores: the node URL, the current chain height and
// the error flag raised by failed actions.
type Root struct {
	nodeURL    string
	height     atomic.Int64
	errorCount atomic.Int64

	mu       sync.RWMutex
	errorMsg string
}

func NewRoot(nodeURL string, height int64) *Root {
	r := &Root{nodeURL: nodeURL}
	r.height.Store(height)
	return r
}

// Config returns the current configuration snapshot.
func (r *Root) Config() Config {
	return Config{
		NodeURL: r.nodeURL,
		Height:  r.height.Load(),
	}
}

func (r *Root) SetHeight(height int64) {
	r.height.Store(height)
}

// CatchError raises the shared error flag.
func (r *Root) CatchError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errorMsg = msg
	r.errorCount.Add(1)
}

// ClearError lowers the error flag, e.g. once the UI has shown it.
func (r *Root) ClearError() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errorMsg = ""
}

// ErrorFlag returns the last raised error message and whether the flag is raised.
func (r *Root) ErrorFlag() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.errorMsg, r.errorMsg != ""
}

// ErrorCount returns how many times the flag has been raised since start.
func (r *Root) ErrorCount() int64 {
	return r.errorCount.Load()
}

func (r *Root) Status() Status {
	msg, _ := r.ErrorFlag()
	cfg := r.Config()
	return Status{
		NodeURL:    cfg.NodeURL,
		Height:     cfg.Height,
		Error:      msg,
		ErrorCount: r.ErrorCount(),
	}
}
