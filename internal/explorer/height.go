package explorer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/aeexplorer/internal/middleware"
	"github.com/hedisam/pipeline/chans"
)

// HeightTracker keeps the root chain height in line with the node's current key block.
type HeightTracker struct {
	logger  *logrus.Logger
	fetcher Fetcher
	root    *Root

	onFirst   func(ctx context.Context, height int64)
	firstOnce sync.Once
}

func NewHeightTracker(logger *logrus.Logger, fetcher Fetcher, root *Root) *HeightTracker {
	return &HeightTracker{
		logger:  logger,
		fetcher: fetcher,
		root:    root,
	}
}

// OnFirstHeight registers fn to run once, with the first positive height stored by
// Refresh or Run. It must be called before either of them.
func (t *HeightTracker) OnFirstHeight(fn func(ctx context.Context, height int64)) {
	t.onFirst = fn
}

// Refresh fetches the current height once and stores it on the root.
func (t *HeightTracker) Refresh(ctx context.Context) (int64, error) {
	height, err := t.currentHeight(ctx)
	if err != nil {
		return 0, err
	}
	t.setHeight(ctx, height)
	return height, nil
}

// Run polls the node every pollTick and updates the root height until ctx is done.
func (t *HeightTracker) Run(ctx context.Context, pollTick time.Duration) {
	for height := range chans.ReceiveOrDoneSeq(ctx, t.Stream(ctx, pollTick)) {
		t.setHeight(ctx, height)
	}
}

// Stream emits the node's current height every time it changes.
func (t *HeightTracker) Stream(ctx context.Context, pollTick time.Duration) <-chan int64 {
	out := make(chan int64)

	go func() {
		defer close(out)

		tk := time.NewTicker(pollTick)
		defer tk.Stop()

		last := int64(-1)
		poll := func() bool {
			height, err := t.currentHeight(ctx)
			if err != nil {
				t.logger.WithError(err).Error("Failed to get current height")
				failedHeightPolls.Inc()
				return true
			}
			if height == last {
				t.logger.WithField("height", height).Debug("No new key block yet")
				return true
			}
			if !chans.SendOrDone(ctx, out, height) {
				return false
			}
			last = height
			return true
		}

		if !poll() {
			return
		}
		for range chans.ReceiveOrDoneSeq(ctx, tk.C) {
			if !poll() {
				return
			}
		}
	}()

	return out
}

func (t *HeightTracker) currentHeight(ctx context.Context) (int64, error) {
	var resp middleware.Height
	_, err := t.fetcher.Get(ctx, t.root.Config().NodeURL, middleware.CurrentHeightPath, nil, &resp)
	if err != nil {
		return 0, fmt.Errorf("get current height: %w", err)
	}
	return resp.Height, nil
}

func (t *HeightTracker) setHeight(ctx context.Context, height int64) {
	t.root.SetHeight(height)
	chainHeight.Set(float64(height))
	t.logger.WithField("height", height).Debug("Updated chain height")

	if height <= 0 || t.onFirst == nil {
		return
	}
	t.firstOnce.Do(func() {
		t.onFirst(ctx, height)
	})
}
