package explorer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
)

// Fetcher issues GET requests against the middleware and returns the resolved URL.
type Fetcher interface {
	Get(ctx context.Context, baseURL, path string, query url.Values, out any) (string, error)
}

// base carries what every store needs to run its actions.
type base struct {
	resource string
	logger   *logrus.Logger
	fetcher  Fetcher
	notifier Notifier
}

func newBase(resource string, logger *logrus.Logger, fetcher Fetcher, notifier Notifier) base {
	return base{
		resource: resource,
		logger:   logger,
		fetcher:  fetcher,
		notifier: notifier,
	}
}

// fetch runs one request for action. A failure is logged, raised on the notifier once
// and returned wrapped.
func (b *base) fetch(ctx context.Context, cfg Config, action, path string, query url.Values, out any) error {
	resolved, err := b.fetcher.Get(ctx, cfg.NodeURL, path, query, out)
	logger := b.logger.WithContext(ctx).WithFields(logrus.Fields{
		"resource": b.resource,
		"action":   action,
		"url":      resolved,
	})
	if err != nil {
		logger.WithError(err).Error("Failed to fetch from middleware")
		b.fail()
		return fmt.Errorf("%s: %w", action, err)
	}

	logger.Debug("Fetched from middleware")
	return nil
}

func (b *base) fail() {
	b.notifier.CatchError(ErrorMessage)
	failedActions.WithLabelValues(b.resource).Inc()
}
