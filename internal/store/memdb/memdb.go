package memdb

const (
	// DefaultMemSize the default size hint used when allocating store collections.
	DefaultMemSize = 100
)

type config struct {
	memSize int
}

type Option func(*config)

// WithMemSize allows us to specify a custom size hint for store collections.
func WithMemSize(memSize int) Option {
	return func(c *config) {
		if memSize >= 0 {
			c.memSize = memSize
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{memSize: DefaultMemSize}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
