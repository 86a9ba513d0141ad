package explorer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/aeexplorer/internal/explorer"
)

func TestNextWindow(t *testing.T) {
	tests := map[string]struct {
		height    int64
		lastStart int64
		fetched   bool
		size      int64
		expected  explorer.Window
		errIs     error
	}{
		"first window from chain head": {
			height:   100,
			size:     10,
			expected: explorer.Window{Start: 90, End: 100},
		},
		"next window below last fetched start": {
			height:    100,
			lastStart: 90,
			fetched:   true,
			size:      10,
			expected:  explorer.Window{Start: 79, End: 89},
		},
		"chain shorter than window": {
			height:   4,
			size:     10,
			expected: explorer.Window{Start: 0, End: 4},
		},
		"clamped at genesis": {
			height:    100,
			lastStart: 5,
			fetched:   true,
			size:      10,
			expected:  explorer.Window{Start: 0, End: 4},
		},
		"genesis already fetched": {
			height:    100,
			lastStart: 0,
			fetched:   true,
			size:      10,
			errIs:     explorer.ErrGenesisReached,
		},
		"unknown chain height": {
			height: 0,
			size:   10,
			errIs:  explorer.ErrHeightUnknown,
		},
		"unknown chain height after a fetch is ignored": {
			height:    0,
			lastStart: 90,
			fetched:   true,
			size:      10,
			expected:  explorer.Window{Start: 79, End: 89},
		},
		"zero window": {
			height: 100,
			size:   0,
			errIs:  explorer.ErrInvalidWindow,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			w, err := explorer.NextWindow(test.height, test.lastStart, test.fetched, test.size)
			if test.errIs != nil {
				require.ErrorIs(t, err, test.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, w)
		})
	}
}
