package explorer

import "errors"

var (
	// ErrGenesisReached is returned once the previous window already started at height 0.
	ErrGenesisReached = errors.New("no generations left below genesis")
	// ErrHeightUnknown is returned for a first window while the chain height is not known yet.
	ErrHeightUnknown = errors.New("chain height is not known yet")
	// ErrInvalidWindow is returned for a non positive window size.
	ErrInvalidWindow = errors.New("window size must be positive")
)

// Window is an inclusive range of key block heights.
type Window struct {
	Start int64
	End   int64
}

// NextWindow computes the next range of generations to fetch walking backward from the
// chain head. Without a previous fetch the window is [height-size, height]; afterwards
// it is [lastStart-size-1, lastStart-1]. Starts are clamped at height 0. A non positive
// height means the chain head is unknown and no first window can be computed.
func NextWindow(height, lastStart int64, fetched bool, size int64) (Window, error) {
	if size <= 0 {
		return Window{}, ErrInvalidWindow
	}

	if !fetched {
		if height <= 0 {
			return Window{}, ErrHeightUnknown
		}
		return Window{
			Start: max(height-size, 0),
			End:   height,
		}, nil
	}

	if lastStart <= 0 {
		return Window{}, ErrGenesisReached
	}
	return Window{
		Start: max(lastStart-size-1, 0),
		End:   lastStart - 1,
	}, nil
}
