package downloader

import (
	"time"

	"github.com/wxtools/satdl/pkg/errors"
)

const (
	// DefaultTolerance pads the requested window on both sides so files whose
	// coverage starts just outside it are still picked up.
	DefaultTolerance = 60 * time.Second
	// MinTolerance and MaxTolerance bound the configurable padding.
	MinTolerance = 30 * time.Second
	MaxTolerance = 300 * time.Second
)

// TimeWindow is a closed interval of observation start times, padded by a
// tolerance when matching file timestamps.
type TimeWindow struct {
	Start     time.Time
	End       time.Time
	Tolerance time.Duration
}

// NewTimeWindow builds a window from start to end. A zero end collapses the
// window to the single instant at start. A zero tolerance selects
// DefaultTolerance; anything else must lie within [MinTolerance, MaxTolerance].
func NewTimeWindow(start, end time.Time, tolerance time.Duration) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errors.ErrStartTimeRequired
	}
	if end.IsZero() {
		end = start
	}
	if end.Before(start) {
		return TimeWindow{}, errors.Wrapf(errors.ErrInvalidTimeWindow,
			"end %s precedes start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	if tolerance == 0 {
		tolerance = DefaultTolerance
	}
	if tolerance < MinTolerance || tolerance > MaxTolerance {
		return TimeWindow{}, errors.Wrapf(errors.ErrToleranceOutOfRange,
			"%s not in [%s, %s]", tolerance, MinTolerance, MaxTolerance)
	}

	return TimeWindow{
		Start:     start.UTC(),
		End:       end.UTC(),
		Tolerance: tolerance,
	}, nil
}

// Expanded returns the window bounds widened by the tolerance on both sides.
func (w TimeWindow) Expanded() (time.Time, time.Time) {
	return w.Start.Add(-w.Tolerance), w.End.Add(w.Tolerance)
}

// Contains reports whether t falls inside the tolerance-expanded window.
func (w TimeWindow) Contains(t time.Time) bool {
	lo, hi := w.Expanded()
	return !t.Before(lo) && !t.After(hi)
}
