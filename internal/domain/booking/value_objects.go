package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeWindow = errors.New("start time must be before end time")
	ErrDurationTooLong   = errors.New("booking duration exceeds the maximum")
)

// TimeWindow is a half-open interval [start, end). Two windows conflict iff
// they truly intersect; a booking ending exactly when another begins does not.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}

	return TimeWindow{
		start: start,
		end:   end,
	}, nil
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports whether the two half-open intervals intersect:
// other.end > w.start AND other.start < w.end.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return other.end.After(w.start) && other.start.Before(w.end)
}

func (w TimeWindow) ValidateMaxDuration(max time.Duration) error {
	if max > 0 && w.Duration() > max {
		return ErrDurationTooLong
	}
	return nil
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
