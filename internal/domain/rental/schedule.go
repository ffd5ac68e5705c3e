package rental

import (
	"fmt"
	"time"

	"fleetrent/internal/pkg/errs"
)

var ErrInvalidPeriod = errs.New("start time must be before end time")

// DefaultBuffer is the mandatory gap around every rental's interval before
// another rental on the same vehicle may start or end.
const DefaultBuffer = 3 * 24 * time.Hour

// Period is a half-open interval [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}

func (p Period) String() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}

// ConflictsWith reports whether p may not be booked next to existing under the
// given buffer. The existing rental occupies the inflated span
// [start-buffer, end+buffer); any overlap of p with that span is a conflict.
// A gap of exactly buffer on either side is allowed.
func (p Period) ConflictsWith(existing Period, buffer time.Duration) bool {
	if !p.end.Add(buffer).After(existing.start) {
		return false
	}
	if !p.start.Before(existing.end.Add(buffer)) {
		return false
	}
	return true
}
