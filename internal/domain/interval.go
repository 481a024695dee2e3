package domain

import (
	"sort"
	"time"
)

// TimeWindow is a closed range [Start, End] on a single calendar day.
// A zero-length window (Start == End) is a valid point and, for schedules, means "closed".
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow builds a window. Callers keep start <= end.
func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start, End: end}
}

// ClosedWindow is the zero-length midnight window of the given date.
func ClosedWindow(date time.Time) TimeWindow {
	midnight := StartOfDay(date)
	return TimeWindow{Start: midnight, End: midnight}
}

// IsEmpty reports a zero-length (or inverted) window.
func (w TimeWindow) IsEmpty() bool {
	return !w.End.After(w.Start)
}

// Duration returns End - Start.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t lies in [Start, End].
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Overlaps reports whether two windows share more than a single boundary point.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

type endpointKind int

const (
	endpointStart endpointKind = iota
	endpointEnd
)

type endpoint struct {
	kind  endpointKind
	ts    time.Time
	setID int
}

// Intersect returns the windows covered simultaneously by at least one window of a
// and at least one window of b. Endpoints are ordered by timestamp only; ties keep
// input order (all of a, then all of b). If the sweep never alternates between the
// two sets, they cannot overlap and the result is empty.
func Intersect(a, b []TimeWindow) []TimeWindow {
	result := make([]TimeWindow, 0)
	if len(a) == 0 || len(b) == 0 {
		return result
	}

	points := make([]endpoint, 0, 2*(len(a)+len(b)))
	for _, w := range a {
		points = append(points, endpoint{kind: endpointStart, ts: w.Start, setID: 1}, endpoint{kind: endpointEnd, ts: w.End, setID: 1})
	}
	for _, w := range b {
		points = append(points, endpoint{kind: endpointStart, ts: w.Start, setID: 2}, endpoint{kind: endpointEnd, ts: w.End, setID: 2})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].ts.Before(points[j].ts)
	})

	switches := 0
	for i := 1; i < len(points); i++ {
		if points[i].setID != points[i-1].setID {
			switches++
		}
	}
	if switches <= 1 {
		return result
	}

	var (
		depth     [3]int
		openSince time.Time
	)
	for _, p := range points {
		both := depth[1] > 0 && depth[2] > 0
		switch p.kind {
		case endpointStart:
			depth[p.setID]++
			if !both && depth[1] > 0 && depth[2] > 0 {
				openSince = p.ts
			}
		case endpointEnd:
			if depth[p.setID] > 0 {
				depth[p.setID]--
			}
			if both && (depth[1] == 0 || depth[2] == 0) && !p.ts.Before(openSince) {
				result = append(result, TimeWindow{Start: openSince, End: p.ts})
			}
		}
	}

	return result
}

// SortWindows orders windows by start, then by end.
func SortWindows(windows []TimeWindow) {
	sort.SliceStable(windows, func(i, j int) bool {
		if windows[i].Start.Equal(windows[j].Start) {
			return windows[i].End.Before(windows[j].End)
		}
		return windows[i].Start.Before(windows[j].Start)
	})
}

// StartOfDay truncates t to local midnight of its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether two instants fall on the same calendar date.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MaxTime returns the later of two instants.
func MaxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// MinTime returns the earlier of two instants.
func MinTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
