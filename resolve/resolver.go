package resolve

import (
	"strings"
	"time"

	"github.com/railatlas/railatlas/network"
)

// lifecycle is the capability set that parameterizes the shared resolution
// algorithm over the two entity kinds. Stations carry a manually-asserted
// status field that may override a derived "existing"; segments do not.
type lifecycle struct {
	openKind       network.EventKind
	closeKind      network.EventKind
	statusOverride bool
}

var (
	stationLifecycle = lifecycle{
		openKind:       network.EventStationOpen,
		closeKind:      network.EventStationClose,
		statusOverride: true,
	}
	segmentLifecycle = lifecycle{
		openKind:  network.EventSegmentOpen,
		closeKind: network.EventSegmentClose,
	}
)

// statusClosed is the current_status value that forces a closed state.
const statusClosed = "closed"

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01", "2006"}

// calendarYear extracts the calendar year from a raw date string. A date
// that matches none of the accepted layouts reports false, which excludes
// the single record carrying it from consideration.
func calendarYear(date string) (int, bool) {
	s := strings.TrimSpace(date)
	if s == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}

// latestYearAtOrBefore returns the maximum calendar year <= year among the
// entity's events of the given kind. Reports false if none qualify.
func latestYearAtOrBefore(events []network.LifecycleEvent, kind network.EventKind, year int) (int, bool) {
	best := 0
	found := false
	for _, ev := range events {
		if ev.Kind != kind {
			continue
		}
		y, ok := calendarYear(ev.Date)
		if !ok || y > year {
			continue
		}
		if !found || y > best {
			best = y
			found = true
		}
	}
	return best, found
}

// resolveEntity applies the resolution precedence order: planned, excluded,
// closed by event, closed by status, electrified, new, existing. The first
// matching rule wins. The boolean result reports whether the entity is part
// of the result set at all for this year.
func resolveEntity(events []network.LifecycleEvent, lc lifecycle, createdAt, currentStatus string, year int) (State, bool) {
	openYear, openFromEvent := latestYearAtOrBefore(events, lc.openKind, year)
	if !openFromEvent {
		// Fall back to the record's creation date; without either the
		// entity is purely hypothetical and stays planned forever.
		created, ok := calendarYear(createdAt)
		if !ok || created > year {
			return StatePlanned, true
		}
		openYear = created
	}

	closeYear, hasClose := latestYearAtOrBefore(events, lc.closeKind, year)
	if hasClose && closeYear < year {
		return "", false
	}
	if hasClose && closeYear == year {
		return StateClosed, true
	}

	if lc.statusOverride && strings.EqualFold(strings.TrimSpace(currentStatus), statusClosed) {
		return StateClosed, true
	}

	if elecYear, ok := latestYearAtOrBefore(events, network.EventElectrification, year); ok && elecYear == year {
		return StateElectrified, true
	}

	// Opening-year highlight applies only to a real open event; a
	// created_at fallback never reads as newly opened.
	if openFromEvent && openYear == year {
		return StateNew, true
	}

	return StateExisting, true
}

// ResolveStation computes a station's state for the query year. The second
// result is false when the station is excluded for that year.
func ResolveStation(st network.Station, events []network.LifecycleEvent, year int) (State, bool) {
	return resolveEntity(events, stationLifecycle, st.CreatedAt, st.CurrentStatus, year)
}

// ResolveSegment computes a segment's state for the query year. Segments
// have no status override and no creation fallback.
func ResolveSegment(_ network.Segment, events []network.LifecycleEvent, year int) (State, bool) {
	return resolveEntity(events, segmentLifecycle, "", "", year)
}
