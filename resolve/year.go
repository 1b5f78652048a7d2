package resolve

import (
	"github.com/railatlas/railatlas/network"
)

// Resolver runs year queries over an immutable network index. It holds no
// mutable state of its own, so one Resolver may serve any number of
// concurrent queries for different years.
type Resolver struct {
	net *network.Index
}

// NewResolver creates a resolver over a loaded index.
func NewResolver(ix *network.Index) *Resolver {
	return &Resolver{net: ix}
}

// QueryForYear resolves every station and segment for the query year,
// dropping excluded entities from both collections. Each call builds fresh
// result values; nothing is shared or cached between calls. Output order is
// ascending by entity ID.
func (r *Resolver) QueryForYear(year int) ([]ResolvedStation, []ResolvedSegment) {
	stationIDs := r.net.AllStationIDs()
	stations := make([]ResolvedStation, 0, len(stationIDs))
	for _, id := range stationIDs {
		st, _ := r.net.GetStation(id)
		state, included := ResolveStation(st, r.net.StationEvents(id), year)
		if !included {
			continue
		}
		stations = append(stations, ResolvedStation{
			Station:          st,
			State:            state,
			AlternativeNames: AggregateNames(r.net.StationNames(id)),
		})
	}

	segmentIDs := r.net.AllSegmentIDs()
	segments := make([]ResolvedSegment, 0, len(segmentIDs))
	for _, id := range segmentIDs {
		sg, _ := r.net.GetSegment(id)
		state, included := ResolveSegment(sg, r.net.SegmentEvents(id), year)
		if !included {
			continue
		}
		segments = append(segments, ResolvedSegment{Segment: sg, State: state})
	}

	return stations, segments
}
