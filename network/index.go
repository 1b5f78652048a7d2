package network

import (
	"sort"

	"github.com/google/uuid"
)

// Index stores the loaded railway dataset in memory for fast lookups. It is
// built once per session and never mutated afterwards, so it is safe to share
// across goroutines without locking.
type Index struct {
	snapshotID string

	stations map[string]Station
	segments map[string]Segment

	stationEvents map[string][]LifecycleEvent // station_id -> events, unordered
	segmentEvents map[string][]LifecycleEvent // segment_id -> events, unordered
	stationNames  map[string][]NameRecord     // station_id -> name records, input order
}

// NewIndex creates a new empty index with a fresh snapshot ID.
func NewIndex() *Index {
	return &Index{
		snapshotID:    uuid.NewString(),
		stations:      map[string]Station{},
		segments:      map[string]Segment{},
		stationEvents: map[string][]LifecycleEvent{},
		segmentEvents: map[string][]LifecycleEvent{},
		stationNames:  map[string][]NameRecord{},
	}
}

// NewIndexFromCollections builds an index directly from the four typed
// collections, applying the same record-level tolerance as the file-backed
// loaders: entities without IDs, events without exactly one known owner and
// names for unknown stations are dropped and counted, never fatal.
func NewIndexFromCollections(stations []Station, segments []Segment, events []LifecycleEvent, names []NameRecord) (*Index, LoadStats) {
	ix := NewIndex()
	var stats LoadStats
	for _, s := range stations {
		if s.ID == "" {
			stats.DroppedRows++
			continue
		}
		ix.addStation(s)
		stats.Stations++
	}
	for _, s := range segments {
		if s.ID == "" {
			stats.DroppedRows++
			continue
		}
		ix.addSegment(s)
		stats.Segments++
	}
	for _, e := range events {
		if e.ID == "" || e.Kind == "" {
			stats.DroppedRows++
			continue
		}
		if !ix.addEvent(e) {
			stats.OrphanRecords++
			continue
		}
		stats.Events++
	}
	for _, n := range names {
		if n.StationID == "" {
			stats.DroppedRows++
			continue
		}
		if !ix.addNameRecord(n) {
			stats.OrphanRecords++
			continue
		}
		stats.Names++
	}
	return ix, stats
}

// SnapshotID identifies this load of the dataset in logs and health output.
func (ix *Index) SnapshotID() string { return ix.snapshotID }

func (ix *Index) addStation(s Station) { ix.stations[s.ID] = s }

func (ix *Index) addSegment(s Segment) { ix.segments[s.ID] = s }

// addEvent groups an event under its owning entity. Events referencing an
// entity the dataset does not contain are dropped; callers count them.
func (ix *Index) addEvent(e LifecycleEvent) bool {
	switch e.Owner.Kind {
	case OwnerStation:
		if _, ok := ix.stations[e.Owner.ID]; !ok {
			return false
		}
		ix.stationEvents[e.Owner.ID] = append(ix.stationEvents[e.Owner.ID], e)
	case OwnerSegment:
		if _, ok := ix.segments[e.Owner.ID]; !ok {
			return false
		}
		ix.segmentEvents[e.Owner.ID] = append(ix.segmentEvents[e.Owner.ID], e)
	default:
		return false
	}
	return true
}

func (ix *Index) addNameRecord(n NameRecord) bool {
	if _, ok := ix.stations[n.StationID]; !ok {
		return false
	}
	ix.stationNames[n.StationID] = append(ix.stationNames[n.StationID], n)
	return true
}

// GetStation returns a station by ID.
func (ix *Index) GetStation(id string) (Station, bool) {
	s, ok := ix.stations[id]
	return s, ok
}

// GetSegment returns a segment by ID.
func (ix *Index) GetSegment(id string) (Segment, bool) {
	s, ok := ix.segments[id]
	return s, ok
}

// StationEvents returns the unordered lifecycle events of a station. The
// slice is empty, never nil-significant, for stations without events.
func (ix *Index) StationEvents(id string) []LifecycleEvent { return ix.stationEvents[id] }

// SegmentEvents returns the unordered lifecycle events of a segment.
func (ix *Index) SegmentEvents(id string) []LifecycleEvent { return ix.segmentEvents[id] }

// StationNames returns a station's name records in dataset order.
func (ix *Index) StationNames(id string) []NameRecord { return ix.stationNames[id] }

// AllStationIDs returns every station ID in ascending order.
func (ix *Index) AllStationIDs() []string {
	ids := make([]string, 0, len(ix.stations))
	for id := range ix.stations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AllSegmentIDs returns every segment ID in ascending order.
func (ix *Index) AllSegmentIDs() []string {
	ids := make([]string, 0, len(ix.segments))
	for id := range ix.segments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// StationCount reports the number of loaded stations.
func (ix *Index) StationCount() int { return len(ix.stations) }

// SegmentCount reports the number of loaded segments.
func (ix *Index) SegmentCount() int { return len(ix.segments) }

// EventCount reports the number of indexed lifecycle events.
func (ix *Index) EventCount() int {
	n := 0
	for _, evs := range ix.stationEvents {
		n += len(evs)
	}
	for _, evs := range ix.segmentEvents {
		n += len(evs)
	}
	return n
}
