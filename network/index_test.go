package network

import (
	"reflect"
	"testing"
)

func TestNewIndexFromCollections_GroupsEventsByOwner(t *testing.T) {
	stations := []Station{{ID: "st-1"}, {ID: "st-2"}}
	segments := []Segment{{ID: "sg-1"}}
	events := []LifecycleEvent{
		{ID: "e1", Kind: EventStationOpen, Date: "1900", Owner: EventOwner{Kind: OwnerStation, ID: "st-1"}},
		{ID: "e2", Kind: EventStationClose, Date: "1950", Owner: EventOwner{Kind: OwnerStation, ID: "st-1"}},
		{ID: "e3", Kind: EventSegmentOpen, Date: "1910", Owner: EventOwner{Kind: OwnerSegment, ID: "sg-1"}},
	}

	ix, stats := NewIndexFromCollections(stations, segments, events, nil)
	if stats.Events != 3 {
		t.Errorf("got %d indexed events, want 3", stats.Events)
	}
	if got := len(ix.StationEvents("st-1")); got != 2 {
		t.Errorf("st-1: got %d events, want 2", got)
	}
	if got := len(ix.SegmentEvents("sg-1")); got != 1 {
		t.Errorf("sg-1: got %d events, want 1", got)
	}
}

func TestNewIndexFromCollections_IgnoresUnknownOwners(t *testing.T) {
	stations := []Station{{ID: "st-1"}}
	events := []LifecycleEvent{
		{ID: "e1", Kind: EventStationOpen, Date: "1900", Owner: EventOwner{Kind: OwnerStation, ID: "nope"}},
		{ID: "e2", Kind: EventSegmentOpen, Date: "1900", Owner: EventOwner{Kind: OwnerSegment, ID: "nope"}},
	}
	names := []NameRecord{{StationID: "nope", Name: "X", Language: "en"}}

	ix, stats := NewIndexFromCollections(stations, nil, events, names)
	if stats.OrphanRecords != 3 {
		t.Errorf("got %d orphan records, want 3", stats.OrphanRecords)
	}
	if stats.Events != 0 || stats.Names != 0 {
		t.Errorf("orphans must not be indexed: %+v", stats)
	}
	if got := len(ix.StationEvents("st-1")); got != 0 {
		t.Errorf("st-1 should have an empty event bucket, got %d", got)
	}
}

func TestNewIndexFromCollections_DropsRecordsWithoutIDs(t *testing.T) {
	stations := []Station{{ID: ""}, {ID: "st-1"}}
	segments := []Segment{{ID: ""}}
	ix, stats := NewIndexFromCollections(stations, segments, nil, nil)
	if stats.Stations != 1 || stats.Segments != 0 || stats.DroppedRows != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if ix.StationCount() != 1 || ix.SegmentCount() != 0 {
		t.Errorf("unexpected counts: %d stations, %d segments", ix.StationCount(), ix.SegmentCount())
	}
}

func TestIndex_IDListingsSorted(t *testing.T) {
	stations := []Station{{ID: "st-c"}, {ID: "st-a"}, {ID: "st-b"}}
	ix, _ := NewIndexFromCollections(stations, nil, nil, nil)
	want := []string{"st-a", "st-b", "st-c"}
	if got := ix.AllStationIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIndex_SnapshotIDsDiffer(t *testing.T) {
	a, _ := NewIndexFromCollections(nil, nil, nil, nil)
	b, _ := NewIndexFromCollections(nil, nil, nil, nil)
	if a.SnapshotID() == "" || a.SnapshotID() == b.SnapshotID() {
		t.Error("each load must carry its own snapshot ID")
	}
}
