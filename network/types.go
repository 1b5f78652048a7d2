package network

// Station is a railway station record as loaded from the dataset.
type Station struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	CurrentStatus string  `json:"current_status,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"` // opening fallback, YYYY or YYYY-MM-DD
	Note          string  `json:"note,omitempty"`
	SourceRef     string  `json:"source_ref,omitempty"`
}

// Segment is a track segment between two stations.
type Segment struct {
	ID            string       `json:"id"`
	FromStationID string       `json:"from_station_id"`
	ToStationID   string       `json:"to_station_id"`
	Path          [][2]float64 `json:"path"`
	LengthKM      float64      `json:"length_km"`
	Note          string       `json:"note,omitempty"`
	SourceRef     string       `json:"source_ref,omitempty"`
}

// EventKind enumerates the lifecycle event types carried by the dataset.
type EventKind string

const (
	EventStationOpen     EventKind = "station_open"
	EventStationClose    EventKind = "station_close"
	EventSegmentOpen     EventKind = "segment_open"
	EventSegmentClose    EventKind = "segment_close"
	EventElectrification EventKind = "electrification"
	EventGaugeChange     EventKind = "gauge_change"
)

// OwnerKind discriminates the entity an event belongs to.
type OwnerKind int

const (
	OwnerStation OwnerKind = iota
	OwnerSegment
)

// EventOwner references the single entity an event belongs to. An event
// belongs to exactly one station or exactly one segment, never both.
type EventOwner struct {
	Kind OwnerKind
	ID   string
}

// LifecycleEvent is an immutable dated fact about one entity.
type LifecycleEvent struct {
	ID          string
	Kind        EventKind
	Date        string // raw as loaded; year extracted at resolve time
	Owner       EventOwner
	Description string
}

// NameRecord is one alternate name for a station in one language. A station
// may carry several records for the same language.
type NameRecord struct {
	StationID string
	Name      string
	Language  string
	ValidFrom string // unused by resolution, kept for completeness
	ValidTo   string
}
