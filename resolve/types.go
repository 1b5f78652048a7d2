package resolve

import (
	"github.com/railatlas/railatlas/network"
)

// State is the categorical state of an entity for one query year. Exactly
// one value applies per entity per year, or the entity is excluded from the
// result set entirely.
type State string

const (
	StatePlanned     State = "planned"
	StateExisting    State = "existing"
	StateNew         State = "new"
	StateElectrified State = "electrified"
	StateClosed      State = "closed"

	// StateGaugeChange is a valid state no resolution rule currently
	// derives. It is reserved so a future rule has a slot.
	StateGaugeChange State = "gauge_change"
)

// ResolvedStation is a station enriched with its state and deduplicated
// alternate names for one query year.
type ResolvedStation struct {
	network.Station
	State            State             `json:"state"`
	AlternativeNames map[string]string `json:"alternative_names"`
}

// ResolvedSegment is a segment enriched with its state for one query year.
type ResolvedSegment struct {
	network.Segment
	State State `json:"state"`
}
