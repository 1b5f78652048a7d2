package railatlas

import (
	"encoding/json"
	"net/http"

	"github.com/railatlas/railatlas/resolve"
)

// YearResponse is the presentation payload for one query year.
type YearResponse struct {
	Year       int                       `json:"year"`
	SnapshotID string                    `json:"snapshot_id"`
	Stations   []resolve.ResolvedStation `json:"stations"`
	Segments   []resolve.ResolvedSegment `json:"segments"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	var e errorResponse
	e.Error.Description = msg
	writeJSON(w, status, e)
}
