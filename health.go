package railatlas

import (
	"net/http"
)

type healthResponse struct {
	Status     string `json:"status"`
	SnapshotID string `json:"snapshot_id"`
	Stations   int    `json:"stations"`
	Segments   int    `json:"segments"`
	Events     int    `json:"events"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		SnapshotID: s.net.SnapshotID(),
		Stations:   s.net.StationCount(),
		Segments:   s.net.SegmentCount(),
		Events:     s.net.EventCount(),
	})
}
