package railatlas

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/railatlas/railatlas/internal/metrics"
)

// handleNetworkForYear serves the resolved network for one query year.
func (s *Server) handleNetworkForYear(w http.ResponseWriter, r *http.Request) {
	year, err := s.parseYear(chi.URLParam(r, "year"))
	if err != nil {
		metrics.YearQueries.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	stations, segments := s.resolver.QueryForYear(year)
	elapsed := time.Since(start)
	metrics.ResolveDuration.Observe(elapsed.Seconds())
	metrics.YearQueries.WithLabelValues("ok").Inc()

	log.Debug().
		Int("year", year).
		Int("stations", len(stations)).
		Int("segments", len(segments)).
		Dur("elapsed", elapsed).
		Msg("year query resolved")

	writeJSON(w, http.StatusOK, YearResponse{
		Year:       year,
		SnapshotID: s.net.SnapshotID(),
		Stations:   stations,
		Segments:   segments,
	})
}
