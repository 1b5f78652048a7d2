package railatlas

import (
	"strconv"
	"strings"
)

// QueryError is a request validation failure reported as HTTP 400.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// parseYear validates the year path parameter: an integer within the
// configured bounds. Years with no matching events are valid queries; they
// simply resolve to planned or excluded per entity.
func (s *Server) parseYear(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &QueryError{Msg: "Year must be an integer."}
	}
	min, max := s.cfg.Query.MinYear, s.cfg.Query.MaxYear
	if year < min || year > max {
		return 0, &QueryError{Msg: "Year out of range " +
			strconv.Itoa(min) + ".." + strconv.Itoa(max) + "."}
	}
	return year, nil
}
