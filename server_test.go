package railatlas

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/railatlas/railatlas/config"
	"github.com/railatlas/railatlas/network"
	"github.com/railatlas/railatlas/resolve"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	stations := []network.Station{
		{ID: "st-1", Name: "Alpha", Latitude: 52.1, Longitude: 21.0},
		{ID: "st-2", Name: "Beta", Latitude: 52.2, Longitude: 21.1},
	}
	segments := []network.Segment{
		{ID: "sg-1", FromStationID: "st-1", ToStationID: "st-2",
			Path: [][2]float64{{52.1, 21.0}, {52.2, 21.1}}},
	}
	events := []network.LifecycleEvent{
		{ID: "e1", Kind: network.EventStationOpen, Date: "1898",
			Owner: network.EventOwner{Kind: network.OwnerStation, ID: "st-1"}},
		{ID: "e2", Kind: network.EventStationClose, Date: "1975",
			Owner: network.EventOwner{Kind: network.OwnerStation, ID: "st-2"}},
		{ID: "e3", Kind: network.EventSegmentOpen, Date: "1898",
			Owner: network.EventOwner{Kind: network.OwnerSegment, ID: "sg-1"}},
	}
	names := []network.NameRecord{
		{StationID: "st-1", Name: "Alfa", Language: "ru"},
	}
	ix, _ := network.NewIndexFromCollections(stations, segments, events, names)

	cfg := &config.AppConfig{}
	cfg.Server.Port = 0
	cfg.Query.MinYear = config.DefaultMinYear
	cfg.Query.MaxYear = config.DefaultMaxYear
	return NewServer(cfg, ix)
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func TestHandleNetworkForYear_OpeningYear(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "/api/network/1898")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var resp YearResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Year != 1898 {
		t.Errorf("year: got %d", resp.Year)
	}
	if resp.SnapshotID == "" {
		t.Error("snapshot_id missing")
	}

	states := map[string]resolve.State{}
	for _, st := range resp.Stations {
		states[st.ID] = st.State
	}
	if states["st-1"] != resolve.StateNew {
		t.Errorf("st-1: got %s, want new", states["st-1"])
	}
	if len(resp.Segments) != 1 || resp.Segments[0].State != resolve.StateNew {
		t.Errorf("segments: %+v", resp.Segments)
	}

	for _, st := range resp.Stations {
		if st.ID == "st-1" && st.AlternativeNames["name:ru"] != "Alfa" {
			t.Errorf("alternative names not attached: %v", st.AlternativeNames)
		}
	}
}

func TestHandleNetworkForYear_ExcludesClosedStation(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "/api/network/1980")
	var resp YearResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, st := range resp.Stations {
		if st.ID == "st-2" {
			t.Error("st-2 closed 1975 must not appear in 1980")
		}
	}
}

func TestHandleNetworkForYear_InvalidYear(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/api/network/abc", "/api/network/99"} {
		rec := doRequest(t, s, path)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", path, rec.Code)
		}
		var e errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil || e.Error.Description == "" {
			t.Errorf("%s: malformed error payload %s", path, rec.Body.String())
		}
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var h healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &h); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Status != "ok" || h.Stations != 2 || h.Segments != 1 || h.Events != 3 {
		t.Errorf("unexpected health payload: %+v", h)
	}
}
