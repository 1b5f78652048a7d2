package network

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/railatlas/railatlas/geometry"
)

// The four dataset files a deployment ships, as a zip archive or a directory.
const (
	fileStations = "stations.csv"
	fileSegments = "segments.csv"
	fileEvents   = "events.csv"
	fileNames    = "names.csv"
)

// LoadStats counts what a load kept and what it dropped. Row-level defects
// are tolerated; only a missing or unreadable source is fatal.
type LoadStats struct {
	Stations      int
	Segments      int
	Events        int
	Names         int
	DroppedRows   int
	OrphanRecords int // events/names referencing unknown entities
}

// NewIndexFromZipBytes builds an index from a dataset zip held in memory.
func NewIndexFromZipBytes(b []byte) (*Index, LoadStats, error) {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open dataset zip: %w", err)
	}
	return loadFromZipReader(zr)
}

// NewIndexFromZipFile builds an index from a dataset zip on disk.
func NewIndexFromZipFile(path string) (*Index, LoadStats, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open dataset zip %s: %w", path, err)
	}
	defer zr.Close()
	return loadFromZipReader(&zr.Reader)
}

// NewIndexFromDir builds an index from the four CSV files in a directory.
func NewIndexFromDir(dir string) (*Index, LoadStats, error) {
	ix := NewIndex()
	var stats LoadStats
	// Entities before events and names so ownership can be checked.
	for _, name := range []string{fileStations, fileSegments, fileEvents, fileNames} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, LoadStats{}, fmt.Errorf("open dataset file %s: %w", name, err)
		}
		err = consumeCSV(ix, &stats, name, f)
		f.Close()
		if err != nil {
			return nil, LoadStats{}, err
		}
	}
	logLoad(ix, stats)
	return ix, stats, nil
}

func loadFromZipReader(zr *zip.Reader) (*Index, LoadStats, error) {
	files := map[string]*zip.File{}
	for _, f := range zr.File {
		files[strings.ToLower(filepath.Base(f.Name))] = f
	}
	ix := NewIndex()
	var stats LoadStats
	for _, name := range []string{fileStations, fileSegments, fileEvents, fileNames} {
		f, ok := files[name]
		if !ok {
			return nil, LoadStats{}, fmt.Errorf("dataset zip is missing %s", name)
		}
		r, err := f.Open()
		if err != nil {
			return nil, LoadStats{}, fmt.Errorf("open %s: %w", name, err)
		}
		err = consumeCSV(ix, &stats, name, r)
		r.Close()
		if err != nil {
			return nil, LoadStats{}, err
		}
	}
	logLoad(ix, stats)
	return ix, stats, nil
}

func logLoad(ix *Index, stats LoadStats) {
	log.Info().
		Str("snapshot_id", ix.SnapshotID()).
		Int("stations", stats.Stations).
		Int("segments", stats.Segments).
		Int("events", stats.Events).
		Int("names", stats.Names).
		Int("dropped_rows", stats.DroppedRows).
		Int("orphan_records", stats.OrphanRecords).
		Msg("dataset loaded")
}

func consumeCSV(ix *Index, stats *LoadStats, name string, r io.Reader) error {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	field := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	switch name {
	case fileStations:
		sID := idx("station_id")
		sName := idx("name")
		sLat := idx("lat")
		sLon := idx("lon")
		sStatus := idx("current_status")
		sCreated := idx("created_at")
		sNote := idx("note")
		sRef := idx("source_ref")
		for _, row := range rec[1:] {
			id := field(row, sID)
			lat, errLat := strconv.ParseFloat(field(row, sLat), 64)
			lon, errLon := strconv.ParseFloat(field(row, sLon), 64)
			if id == "" || errLat != nil || errLon != nil {
				stats.DroppedRows++
				continue
			}
			ix.addStation(Station{
				ID:            id,
				Name:          field(row, sName),
				Latitude:      lat,
				Longitude:     lon,
				CurrentStatus: field(row, sStatus),
				CreatedAt:     field(row, sCreated),
				Note:          field(row, sNote),
				SourceRef:     field(row, sRef),
			})
			stats.Stations++
		}
	case fileSegments:
		sID := idx("segment_id")
		sFrom := idx("from_station_id")
		sTo := idx("to_station_id")
		sGeom := idx("geometry")
		sNote := idx("note")
		sRef := idx("source_ref")
		for _, row := range rec[1:] {
			id := field(row, sID)
			if id == "" {
				stats.DroppedRows++
				continue
			}
			path := geometry.NormalizePath(field(row, sGeom))
			ix.addSegment(Segment{
				ID:            id,
				FromStationID: field(row, sFrom),
				ToStationID:   field(row, sTo),
				Path:          path,
				LengthKM:      geometry.PathLengthKM(path),
				Note:          field(row, sNote),
				SourceRef:     field(row, sRef),
			})
			stats.Segments++
		}
	case fileEvents:
		eID := idx("event_id")
		eType := idx("event_type")
		eDate := idx("date")
		eStation := idx("station_id")
		eSegment := idx("segment_id")
		eDesc := idx("description")
		for _, row := range rec[1:] {
			id := field(row, eID)
			kind := field(row, eType)
			stationID := field(row, eStation)
			segmentID := field(row, eSegment)
			// Exactly one owner reference must be present.
			if id == "" || kind == "" || (stationID == "") == (segmentID == "") {
				stats.DroppedRows++
				continue
			}
			owner := EventOwner{Kind: OwnerStation, ID: stationID}
			if segmentID != "" {
				owner = EventOwner{Kind: OwnerSegment, ID: segmentID}
			}
			ev := LifecycleEvent{
				ID:          id,
				Kind:        EventKind(kind),
				Date:        field(row, eDate),
				Owner:       owner,
				Description: field(row, eDesc),
			}
			if !ix.addEvent(ev) {
				stats.OrphanRecords++
				continue
			}
			stats.Events++
		}
	case fileNames:
		nStation := idx("station_id")
		nName := idx("name")
		nLang := idx("language")
		nFrom := idx("valid_from")
		nTo := idx("valid_to")
		for _, row := range rec[1:] {
			nr := NameRecord{
				StationID: field(row, nStation),
				Name:      field(row, nName),
				Language:  field(row, nLang),
				ValidFrom: field(row, nFrom),
				ValidTo:   field(row, nTo),
			}
			if nr.StationID == "" {
				stats.DroppedRows++
				continue
			}
			if !ix.addNameRecord(nr) {
				stats.OrphanRecords++
				continue
			}
			stats.Names++
		}
	}
	return nil
}
