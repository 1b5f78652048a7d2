package network

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/railatlas/railatlas/geometry"
)

// NewIndexFromSQLite builds an index from an embedded SQLite dataset. The
// store is read through a single logical connection for the whole load; the
// driver owns its internal concurrency.
func NewIndexFromSQLite(ctx context.Context, path string) (*Index, LoadStats, error) {
	db, err := sql.Open("sqlite", path+"?_journal=WAL&_fk=1")
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open dataset store: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		return nil, LoadStats{}, fmt.Errorf("ping dataset store %s: %w", path, err)
	}

	ix := NewIndex()
	var stats LoadStats
	if err := loadStationsSQL(ctx, db, ix, &stats); err != nil {
		return nil, LoadStats{}, err
	}
	if err := loadSegmentsSQL(ctx, db, ix, &stats); err != nil {
		return nil, LoadStats{}, err
	}
	if err := loadEventsSQL(ctx, db, ix, &stats); err != nil {
		return nil, LoadStats{}, err
	}
	if err := loadNamesSQL(ctx, db, ix, &stats); err != nil {
		return nil, LoadStats{}, err
	}
	logLoad(ix, stats)
	return ix, stats, nil
}

func loadStationsSQL(ctx context.Context, db *sql.DB, ix *Index, stats *LoadStats) error {
	rows, err := db.QueryContext(ctx, `
		SELECT station_id, name, lat, lon,
		       COALESCE(current_status, ''), COALESCE(created_at, ''),
		       COALESCE(note, ''), COALESCE(source_ref, '')
		FROM stations`)
	if err != nil {
		return fmt.Errorf("query stations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude,
			&s.CurrentStatus, &s.CreatedAt, &s.Note, &s.SourceRef); err != nil {
			stats.DroppedRows++
			continue
		}
		if s.ID == "" {
			stats.DroppedRows++
			continue
		}
		ix.addStation(s)
		stats.Stations++
	}
	return rows.Err()
}

func loadSegmentsSQL(ctx context.Context, db *sql.DB, ix *Index, stats *LoadStats) error {
	rows, err := db.QueryContext(ctx, `
		SELECT segment_id, COALESCE(from_station_id, ''), COALESCE(to_station_id, ''),
		       COALESCE(geometry, ''), COALESCE(note, ''), COALESCE(source_ref, '')
		FROM segments`)
	if err != nil {
		return fmt.Errorf("query segments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s Segment
		var rawGeom string
		if err := rows.Scan(&s.ID, &s.FromStationID, &s.ToStationID,
			&rawGeom, &s.Note, &s.SourceRef); err != nil {
			stats.DroppedRows++
			continue
		}
		if s.ID == "" {
			stats.DroppedRows++
			continue
		}
		s.Path = geometry.NormalizePath(rawGeom)
		s.LengthKM = geometry.PathLengthKM(s.Path)
		ix.addSegment(s)
		stats.Segments++
	}
	return rows.Err()
}

func loadEventsSQL(ctx context.Context, db *sql.DB, ix *Index, stats *LoadStats) error {
	rows, err := db.QueryContext(ctx, `
		SELECT event_id, event_type, COALESCE(date, ''),
		       COALESCE(station_id, ''), COALESCE(segment_id, ''), COALESCE(description, '')
		FROM lifecycle_events`)
	if err != nil {
		return fmt.Errorf("query lifecycle events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, kind, date, stationID, segmentID, desc string
		if err := rows.Scan(&id, &kind, &date, &stationID, &segmentID, &desc); err != nil {
			stats.DroppedRows++
			continue
		}
		if id == "" || kind == "" || (stationID == "") == (segmentID == "") {
			stats.DroppedRows++
			continue
		}
		owner := EventOwner{Kind: OwnerStation, ID: stationID}
		if segmentID != "" {
			owner = EventOwner{Kind: OwnerSegment, ID: segmentID}
		}
		ev := LifecycleEvent{ID: id, Kind: EventKind(kind), Date: date, Owner: owner, Description: desc}
		if !ix.addEvent(ev) {
			stats.OrphanRecords++
			continue
		}
		stats.Events++
	}
	return rows.Err()
}

func loadNamesSQL(ctx context.Context, db *sql.DB, ix *Index, stats *LoadStats) error {
	rows, err := db.QueryContext(ctx, `
		SELECT station_id, COALESCE(name, ''), COALESCE(language, ''),
		       COALESCE(valid_from, ''), COALESCE(valid_to, '')
		FROM station_names`)
	if err != nil {
		return fmt.Errorf("query station names: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var nr NameRecord
		if err := rows.Scan(&nr.StationID, &nr.Name, &nr.Language, &nr.ValidFrom, &nr.ValidTo); err != nil {
			stats.DroppedRows++
			continue
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
	return rows.Err()
}
