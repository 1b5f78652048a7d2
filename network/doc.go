/*
Package network provides loading and indexing of the historical railway
dataset: stations, segments, lifecycle events and alternate-name records.

The package is data-source agnostic at its core — an Index is an immutable
in-memory grouping of the four collections, and loaders exist for CSV
datasets (zip archive or directory) and for an embedded SQLite store.

# Basic Usage

	ix, stats, err := network.NewIndexFromZipFile("dataset.zip")
	if err != nil {
	    log.Fatal().Err(err).Msg("dataset unavailable")
	}
	events := ix.StationEvents("st-104")

Loading is a one-time, session-scoped initialization. A failed load returns
an error and no index; there is no partially-populated state. Row-level
defects (bad coordinates, events without exactly one owner, records pointing
at unknown entities) are dropped and counted in LoadStats, never fatal.

The index applies no ordering to an entity's events; temporal ordering is a
query-time concern of the resolve package.
*/
package network
