/*
Package geometry normalizes heterogeneous path encodings into a canonical
ordered sequence of coordinate pairs.

Historical datasets carry segment geometry in whatever shape the digitizing
tool produced: serialized JSON text, GeoJSON-style wrapping documents, or
bare pair lists with positional or geographic keys. NormalizePath accepts a
small closed set of those shapes and degrades per element, so one bad point
never discards a whole path.
*/
package geometry
