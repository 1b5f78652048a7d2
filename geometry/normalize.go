package geometry

import (
	"encoding/json"
	"math"
)

// NormalizePath converts any of the accepted path representations into an
// ordered sequence of finite coordinate pairs. Accepted top-level shapes, in
// dispatch order:
//
//  1. a JSON string — parsed and re-dispatched on the decoded value
//  2. a wrapping document — a feature collection (first feature taken), a
//     single feature, or a bare geometry object with "coordinates"
//  3. a flat list of coordinate pairs
//
// Each pair may be a plain 2-element sequence, a record keyed "f0"/"f1", or
// a record keyed "lat"/"lon" (emitted as (lat, lon)). Elements that cannot
// be coerced to two finite numbers are dropped; an unrecognized top-level
// shape yields an empty sequence. Surviving pairs keep their input order.
func NormalizePath(raw any) [][2]float64 {
	switch v := raw.(type) {
	case string:
		return normalizeSerialized(v)
	case map[string]any:
		return normalizeDocument(v)
	case []any:
		return normalizePairList(v)
	case [][2]float64:
		return dropNonFinite(v)
	default:
		return [][2]float64{}
	}
}

func normalizeSerialized(s string) [][2]float64 {
	if s == "" {
		return [][2]float64{}
	}
	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return [][2]float64{}
	}
	switch v := decoded.(type) {
	case map[string]any:
		return normalizeDocument(v)
	case []any:
		return normalizePairList(v)
	default:
		return [][2]float64{}
	}
}

// normalizeDocument unwraps GeoJSON-shaped documents down to their
// coordinate list.
func normalizeDocument(doc map[string]any) [][2]float64 {
	if features, ok := doc["features"].([]any); ok {
		if len(features) == 0 {
			return [][2]float64{}
		}
		first, ok := features[0].(map[string]any)
		if !ok {
			return [][2]float64{}
		}
		return normalizeDocument(first)
	}
	if geom, ok := doc["geometry"].(map[string]any); ok {
		return normalizeDocument(geom)
	}
	if coords, ok := doc["coordinates"].([]any); ok {
		return normalizePairList(coords)
	}
	return [][2]float64{}
}

func normalizePairList(list []any) [][2]float64 {
	out := make([][2]float64, 0, len(list))
	for _, el := range list {
		pair, ok := coercePair(el)
		if !ok {
			continue
		}
		out = append(out, pair)
	}
	return out
}

func coercePair(el any) ([2]float64, bool) {
	switch v := el.(type) {
	case []any:
		if len(v) < 2 {
			return [2]float64{}, false
		}
		a, okA := toFinite(v[0])
		b, okB := toFinite(v[1])
		if !okA || !okB {
			return [2]float64{}, false
		}
		return [2]float64{a, b}, true
	case map[string]any:
		if a, ok := toFinite(v["f0"]); ok {
			if b, ok2 := toFinite(v["f1"]); ok2 {
				return [2]float64{a, b}, true
			}
			return [2]float64{}, false
		}
		lat, okLat := toFinite(v["lat"])
		lon, okLon := toFinite(v["lon"])
		if okLat && okLon {
			return [2]float64{lat, lon}, true
		}
		return [2]float64{}, false
	default:
		return [2]float64{}, false
	}
}

func toFinite(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func dropNonFinite(pts [][2]float64) [][2]float64 {
	out := make([][2]float64, 0, len(pts))
	for _, p := range pts {
		if math.IsNaN(p[0]) || math.IsInf(p[0], 0) || math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
			continue
		}
		out = append(out, p)
	}
	return out
}
