package geometry

import (
	"math"
	"reflect"
	"testing"
)

func TestNormalizePath_RoundTripAcrossEncodings(t *testing.T) {
	want := [][2]float64{{52.1, 21.0}, {52.2, 21.1}, {52.3, 21.2}}

	flat := []any{
		[]any{52.1, 21.0},
		[]any{52.2, 21.1},
		[]any{52.3, 21.2},
	}
	keyedPositional := []any{
		map[string]any{"f0": 52.1, "f1": 21.0},
		map[string]any{"f0": 52.2, "f1": 21.1},
		map[string]any{"f0": 52.3, "f1": 21.2},
	}
	keyedGeographic := []any{
		map[string]any{"lat": 52.1, "lon": 21.0},
		map[string]any{"lat": 52.2, "lon": 21.1},
		map[string]any{"lat": 52.3, "lon": 21.2},
	}
	wrappedFeature := map[string]any{
		"type": "Feature",
		"geometry": map[string]any{
			"type":        "LineString",
			"coordinates": flat,
		},
	}
	featureCollection := map[string]any{
		"type":     "FeatureCollection",
		"features": []any{wrappedFeature},
	}
	serialized := `[[52.1,21.0],[52.2,21.1],[52.3,21.2]]`

	cases := map[string]any{
		"flat list":          flat,
		"positional keys":    keyedPositional,
		"geographic keys":    keyedGeographic,
		"single feature":     wrappedFeature,
		"feature collection": featureCollection,
		"serialized json":    serialized,
	}
	for name, raw := range cases {
		if got := NormalizePath(raw); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}
}

func TestNormalizePath_DropsMalformedElementsOnly(t *testing.T) {
	raw := []any{
		[]any{52.1, 21.0},
		[]any{"not-a-number", 21.1},
		[]any{52.3, 21.2},
		[]any{52.4},
		map[string]any{"f0": 52.5},
		[]any{math.NaN(), 21.3},
		[]any{52.6, math.Inf(1)},
	}
	want := [][2]float64{{52.1, 21.0}, {52.3, 21.2}}
	if got := NormalizePath(raw); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizePath_UnrecognizedShapes(t *testing.T) {
	cases := map[string]any{
		"nil":                nil,
		"number":             42.0,
		"plain object":       map[string]any{"foo": "bar"},
		"broken json string": "{not json",
		"json scalar string": `"hello"`,
		"empty string":       "",
		"empty feature list": map[string]any{"features": []any{}},
		"non-object feature": map[string]any{"features": []any{"x"}},
	}
	for name, raw := range cases {
		if got := NormalizePath(raw); len(got) != 0 {
			t.Errorf("%s: got %v, want empty", name, got)
		}
	}
}

func TestNormalizePath_SerializedDocument(t *testing.T) {
	raw := `{"type":"FeatureCollection","features":[{"geometry":{"coordinates":[[50.0,19.9],[50.1,20.0]]}}]}`
	want := [][2]float64{{50.0, 19.9}, {50.1, 20.0}}
	if got := NormalizePath(raw); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizePath_PreservesOrder(t *testing.T) {
	raw := []any{
		[]any{3.0, 3.0},
		[]any{1.0, 1.0},
		[]any{2.0, 2.0},
	}
	want := [][2]float64{{3, 3}, {1, 1}, {2, 2}}
	if got := NormalizePath(raw); !reflect.DeepEqual(got, want) {
		t.Errorf("order not preserved: got %v, want %v", got, want)
	}
}

func TestPathLengthKM(t *testing.T) {
	if got := PathLengthKM(nil); got != 0 {
		t.Errorf("empty path: got %f, want 0", got)
	}
	// One degree of latitude is roughly 111 km.
	path := [][2]float64{{52.0, 21.0}, {53.0, 21.0}}
	got := PathLengthKM(path)
	if got < 110 || got > 112 {
		t.Errorf("got %f km, want about 111", got)
	}
}
