package projlint_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/juju/errors"

	"github.com/projlint/projlint"
)

func mustDecode(t *testing.T, js string) projlint.Item {
	t.Helper()
	item, err := projlint.DecodeItem([]byte(js))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return item
}

type located struct {
	Path      string
	Asset     string
	Transform projlint.Transform
}

func extract(t *testing.T, js string) []located {
	t.Helper()
	locs, err := projlint.ExtractTransforms(mustDecode(t, js))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	var out []located
	for _, l := range locs {
		out = append(out, located{Path: l.Path(), Asset: l.Asset, Transform: l.Transform})
	}
	return out
}

func TestExtractTransforms_PropertiesAndAssets(t *testing.T) {
	got := extract(t, `{
		"properties": {"datetime": "2020-01-01T00:00:00Z", "proj:transform": [30, 0, 100, 0, -30, 200]},
		"assets": {
			"thumbnail": {"href": "thumb.png"},
			"B04": {"href": "b4.tif", "proj:transform": [10, 0, 100, 0, -10, 200]},
			"B02": {"href": "b2.tif", "proj:transform": [20, 0, 100, 0, -20, 200]}
		}
	}`)
	want := []located{
		{Path: "/properties/proj:transform", Transform: projlint.Transform{30, 0, 100, 0, -30, 200}},
		{Path: "/assets/B02/proj:transform", Asset: "B02", Transform: projlint.Transform{20, 0, 100, 0, -20, 200}},
		{Path: "/assets/B04/proj:transform", Asset: "B04", Transform: projlint.Transform{10, 0, 100, 0, -10, 200}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTransforms_AbsentMappings(t *testing.T) {
	for _, js := range []string{
		`{}`,
		`{"type": "Feature"}`,
		`{"properties": null, "assets": null}`,
		`{"properties": {}, "assets": {}}`,
		`{"properties": {"proj:epsg": 32633}, "assets": {"data": {"href": "x.tif"}}}`,
	} {
		if got := extract(t, js); len(got) != 0 {
			t.Fatalf("%s: expected no transforms, got %v", js, got)
		}
	}
}

func TestExtractTransforms_EscapesAssetNames(t *testing.T) {
	got := extract(t, `{"assets": {"a/b~c": {"proj:transform": [1, 0, 0, 0, -1, 0]}}}`)
	if len(got) != 1 || got[0].Path != "/assets/a~1b~0c/proj:transform" {
		t.Fatalf("unexpected %v", got)
	}
	if got[0].Asset != "a/b~c" {
		t.Fatalf("expected raw asset name, got %q", got[0].Asset)
	}
}

func TestExtractTransforms_WrongLength(t *testing.T) {
	item := mustDecode(t, `{"assets": {"b1": {"proj:transform": [1, 0, 0, 0, -1]}}}`)
	_, err := projlint.ExtractTransforms(item)
	if err == nil {
		t.Fatalf("expected error for five elements")
	}
	if !errors.Is(err, errors.NotValid) {
		t.Fatalf("expected NotValid, got %v", err)
	}
}

func TestExtractTransforms_NotNumeric(t *testing.T) {
	for _, js := range []string{
		`{"properties": {"proj:transform": "0,1,0,0,0,-1"}}`,
		`{"properties": {"proj:transform": [0, 1, 0, 0, 0, "x"]}}`,
		`{"properties": {"proj:transform": null}}`,
	} {
		if _, err := projlint.ExtractTransforms(mustDecode(t, js)); err == nil {
			t.Fatalf("%s: expected error", js)
		}
	}
}

func TestDecodeItem_Malformed(t *testing.T) {
	for _, js := range []string{
		`{`,
		`[]`,
		`null`,
		` null `,
		``,
		`"item"`,
		`{"assets": []}`,
		`{"properties": 3}`,
		`{"assets": {"a": null}}`,
		`{"assets": {"ok": {"href": "a.tif"}, "b": null}}`,
	} {
		if _, err := projlint.DecodeItem([]byte(js)); err == nil {
			t.Fatalf("%q: expected error", js)
		}
	}
}

func TestValidateBytes_NullDocumentIsFatal(t *testing.T) {
	for _, js := range []string{`null`, `{"assets": {"a": null}}`} {
		_, err := projlint.ValidateBytes("nulldoc", []byte(js), projlint.Options{})
		if err == nil {
			t.Fatalf("%s: expected error", js)
		}
		if _, ok := projlint.AsIssues(err); ok {
			t.Fatalf("%s: expected a fatal error, not findings: %v", js, err)
		}
	}
}
