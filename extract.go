package projlint

import (
	"maps"
	"slices"

	json "github.com/goccy/go-json"
	"github.com/juju/errors"
)

// Located is a transform together with where it was found.
type Located struct {
	Ref       PathRef
	Asset     string // empty for the item properties
	Transform Transform
}

// Path returns the JSON Pointer of the transform.
func (l Located) Path() string { return l.Ref.Pointer() }

// ExtractTransforms collects every `proj:transform` of an item: the one in
// properties first, then one per asset in asset-name order. Both sources
// contribute. A value that is not an array of exactly six numbers is an error.
func ExtractTransforms(item Item) ([]Located, error) {
	var out []Located
	if raw, ok := item.Properties[TransformKey]; ok {
		l, err := locate(Root().Field("properties").Field(TransformKey), "", raw)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	for _, name := range slices.Sorted(maps.Keys(item.Assets)) {
		a := item.Assets[name]
		if a == nil {
			return nil, errors.NotValidf("null asset %q", name)
		}
		raw, ok := (*a)[TransformKey]
		if !ok {
			continue
		}
		l, err := locate(Root().Field("assets").Field(name).Field(TransformKey), name, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func locate(ref PathRef, asset string, raw json.RawMessage) (Located, error) {
	var vals []float64
	if err := json.Unmarshal(raw, &vals); err != nil {
		return Located{}, errors.Annotatef(err, "decoding %s", ref.Pointer())
	}
	t, err := ParseTransform(vals)
	if err != nil {
		return Located{}, errors.Annotate(err, ref.Pointer())
	}
	return Located{Ref: ref, Asset: asset, Transform: t}, nil
}
