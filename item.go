package projlint

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/juju/errors"
)

// TransformKey is the member name checked in properties and assets.
const TransformKey = "proj:transform"

// Item is the subset of a metadata document that carries transforms. All
// other members are ignored. Members are kept raw so that a malformed
// transform fails only when it is looked at.
type Item struct {
	Properties map[string]json.RawMessage `json:"properties"`
	Assets     map[string]*Asset          `json:"assets"`
}

// Asset is one entry of an item's assets mapping.
type Asset map[string]json.RawMessage

// DecodeItem parses a JSON document. The top level must be an object and
// every asset entry must be an object. A missing or null properties or
// assets member decodes to an empty mapping.
func DecodeItem(data []byte) (Item, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return Item{}, errors.NotValidf("document that is not a JSON object")
	}
	var it Item
	if err := json.Unmarshal(data, &it); err != nil {
		return Item{}, errors.Trace(err)
	}
	for name, a := range it.Assets {
		if a == nil {
			return Item{}, errors.NotValidf("null asset %q", name)
		}
	}
	return it, nil
}
