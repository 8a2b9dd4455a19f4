package projlint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"
)

// Validate checks every transform of item and returns Issues naming each
// GDAL-like one, or nil. name identifies the item in messages, usually the
// file stem. An item without transforms passes. Malformed transforms are
// returned as plain errors.
func Validate(item Item, name string) error {
	locs, err := ExtractTransforms(item)
	if err != nil {
		return errors.Trace(err)
	}
	var iss Issues
	for _, l := range locs {
		if !l.Transform.LooksLikeGDAL() {
			continue
		}
		msg := fmt.Sprintf("Item %s likely contains a GDAL-like GeoTransform in %s: %s", name, TransformKey, l.Transform)
		iss = AppendIssues(iss, l.Ref.Issue(CodeGDALTransform, msg, "asset", l.Asset, "transform", l.Transform[:]))
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// ValidateBytes decodes and validates one document. Duplicate keys are
// reported according to opt: as warnings under Warn, as the returned Issues
// under Error.
func ValidateBytes(name string, data []byte, opt Options) (warnings Issues, err error) {
	if opt.Strictness.OnDuplicateKey != Ignore {
		dups, err := DetectDuplicateKeys(data, opt)
		if err != nil {
			return nil, errors.Annotatef(err, "parsing item %s", name)
		}
		if len(dups) > 0 && opt.Strictness.OnDuplicateKey == Error {
			return nil, dups
		}
		warnings = dups
	}
	item, err := DecodeItem(data)
	if err != nil {
		return warnings, errors.Annotatef(err, "parsing item %s", name)
	}
	return warnings, Validate(item, name)
}

// ValidateFile reads the document at path and validates it under its stem.
func ValidateFile(path string, opt Options) (Issues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return ValidateBytes(Stem(path), data, opt)
}

// Stem returns the final path element without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return base
}
