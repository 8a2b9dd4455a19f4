// Package fixtures finds the example documents a repository ships.
package fixtures

import (
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("projlint.fixtures")

// DefaultPattern selects JSON files directly inside any directory whose name
// starts with "example", at any depth.
const DefaultPattern = "**/example*/*.json"

// GoToolExclude skips hidden and underscore directories the way the go tool
// does, plus dependency trees. Find descends everywhere unless asked to
// exclude something.
var GoToolExclude = []string{".*", "_*", "vendor", "node_modules"}

// Options controls Find.
type Options struct {
	// Pattern is matched against slash-separated paths relative to the root.
	// `**` matches zero or more directories.
	Pattern string
	// Exclude lists glob patterns for directory base names that are not
	// descended into. The root itself is never excluded.
	Exclude []string
}

// DefaultOptions returns the DefaultPattern with no exclusions.
func DefaultOptions() Options {
	return Options{Pattern: DefaultPattern}
}

// Find walks root and returns the matching file paths, joined onto root and
// sorted. No matches is not an error.
func Find(root string, opt Options) ([]string, error) {
	pattern := opt.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.NotValidf("pattern %q", pattern)
	}
	for _, ex := range opt.Exclude {
		if !doublestar.ValidatePattern(ex) {
			return nil, errors.NotValidf("exclude pattern %q", ex)
		}
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Trace(err)
		}
		if d.IsDir() {
			if rel != "." && excluded(d.Name(), opt.Exclude) {
				logger.Tracef("skipping directory %s", path)
				return filepath.SkipDir
			}
			return nil
		}
		if doublestar.MatchUnvalidated(pattern, filepath.ToSlash(rel)) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Annotatef(err, "locating fixtures under %s", root)
	}
	slices.Sort(found)
	logger.Debugf("found %d fixtures under %s matching %s", len(found), root, pattern)
	return found, nil
}

func excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if doublestar.MatchUnvalidated(p, name) {
			return true
		}
	}
	return false
}
