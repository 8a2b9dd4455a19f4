// Package check validates every fixture under a directory tree and collects
// one result per file.
package check

import (
	"context"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"golang.org/x/sync/errgroup"

	"github.com/projlint/projlint"
	"github.com/projlint/projlint/fixtures"
)

var logger = loggo.GetLogger("projlint.check")

// Run locates fixtures under cfg.Root and validates each of them. Files are
// independent: a failing or unreadable file is recorded in its Result and
// does not stop the others. The returned error is reserved for problems with
// the run itself (bad config, unreadable root, cancellation).
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, errors.Trace(err)
	}
	paths, err := fixtures.Find(cfg.Root, fixtures.Options{Pattern: cfg.Pattern, Exclude: cfg.Exclude})
	if err != nil {
		return Report{}, errors.Trace(err)
	}
	if len(paths) == 0 {
		logger.Warningf("no fixtures under %s match %s", cfg.Root, cfg.Pattern)
	}
	results, err := Files(ctx, paths, cfg.Jobs, cfg.options())
	return Report{Results: results}, err
}

// Files validates the given paths with at most jobs running at once. Results
// are in the order of paths.
func Files(ctx context.Context, paths []string, jobs int, opt projlint.Options) ([]Result, error) {
	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = File(path, opt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, errors.Trace(err)
	}
	return results, errors.Trace(ctx.Err())
}

// File validates a single fixture.
func File(path string, opt projlint.Options) Result {
	r := Result{Path: path, Stem: projlint.Stem(path)}
	warnings, err := projlint.ValidateFile(path, opt)
	r.Warnings = warnings
	if iss, ok := projlint.AsIssues(err); ok {
		r.Findings = iss
	} else if err != nil {
		r.Err = err
	}
	switch {
	case r.Err != nil:
		logger.Debugf("%s: error: %v", path, r.Err)
	case len(r.Findings) > 0:
		logger.Debugf("%s: %d findings", path, len(r.Findings))
	default:
		logger.Tracef("%s: ok", path)
	}
	return r
}
