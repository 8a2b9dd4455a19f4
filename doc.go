// Package projlint checks STAC-style metadata items for transforms encoded in
// the wrong convention.
//
// The projection extension stores the pixel-to-world mapping of an asset in
// `proj:transform` as an affine transform [a, b, c, d, e, f]. Raster tooling
// built on GDAL exposes the same geometry as a GeoTransform
// [c, a, b, f, d, e], and copying that tuple verbatim is a common mistake.
// projlint flags transforms whose layout matches the GeoTransform pattern.
//
// - Classification on a fixed-size Transform (LooksLikeGDAL)
// - Extraction from item properties and every asset (ExtractTransforms)
// - A stable error model via Issues (JSON Pointer, code, message)
// - Optional duplicate-key detection, since a repeated key makes the checked value ambiguous
//
// Typical usage:
//
//	item, err := projlint.DecodeItem(data)
//	err = projlint.Validate(item, projlint.Stem(path))
//	if iss, ok := projlint.AsIssues(err); ok {
//		// GDAL-like transforms found
//	}
//
// Locating fixture files lives in package fixtures, running over a tree in
// package check, and the command line tool in cmd/projlint.
package projlint
