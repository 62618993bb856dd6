// Package document implements the structured document shared by JSON and
// YAML files, and the additive deep merge applied to them.
//
// A document is a plain Go value built from:
//
//	nil, bool, int64, float64, string, []any, map[string]any
//
// Codecs convert to and from this form at the boundary (ParseJSON,
// ParseYAML, EncodeJSON, EncodeYAML) so that Merge has a single code path
// regardless of the file format on disk.
package document
