// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE (and JSON, which CUE accepts verbatim) documents
// against an embedded schema definition.
//
// Both the configuration file and package manifests (bower.json) go through
// the same three steps: compile the schema, unify the document with one of the
// schema's definitions, then validate and decode. Errors carry the offending
// field path in JSON-path notation:
//
//	config.cue: search_paths[1]: conflicting values 3 and string
package cueutil
