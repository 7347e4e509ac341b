// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Decode validates data against the definition (e.g. "#Manifest") found in
// schema and decodes the unified value into a T.
func Decode[T any](schema string, data []byte, definition string, opts ...Option) (*T, error) {
	unified, options, err := unify(schema, data, definition, opts)
	if err != nil {
		return nil, err
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, options.filename)
	}
	return &out, nil
}

// DecodeMap is Decode for callers that merge the document into a generic
// key/value store such as Viper.
func DecodeMap(schema string, data []byte, definition string, opts ...Option) (map[string]any, error) {
	out, err := Decode[map[string]any](schema, data, definition, opts...)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func unify(schema string, data []byte, definition string, opts []Option) (cue.Value, decodeOptions, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if err := CheckFileSize(data, options.maxFileSize, options.filename); err != nil {
		return cue.Value{}, options, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if err := schemaValue.Err(); err != nil {
		return cue.Value{}, options, fmt.Errorf("internal error: failed to compile schema: %w", err)
	}

	root := schemaValue.LookupPath(cue.ParsePath(definition))
	if err := root.Err(); err != nil {
		return cue.Value{}, options, fmt.Errorf("internal error: schema definition %s not found: %w", definition, err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(options.filename))
	if err := doc.Err(); err != nil {
		return cue.Value{}, options, FormatError(err, options.filename)
	}

	unified := root.Unify(doc)
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return cue.Value{}, options, FormatError(err, options.filename)
	}

	return unified, options, nil
}

// CheckFileSize rejects documents larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, size, maxSize)
	}
	return nil
}
