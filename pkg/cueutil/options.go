// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize caps how many bytes a single document may contain (1MB).
const DefaultMaxFileSize int64 = 1 << 20

type (
	decodeOptions struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option configures a decode call.
	Option func(*decodeOptions)
)

func defaultOptions() decodeOptions {
	return decodeOptions{
		maxFileSize: DefaultMaxFileSize,
		filename:    "<input>",
	}
}

// WithFilename names the document in error messages.
func WithFilename(name string) Option {
	return func(o *decodeOptions) {
		if name != "" {
			o.filename = name
		}
	}
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(o *decodeOptions) {
		o.maxFileSize = size
	}
}

// WithConcrete requires every field to be concrete after unification.
// Optional-heavy documents (config, manifests) leave this off.
func WithConcrete(concrete bool) Option {
	return func(o *decodeOptions) {
		o.concrete = concrete
	}
}
