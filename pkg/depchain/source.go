// SPDX-License-Identifier: MPL-2.0

package depchain

// Source is the file lookup facility the resolver consumes. *trail.Trail
// implements it.
type Source interface {
	// Find maps a logical path to the absolute path of an existing file.
	Find(logical string) (string, bool)
	// FindDirectory maps a logical directory to an existing absolute directory.
	FindDirectory(logical string) (string, bool)
	// Entries lists the entry names inside an absolute directory, in the
	// order directory expansion must follow.
	Entries(dir string) ([]string, error)
	// Extensions returns the recognized file extensions in precedence order.
	Extensions() []string
	// IsDir reports whether an absolute path is a directory.
	IsDir(abs string) (bool, error)
	// ReadFile returns the raw content of an absolute path.
	ReadFile(abs string) ([]byte, error)
}
