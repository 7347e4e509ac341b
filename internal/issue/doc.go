// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// An ActionableError records what the CLI was doing, which asset or file was
// involved, and what the user can try next. Errors may point at an entry of
// the Markdown issue catalog, which the CLI renders with glamour in verbose
// mode.
package issue
