// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// It covers environment variable management (MustSetenv, MustUnsetenv) and
// in-memory asset trees (WriteFiles, NewMemTrail).
package testutil
