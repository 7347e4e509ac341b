// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import "syscall"

// fatalErrnos stop ReadDirectoryChangesW for good: handle exhaustion, a
// search root that was deleted, and no memory for the notification buffer.
var fatalErrnos = []syscall.Errno{
	4, // ERROR_TOO_MANY_OPEN_FILES
	6, // ERROR_INVALID_HANDLE
	8, // ERROR_NOT_ENOUGH_MEMORY
}
