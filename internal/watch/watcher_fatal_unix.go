// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import "syscall"

// fatalErrnos are inotify resource exhaustion errors: the watch limit and
// the per-process and system-wide descriptor limits.
var fatalErrnos = []syscall.Errno{syscall.ENOSPC, syscall.EMFILE, syscall.ENFILE}
