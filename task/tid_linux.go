//go:build linux

package task

import "golang.org/x/sys/unix"

// currentOSThreadID reads the kernel thread id of the calling OS thread,
// for diagnostic logging only (see trampoline) — it is never
// load-bearing for task-core correctness.
func currentOSThreadID() int {
	return unix.Gettid()
}
