//go:build !linux

package task

// currentOSThreadID has no portable equivalent outside linux; 0 is logged
// instead (diagnostic-only, never load-bearing).
func currentOSThreadID() int {
	return 0
}
