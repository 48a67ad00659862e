// Package registry implements the thread registry (G): a process-wide
// singleton tracking every participating thread's GC roots, so a
// collector can enumerate them.
//
// It is adapted from eventloop's promise registry (registry.go): a
// mutex-guarded singly-linked list, with Scavenge performing a bounded
// linear walk that splices out dead nodes immediately (no compaction
// step). Two differences follow directly from the source spec rather
// than from taste: nodes are held by strong reference
// (GC roots must never be collected out from under the registry, unlike
// eventloop's weak-pointer promise entries), and Go has no thread-local
// storage, so callers identify "the current thread" explicitly by a
// threadID of their own that they pass to Register and every later call
// (Register does not issue ids), rather than the registry discovering it
// via a pthread_self()-keyed thread-local pointer.
package registry
