// Package task implements the task core (K): spawn / await / detach over
// a 1:1 thread model, a monotonic id allocator, and the
// Created→Running→{Completed|Failed} state machine.
//
// Go has no direct equivalent of "create a kernel thread and run entry on
// it": goroutines are M:N multiplexed onto OS threads by the runtime.
// Spawn approximates the source's 1:1 model the same way the Go runtime
// itself does when it needs real thread affinity — runtime.LockOSThread
// inside the spawned goroutine, for the lifetime of the entry call — the
// same technique eventloop.Loop.run uses before it touches a thread-
// affine I/O poller. The state machine itself is adapted directly from
// eventloop.FastState: a lock-free atomic whose transitions are plain
// stores.
package task
