package task

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/lumen-lang/lumenc/result"
	"github.com/lumen-lang/lumenc/rtlog"
)

// Entry is a task's body: it receives a copy of the spawn-time argument
// bytes and returns the Result that decides whether the task completes or
// fails.
type Entry func(args []byte) result.Any

// Task is a unit of concurrent work backed by one OS thread (for the
// duration of Entry, via runtime.LockOSThread).
type Task struct {
	id    uint64
	state *fastState

	args []byte

	result   result.Any
	done     chan struct{}
	detached atomic.Bool
	consumed atomic.Bool

	osThreadID atomic.Int64

	log *rtlog.Logger
}

// ID returns the task's monotonic id.
func (t *Task) ID() uint64 { return t.id }

// State returns the task's current lifecycle state.
func (t *Task) State() State { return t.state.Load() }

// Handle is a stable reference to a Task. The zero Handle and a Handle
// wrapping a nil Task are both the sentinel "invalid" handle.
type Handle struct {
	id      uint64
	task    *Task
	invalid bool
}

// ID returns the handle's task id, or 0 for an invalid handle.
func (h *Handle) ID() uint64 {
	if h == nil || h.task == nil {
		return 0
	}
	return h.id
}

// Valid reports whether h refers to a live task record.
func (h *Handle) Valid() bool {
	return h != nil && h.task != nil && !h.invalid
}

var nextTaskID atomic.Uint64

// Spawn creates the task record, copies args so the caller's buffer can be
// freed immediately, assigns a monotonic id, and starts the
// Created→Running→{Completed|Failed} trampoline on its own goroutine
// pinned to an OS thread for the duration of entry.
//
// A nil entry, or a ctx already Done at call time (the stand-in for the
// source's thread-creation-failure path — Go goroutines otherwise cannot
// fail to start), yields a null (invalid) Handle without starting
// anything.
func Spawn(ctx context.Context, entry Entry, args []byte, log *rtlog.Logger) *Handle {
	if entry == nil {
		return &Handle{invalid: true}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		return &Handle{invalid: true}
	default:
	}

	var argsCopy []byte
	if len(args) > 0 {
		argsCopy = make([]byte, len(args))
		copy(argsCopy, args)
	}

	t := &Task{
		id:    nextTaskID.Add(1),
		state: newFastState(),
		args:  argsCopy,
		done:  make(chan struct{}),
		log:   rtlog.Or(log),
	}

	go t.trampoline(entry)

	return &Handle{id: t.id, task: t}
}

// trampoline runs on its own goroutine: it pins the goroutine to an OS
// thread for entry's lifetime (the closest Go equivalent of the source's
// one-thread-per-task model), transitions Created→Running immediately,
// invokes entry, stores the result, and transitions to Completed or
// Failed based on the result's tag.
func (t *Task) trampoline(entry Entry) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	t.osThreadID.Store(int64(currentOSThreadID()))
	t.state.Store(Running)
	t.log.Debug("task.run").Uint64("task_id", t.id).Int("os_thread_id", int(t.osThreadID.Load())).Log("task running")

	r := entry(t.args)
	t.result = r

	if r.IsOk() {
		t.state.Store(Completed)
	} else {
		t.state.Store(Failed)
	}
	t.log.Debug("task.run").Uint64("task_id", t.id).Str("state", t.state.Load().String()).Log("task finished")

	close(t.done)
}

// Await blocks until the task's thread joins, then returns its stored
// Result. An invalid or detached handle, or a handle already consumed by
// a prior Await (Await is single-consumer), returns a well-formed Err
// immediately rather than blocking or panicking.
func Await(h *Handle) result.Any {
	if !h.Valid() || h.task.detached.Load() {
		return result.ErrString("Task handle is invalid or detached")
	}
	if !h.task.consumed.CompareAndSwap(false, true) {
		return result.ErrString("Task handle is invalid or detached")
	}
	<-h.task.done
	return h.task.result
}

// IsCompleted reports whether h's task has reached a terminal state
// (Completed or Failed).
func IsCompleted(h *Handle) bool {
	if !h.Valid() {
		return false
	}
	return h.task.state.IsTerminal()
}

// Detach marks h's task detached: it may no longer be awaited, and its
// result is dropped once the trampoline finishes.
func Detach(h *Handle) {
	if !h.Valid() {
		return
	}
	h.task.detached.Store(true)
}

// Yield hints to the Go scheduler that the calling goroutine is willing to
// let other goroutines run, the portable analogue of a 1:1 runtime's
// sched_yield.
func Yield() {
	runtime.Gosched()
}
