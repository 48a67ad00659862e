package registry

import (
	"sync"
	"time"

	"github.com/lumen-lang/lumenc/diagnostic"
	"github.com/lumen-lang/lumenc/rtlog"
)

// node is one registered thread's entry in the registry's linked list.
type node struct {
	threadID     uint64
	roots        map[uintptr]struct{}
	registeredAt time.Time
	next         *node
}

// Registry is the process-wide thread registry: a singly-linked list of
// registered threads and their GC roots, guarded by a single lock.
type Registry struct {
	mu   sync.RWMutex
	head *node

	activeThreads   int64
	totalRegistered int64
	shutdown        bool

	log *rtlog.Logger
}

// New constructs an empty Registry.
func New(log *rtlog.Logger) *Registry {
	return &Registry{log: rtlog.Or(log)}
}

var (
	globalOnce sync.Once
	global     *Registry
)

// Global returns the process-wide singleton Registry, constructing it
// (with the package-level default logger) on first use.
func Global() *Registry {
	globalOnce.Do(func() { global = New(nil) })
	return global
}

func (r *Registry) find(threadID uint64) *node {
	for n := r.head; n != nil; n = n.next {
		if n.threadID == threadID {
			return n
		}
	}
	return nil
}

// Register adds threadID to the registry. Idempotent: a thread already
// registered (per threadID, the closest Go can get to a thread-local
// "already registered" pointer — Go has no real TLS) returns nil without
// creating a second node. Returns a ThreadError diagnostic if the
// registry has been shut down.
func (r *Registry) Register(threadID uint64) *diagnostic.Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.shutdown {
		return diagnostic.New(diagnostic.ThreadError, "registry is shut down")
	}
	if r.find(threadID) != nil {
		return nil
	}

	n := &node{threadID: threadID, roots: make(map[uintptr]struct{}), registeredAt: time.Now(), next: r.head}
	r.head = n

	r.activeThreads++
	r.totalRegistered++
	r.log.Debug("registry.register").Uint64("thread_id", threadID).Log("thread registered")
	return nil
}

// Unregister splices threadID's node out of the list. A no-op if
// threadID was never registered.
func (r *Registry) Unregister(threadID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var prev *node
	for n := r.head; n != nil; n = n.next {
		if n.threadID == threadID {
			if prev == nil {
				r.head = n.next
			} else {
				prev.next = n.next
			}
			r.activeThreads--
			r.log.Debug("registry.unregister").Uint64("thread_id", threadID).Log("thread unregistered")
			return
		}
		prev = n
	}
}

// RegisterRoot adds root to threadID's root set. Returns a diagnostic if
// threadID is not registered.
func (r *Registry) RegisterRoot(threadID uint64, root uintptr) *diagnostic.Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.find(threadID)
	if n == nil {
		return diagnostic.Newf(diagnostic.InvalidArgument, "thread %d is not registered", threadID)
	}
	n.roots[root] = struct{}{}
	return nil
}

// UnregisterRoot removes root from threadID's root set. A no-op if either
// the thread or the root is not present.
func (r *Registry) UnregisterRoot(threadID uint64, root uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n := r.find(threadID); n != nil {
		delete(n.roots, root)
	}
}

// Stats is a point-in-time snapshot of the registry's counters.
type Stats struct {
	ActiveThreads      int64
	TotalRegisteredEver int64
	TotalGCRoots        int64
	IsShutdown          bool
}

// Stats returns a snapshot of the registry's counters, walking the list
// under the registry lock to sum GC roots across every node.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var roots int64
	for n := r.head; n != nil; n = n.next {
		roots += int64(len(n.roots))
	}

	return Stats{
		ActiveThreads:       r.activeThreads,
		TotalRegisteredEver: r.totalRegistered,
		TotalGCRoots:        roots,
		IsShutdown:          r.shutdown,
	}
}

// Shutdown marks the registry closed: further Register calls fail.
// Already-registered threads are left in place — Shutdown does not evict
// them, only gates new registrations.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shutdown = true
}

// Scavenge performs defensive cleanup of nodes left behind by threads
// that exited without calling Unregister (well-behaved callers always
// unregister; this exists for the threads that don't). isAlive reports
// whether a given threadID is still running; any node whose thread is not
// alive is spliced out. batchSize bounds how many nodes are visited in
// one call, the same incremental batch-scan idea as
// eventloop.registry.Scavenge, adapted to a strong-reference linked list
// instead of a weak-pointer ring buffer.
func (r *Registry) Scavenge(isAlive func(threadID uint64) bool, batchSize int) {
	if isAlive == nil || batchSize <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var prev *node
	visited := 0
	for n := r.head; n != nil && visited < batchSize; visited++ {
		next := n.next
		if !isAlive(n.threadID) {
			if prev == nil {
				r.head = next
			} else {
				prev.next = next
			}
			r.activeThreads--
			r.log.Warn("registry.scavenge").Uint64("thread_id", n.threadID).Log("pruned dead thread's registry node")
		} else {
			prev = n
		}
		n = next
	}
}
