package typedesc

import "sync"

// TypeID is an arena index issued by a Registry. Zero is never issued and
// means "unresolved".
type TypeID uint32

// Registry is an arena-plus-index store for Descriptors that may
// participate in cyclic references (a struct field referencing its own
// struct type, or two structs referencing each other). Self-referential
// fields store a TypeID and resolve it through the Registry at use time,
// rather than holding a direct *Descriptor, so Release never has to break
// a cycle by hand.
type Registry struct {
	mu    sync.RWMutex
	slots []*Descriptor // index 0 unused; TypeID i resolves to slots[i]
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{slots: make([]*Descriptor, 1, 64)} // reserve index 0
}

// Reserve allocates a TypeID for a struct descriptor that is still being
// built (its fields may reference this id before the descriptor itself is
// complete). Bind must be called once the descriptor is ready.
func (r *Registry) Reserve() TypeID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = append(r.slots, nil)
	return TypeID(len(r.slots) - 1)
}

// Bind attaches the completed descriptor to a previously Reserved id.
func (r *Registry) Bind(id TypeID, d *Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[id] = d
}

// Intern reserves and binds a ready descriptor in one step, returning its id.
func (r *Registry) Intern(d *Descriptor) TypeID {
	id := r.Reserve()
	r.Bind(id, d)
	return id
}

// Lookup resolves a TypeID to its Descriptor, or nil if the id is unknown
// or not yet bound.
func (r *Registry) Lookup(id TypeID) *Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(id) >= len(r.slots) {
		return nil
	}
	return r.slots[id]
}

// Len returns the number of ids issued (including any still-unbound).
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots) - 1
}
