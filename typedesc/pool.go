package typedesc

import "sync"

// descriptorPool recycles compound Descriptor slots once their refcount
// reaches zero, the way refPool recycles pointer pairs: avoid an
// allocation, not change the logical lifetime.
var descriptorPool = sync.Pool{New: func() any { return new(Descriptor) }}

// getCompound returns a zeroed Descriptor from the pool for reuse by a
// New* constructor.
func getCompound() *Descriptor {
	return descriptorPool.Get().(*Descriptor)
}

// putCompound returns d's slot to the pool. d must be fully released (zero
// refcount) and must not be a primitive.
func putCompound(d *Descriptor) {
	d.Category = 0
	d.Name = ""
	d.Size = 0
	d.Alignment = 0
	d.Elem = nil
	d.ErrElem = nil
	d.Fields = nil
	d.Params = nil
	d.Returns = nil
	d.refcount.Store(0)
	descriptorPool.Put(d)
}
