// File: arena.go
// Role: single owner of edge payloads.
//
// Both adjacency slots of an edge store the same handle; only the arena holds
// the payload pointer. alloc/release are the only ways a payload enters or
// leaves a network, which makes double release impossible through the public API.

package core

// handle addresses one payload cell in an edgeArena.
type handle uint32

// edgeArena stores edge payloads behind stable pointers. Released handles
// are recycled LIFO.
type edgeArena[E any] struct {
	cells []*E
	free  []handle
	n     int
}

// alloc stores a copy of data and returns its handle.
// Complexity: O(1) amortized.
func (a *edgeArena[E]) alloc(data E) handle {
	p := new(E)
	*p = data
	a.n++

	if k := len(a.free); k > 0 {
		h := a.free[k-1]
		a.free = a.free[:k-1]
		a.cells[h] = p

		return h
	}
	a.cells = append(a.cells, p)

	return handle(len(a.cells) - 1)
}

// get returns the payload pointer for h, or nil for a released handle.
func (a *edgeArena[E]) get(h handle) *E {
	if int(h) >= len(a.cells) {
		return nil
	}

	return a.cells[h]
}

// release frees the payload of h. It reports false if h was already free.
func (a *edgeArena[E]) release(h handle) bool {
	if int(h) >= len(a.cells) || a.cells[h] == nil {
		return false
	}
	a.cells[h] = nil
	a.free = append(a.free, h)
	a.n--

	return true
}

// live returns the number of allocated payloads.
func (a *edgeArena[E]) live() int { return a.n }

// reset drops every payload.
func (a *edgeArena[E]) reset() {
	a.cells = nil
	a.free = nil
	a.n = 0
}
