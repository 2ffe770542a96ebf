package assoc

import (
	"fmt"
	"iter"

	"github.com/npillmayer/collections/ownership"
)

// Map is an owned mapping from keys of type K to values of type V.
//
// Maps are handled by pointer. Values are stored in individual cells, so a
// *V handed out by the Entry API stays attached to its key until the key is
// removed or the map is dropped.
type Map[K comparable, V any] struct {
	items map[K]*V
	state ownership.State
}

// New creates an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{items: make(map[K]*V)}
}

// WithCapacity creates an empty map with room for n entries.
func WithCapacity[K comparable, V any](n int) *Map[K, V] {
	if n < 0 {
		n = 0
	}
	return &Map[K, V]{items: make(map[K]*V, n)}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	m.state.Check("assoc.Len")
	return len(m.items)
}

// Insert binds v to k. If k has been bound before, the previous value is
// returned together with true and the binding is overwritten. Otherwise
// Insert returns the zero value and false.
func (m *Map[K, V]) Insert(k K, v V) (V, bool) {
	release := m.state.Exclusive("assoc.Insert")
	defer release()
	if cell, ok := m.items[k]; ok {
		prev := *cell
		*cell = v
		tracer().Debugf("assoc: overwrote value for key %v", k)
		return prev, true
	}
	m.items[k] = &v
	var zero V
	return zero, false
}

// Get returns the value bound to k. If k is absent, Get returns the zero
// value and false.
func (m *Map[K, V]) Get(k K) (V, bool) {
	release := m.state.Share("assoc.Get")
	defer release()
	if cell, ok := m.items[k]; ok {
		return *cell, true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is bound.
func (m *Map[K, V]) Contains(k K) bool {
	release := m.state.Share("assoc.Contains")
	defer release()
	_, ok := m.items[k]
	return ok
}

// Remove deletes the binding of k and returns the removed value.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	release := m.state.Exclusive("assoc.Remove")
	defer release()
	cell, ok := m.items[k]
	if !ok {
		var zero V
		return zero, false
	}
	delete(m.items, k)
	return *cell, true
}

// EntryOrInsert returns the value bound to k. If k is absent, def is inserted
// first. An existing value is never changed.
func (m *Map[K, V]) EntryOrInsert(k K, def V) *V {
	return m.Entry(k).OrInsert(def)
}

// All returns an iterator over all key/value pairs, in unspecified order.
//
// The map is borrowed for reading while the iteration runs.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		release := m.state.Share("assoc.All")
		defer release()
		for k, cell := range m.items {
			if !yield(k, *cell) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys, in unspecified order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values, in unspecified order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Take moves the entries out of the map. The map is invalid after Take returns.
func (m *Map[K, V]) Take() map[K]V {
	m.state.Move("assoc.Take")
	out := make(map[K]V, len(m.items))
	for k, cell := range m.items {
		out[k] = *cell
	}
	m.items = nil
	return out
}

// Drop ends the lifetime of the map together with all its entries.
func (m *Map[K, V]) Drop() {
	m.state.Move("assoc.Drop")
	m.items = nil
}

// String returns a debug representation of the entries.
func (m *Map[K, V]) String() string {
	if m.state.IsMoved() {
		return "<moved>"
	}
	plain := make(map[K]V, len(m.items))
	for k, cell := range m.items {
		plain[k] = *cell
	}
	return fmt.Sprint(plain)
}
