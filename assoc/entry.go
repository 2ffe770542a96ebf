package assoc

// Entry is a view on the binding of a single key, which may or may not exist.
type Entry[K comparable, V any] struct {
	m   *Map[K, V]
	key K
}

// Entry returns the entry for key k.
func (m *Map[K, V]) Entry(k K) Entry[K, V] {
	m.state.Check("assoc.Entry")
	return Entry[K, V]{m: m, key: k}
}

// Key returns the key of the entry.
func (e Entry[K, V]) Key() K {
	return e.key
}

// OrInsert returns the value bound to the entry's key, inserting def if the
// key is absent.
func (e Entry[K, V]) OrInsert(def V) *V {
	return e.OrInsertWith(func() V { return def })
}

// OrInsertWith is like OrInsert, but calls f to create the value only if the
// key is absent.
func (e Entry[K, V]) OrInsertWith(f func() V) *V {
	release := e.m.state.Exclusive("assoc.Entry.OrInsert")
	defer release()
	if cell, ok := e.m.items[e.key]; ok {
		return cell
	}
	v := f()
	e.m.items[e.key] = &v
	return &v
}

// AndModify calls f with the value bound to the entry's key, if present.
func (e Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	release := e.m.state.Exclusive("assoc.Entry.AndModify")
	defer release()
	if cell, ok := e.m.items[e.key]; ok {
		f(cell)
	}
	return e
}
