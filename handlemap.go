package vklayers

import (
	"fmt"
	"unsafe"
)

// Dispatchable Vulkan handles point at an object whose first machine
// word is the loader's dispatch table pointer. That word is shared by
// an instance and its physical devices, and by a device and its
// queues, which is exactly what lets a layer find its per-instance or
// per-device state from any related handle.
func DispatchKey(handle unsafe.Pointer) uintptr {
	return *(*uintptr)(handle)
}

// HandleKey keys a handle by its own pointer value rather than by its
// dispatch table. Queue records use this: every queue of a device
// shares the device's dispatch key, so the key must be the handle.
func HandleKey(handle unsafe.Pointer) uintptr {
	return uintptr(handle)
}

// handleMapDirSize is the number of chain heads. The population is a
// handful of instances, devices and queues, so a small power of two
// is plenty.
const handleMapDirSize = 256

const handleMapMinRecords = 16

type handleEntry[T any] struct {
	key    uintptr
	next   int32
	record *T
}

// HandleMap maps handle keys to records of one kind. Records are
// chained from a fixed directory of heads into a densely packed entry
// array with an index free list; the array at least doubles when it
// fills, and is released entirely when the last record is removed.
//
// The map is not internally synchronised. Callers that mutate it
// across threads serialise through a mutex owned by the surrounding
// record; read-only Find during a driver call is safe because the set
// of live handles cannot change during a call that references one of
// them.
type HandleMap[T any] struct {
	dir     [handleMapDirSize]int32
	entries []handleEntry[T]
	free    []int32
	count   int
}

func NewHandleMap[T any]() *HandleMap[T] {
	m := &HandleMap[T]{}
	for i := range m.dir {
		m.dir[i] = -1
	}
	return m
}

// hashKey folds the pointer bits down to the directory width. The
// overlapping shifts make both the always-zero alignment bits and the
// high address bits contribute; the directory size must stay a power
// of two for the mask to work.
func hashKey(key uintptr) uint32 {
	h := uint64(key)
	h ^= h >> 4
	h ^= h >> 9
	h ^= h >> 17
	return uint32(h) & (handleMapDirSize - 1)
}

// Add inserts a record for key. Adding a key that is already present
// is a programming error and panics.
func (m *HandleMap[T]) Add(key uintptr, record *T) {
	if _, ok := m.Find(key); ok {
		panic(fmt.Sprintf("vklayers: duplicate handle map add for key %#x", key))
	}
	if len(m.free) == 0 {
		m.grow()
	}
	idx := m.free[len(m.free)-1]
	m.free = m.free[:len(m.free)-1]

	h := hashKey(key)
	m.entries[idx] = handleEntry[T]{key: key, next: m.dir[h], record: record}
	m.dir[h] = idx
	m.count++
}

// Find returns the record for key, or (nil, false) when absent.
// Absence is not an error; Find is the only operation that accepts it.
func (m *HandleMap[T]) Find(key uintptr) (*T, bool) {
	if m.count == 0 {
		return nil, false
	}
	for idx := m.dir[hashKey(key)]; idx >= 0; idx = m.entries[idx].next {
		if m.entries[idx].key == key {
			return m.entries[idx].record, true
		}
	}
	return nil, false
}

// Remove deletes the record for key. Removing an absent key is a
// programming error and panics. When the last record goes, the entry
// storage is released.
func (m *HandleMap[T]) Remove(key uintptr) {
	h := hashKey(key)
	prev := int32(-1)
	for idx := m.dir[h]; idx >= 0; prev, idx = idx, m.entries[idx].next {
		if m.entries[idx].key != key {
			continue
		}
		if prev < 0 {
			m.dir[h] = m.entries[idx].next
		} else {
			m.entries[prev].next = m.entries[idx].next
		}
		m.entries[idx] = handleEntry[T]{next: -1}
		m.count--
		if m.count == 0 {
			m.entries = nil
			m.free = nil
		} else {
			m.free = append(m.free, idx)
		}
		return
	}
	panic(fmt.Sprintf("vklayers: handle map remove of absent key %#x", key))
}

func (m *HandleMap[T]) Len() int {
	return m.count
}

// Walk visits every record. The callback must not mutate the map.
func (m *HandleMap[T]) Walk(fn func(key uintptr, record *T) bool) {
	for i := range m.entries {
		if m.entries[i].record == nil {
			continue
		}
		if !fn(m.entries[i].key, m.entries[i].record) {
			return
		}
	}
}

func (m *HandleMap[T]) grow() {
	old := len(m.entries)
	n := old * 2
	if n < handleMapMinRecords {
		n = handleMapMinRecords
	}
	entries := make([]handleEntry[T], n)
	copy(entries, m.entries)
	m.entries = entries
	// New slots join the free list in order.
	for i := old; i < n; i++ {
		m.free = append(m.free, int32(i))
	}
}
