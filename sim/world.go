// Package sim is a small frame kernel: a World of typed resources, systems that
// read and mutate them, and a Scheduler that runs the systems in a fixed order
// once per frame.
package sim

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// iface mirrors the runtime layout of an interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeKey identifies a reflect.Type by the address of its runtime descriptor.
func typeKey(t reflect.Type) int {
	return int(uintptr((*iface)(unsafe.Pointer(&t)).data))
}

type resourceEntry struct {
	ptr any
}

// World stores at most one value per type. Values live behind stable pointers
// for the lifetime of the World.
type World struct {
	resources *intmap.Map[int, *resourceEntry]
	order     []reflect.Type
}

// WorldStats describes the resources held by a World.
type WorldStats struct {
	ResourceCount int
	ResourceTypes []string
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		resources: intmap.New[int, *resourceEntry](16),
	}
}

func (w *World) entry(t reflect.Type) *resourceEntry {
	e, ok := w.resources.Get(typeKey(t))
	if !ok {
		return nil
	}
	return e
}

// Insert stores value as the World's T. An existing T is overwritten in place,
// so pointers handed out earlier keep observing it.
func Insert[T any](w *World, value T) *T {
	t := reflect.TypeFor[T]()
	if e := w.entry(t); e != nil {
		ptr := e.ptr.(*T)
		*ptr = value
		return ptr
	}

	ptr := &value
	w.resources.Put(typeKey(t), &resourceEntry{ptr: ptr})
	w.order = append(w.order, t)
	return ptr
}

// Lookup returns the World's T, or nil if none was inserted.
func Lookup[T any](w *World) *T {
	e := w.entry(reflect.TypeFor[T]())
	if e == nil {
		return nil
	}
	return e.ptr.(*T)
}

// Len returns the number of stored resources.
func (w *World) Len() int {
	return w.resources.Len()
}

// Stats lists the stored resources in insertion order.
func (w *World) Stats() WorldStats {
	stats := WorldStats{
		ResourceCount: w.resources.Len(),
		ResourceTypes: make([]string, 0, len(w.order)),
	}
	for _, t := range w.order {
		stats.ResourceTypes = append(stats.ResourceTypes, t.String())
	}
	return stats
}
