package engine

import "reflect"

// ResourceStore holds shared services (physics, render batch, input, assets) keyed by type
// Replaces global singleton access: components look services up through their Context
// Single-threaded by contract, no locking
type ResourceStore struct {
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource of type T
// T is normally a pointer type so holders can mutate the shared instance
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.resources[reflect.TypeOf((*T)(nil)).Elem()] = resource
}

// GetResource retrieves a resource of type T, zero value and false if absent
func GetResource[T any](rs *ResourceStore) (T, bool) {
	val, ok := rs.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Useful for services that must be installed before any component runs
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("resource not found: " + reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return res
}

// RemoveResource drops the resource of type T
func RemoveResource[T any](rs *ResourceStore) {
	delete(rs.resources, reflect.TypeOf((*T)(nil)).Elem())
}
