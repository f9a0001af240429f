// Package reflector derives stable identities for component types.
// Results are cached per reflect.Type.
package reflector

import (
	"reflect"
	"sync"
)

// maxCacheSize bounds the type cache. Programs register few component
// types, so the limit is rarely hit; when it is the cache is cleared.
const maxCacheSize = 1024

var (
	muCache sync.RWMutex
	cache   = make(map[reflect.Type]TypeInfo)
)

// TypeInfo holds the identity of a component type.
type TypeInfo struct {
	Name string       // "pkg/path.TypeName", pointer unwrapped
	Type reflect.Type // element type for pointers
}

// TypeInfoOf returns TypeInfo for the dynamic type of x.
func TypeInfoOf(x any) TypeInfo {
	return TypeInfoForType(reflect.TypeOf(x))
}

// TypeInfoForType returns TypeInfo for t, unwrapping one level of pointer.
// Unnamed types fall back to their string form so that two distinct
// literal types never share an identity.
func TypeInfoForType(t reflect.Type) TypeInfo {
	if t == nil {
		return TypeInfo{}
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	muCache.RLock()
	ti, ok := cache[t]
	muCache.RUnlock()
	if ok {
		return ti
	}

	name := t.String()
	if t.Name() != "" {
		name = t.PkgPath() + "." + t.Name()
	}
	ti = TypeInfo{Name: name, Type: t}

	muCache.Lock()
	if len(cache) >= maxCacheSize {
		cache = make(map[reflect.Type]TypeInfo)
	}
	cache[t] = ti
	muCache.Unlock()

	return ti
}
