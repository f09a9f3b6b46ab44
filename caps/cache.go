package caps

import (
	"hash/maphash"
	"reflect"

	"github.com/puzpuzpuz/xsync/v2"
)

var cache = xsync.NewTypedMapOf[reflect.Type, Set](hashType)

func hashType(seed maphash.Seed, t reflect.Type) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(t.PkgPath())
	h.WriteString(t.String())
	return h.Sum64()
}

func typeOf[T any]() reflect.Type { return reflect.TypeFor[T]() }

// OfType returns the capability set of t, probing it on first use.
func OfType(t reflect.Type) Set {
	if s, ok := cache.Load(t); ok {
		return s
	}
	// probing may recurse into OfType for a container's payload, so it
	// runs outside of the map's compute lock
	s, _ := cache.LoadOrStore(t, probe(t))
	return s
}

func Of[T any]() Set { return OfType(typeOf[T]()) }

// Same reports whether T and U are the identical type.
func Same[T, U any]() bool { return typeOf[T]() == typeOf[U]() }
