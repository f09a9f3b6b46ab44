package caps

import "reflect"

// Deriver is implemented by containers whose capabilities follow from
// their payload rather than from their own method set. A DeriveCaps
// promoted from an embedded field is ignored.
type Deriver interface{ DeriveCaps() Set }

// Hook is the state of one lifecycle hook on a type.
type Hook uint8

const (
	HookAbsent Hook = iota
	HookOK
	// present under the expected name with another signature
	HookMismatch
)

// Hooks describes a type by the lifecycle hooks its pointer implements.
// It is filled by reflection at run time and from go/types by maybe-gen.
type Hooks struct {
	Object bool
	Tag    bool
	Locked bool

	Drop, Clone, TryClone, Assign, Move, Swap Hook
}

// FromHooks evaluates every predicate over h.
func FromHooks(h Hooks) Set {
	if h.Tag {
		return setOf(Tag)
	}
	s := setOf()
	if !h.Object {
		return s
	}
	s = s.with(Object, true)

	s = s.with(TriviallyDestructible, h.Drop == HookAbsent)
	s = s.with(NothrowDestructible, h.Drop != HookMismatch)

	cloning := h.Clone == HookOK || h.TryClone == HookOK
	trivialCopy := !cloning && !h.Locked
	s = s.with(TriviallyCopyable, trivialCopy)
	s = s.with(CopyConstructible, cloning || !h.Locked)
	s = s.with(NothrowCopyConstructible, trivialCopy || (h.Clone == HookOK && h.TryClone != HookOK))
	s = s.with(CopyAssignable, cloning || !h.Locked || h.Assign == HookOK)

	s = s.with(TriviallyMovable, h.Move == HookAbsent)
	s = s.with(NothrowMovable, h.Move != HookMismatch)
	s = s.with(NothrowSwappable, h.Swap != HookMismatch)

	s = s.with(Trivial, s.All(TriviallyDestructible, TriviallyCopyable, TriviallyMovable) && h.Assign == HookAbsent)
	// a payload released by Drop must not be duplicated by plain assignment
	s = s.with(Sane, s.All(saneRequirements...) && (s.Has(TriviallyDestructible) || !s.Has(TriviallyCopyable)))
	return s
}

// NewSet builds a Set holding cs.
func NewSet(cs ...Cap) Set { return setOf(cs...) }

var (
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	tagType     = reflect.TypeOf((*TagType)(nil)).Elem()
	deriverType = reflect.TypeOf((*Deriver)(nil)).Elem()
)

func hookOf(pt reflect.Type, name string, in []reflect.Type, out []reflect.Type) Hook {
	m, ok := pt.MethodByName(name)
	if !ok {
		return HookAbsent
	}
	ft := m.Type
	if ft.IsVariadic() || ft.NumIn() != len(in)+1 || ft.NumOut() != len(out) {
		return HookMismatch
	}
	for i, want := range in {
		if ft.In(i+1) != want {
			return HookMismatch
		}
	}
	for i, want := range out {
		if ft.Out(i) != want {
			return HookMismatch
		}
	}
	return HookOK
}

func isObjectKind(k reflect.Kind) bool {
	switch k {
	case reflect.Invalid, reflect.Func, reflect.UnsafePointer:
		return false
	default:
		return true
	}
}

// containsLock follows the go vet copylocks rule: a value is a lock if its
// pointer has Lock and Unlock, and the property propagates through struct
// fields and array elements held by value.
func containsLock(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	if hookOf(pt, "Lock", nil, nil) == HookOK && hookOf(pt, "Unlock", nil, nil) == HookOK {
		return true
	}
	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsLock(t.Field(i).Type) {
				return true
			}
		}
	case reflect.Array:
		return t.Len() > 0 && containsLock(t.Elem())
	}
	return false
}

// promoted reports whether a method called name reaches t through one of
// its embedded fields. Such a method speaks for the field, not for t.
func promoted(t reflect.Type, name string) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		if _, ok := reflect.PointerTo(f.Type).MethodByName(name); ok {
			return true
		}
		if _, ok := f.Type.MethodByName(name); ok {
			return true
		}
	}
	return false
}

func probe(t reflect.Type) Set {
	pt := reflect.PointerTo(t)
	if t.Kind() != reflect.Interface && !pt.Implements(tagType) &&
		pt.Implements(deriverType) && !promoted(t, "DeriveCaps") {
		return reflect.New(t).Interface().(Deriver).DeriveCaps()
	}
	if !isObjectKind(t.Kind()) {
		return FromHooks(Hooks{})
	}
	return FromHooks(Hooks{
		Object:   true,
		Tag:      pt.Implements(tagType),
		Locked:   containsLock(t),
		Drop:     hookOf(pt, "Drop", nil, nil),
		Clone:    hookOf(pt, "Clone", nil, []reflect.Type{t}),
		TryClone: hookOf(pt, "TryClone", nil, []reflect.Type{t, errorType}),
		Assign:   hookOf(pt, "Assign", []reflect.Type{pt}, nil),
		Move:     hookOf(pt, "Move", nil, []reflect.Type{t}),
		Swap:     hookOf(pt, "Swap", []reflect.Type{pt}, nil),
	})
}
