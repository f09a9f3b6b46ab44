package collector

import (
	"go/types"

	"github.com/hsfzxjy/maybe/caps"
)

const capsPath = "github.com/hsfzxjy/maybe/caps"

var errorType = types.Universe.Lookup("error").Type()

// Result is what the generator learns about a type without running it.
type Result struct {
	caps.Hooks
	// the type computes its predicates at run time
	Derived bool
}

func (r Result) Caps() caps.Set { return caps.FromHooks(r.Hooks) }

// Solve inspects the method set of *T the way package caps does by
// reflection.
func Solve(typ types.Type) Result {
	var r Result
	if !isObject(typ) {
		return r
	}
	ptr := types.NewPointer(typ)
	mset := types.NewMethodSet(ptr)
	r.Object = true
	r.Locked = containsLock(typ, make(map[types.Type]bool))
	r.Drop = hookOf(mset, "Drop", nil, nil)
	r.Clone = hookOf(mset, "Clone", nil, []types.Type{typ})
	r.TryClone = hookOf(mset, "TryClone", nil, []types.Type{typ, errorType})
	r.Assign = hookOf(mset, "Assign", []types.Type{ptr}, nil)
	r.Move = hookOf(mset, "Move", nil, []types.Type{typ})
	r.Swap = hookOf(mset, "Swap", []types.Type{ptr}, nil)

	for i := 0; i < mset.Len(); i++ {
		sel := mset.At(i)
		fn := sel.Obj()
		switch {
		case fn.Name() == "tag" && fn.Pkg() != nil && fn.Pkg().Path() == capsPath:
			r.Tag = true
		// a DeriveCaps promoted from an embedded field does not speak for typ
		case fn.Name() == "DeriveCaps" && len(sel.Index()) == 1:
			r.Derived = true
		}
	}
	return r
}

func isObject(typ types.Type) bool {
	switch u := typ.Underlying().(type) {
	case *types.Signature:
		return false
	case *types.Basic:
		return u.Kind() != types.UnsafePointer && u.Kind() != types.Invalid
	}
	return true
}

func lookup(mset *types.MethodSet, name string) *types.Signature {
	for i := 0; i < mset.Len(); i++ {
		if fn := mset.At(i).Obj(); fn.Name() == name {
			return fn.Type().(*types.Signature)
		}
	}
	return nil
}

func hookOf(mset *types.MethodSet, name string, in, out []types.Type) caps.Hook {
	sig := lookup(mset, name)
	if sig == nil {
		return caps.HookAbsent
	}
	if sig.Variadic() || !identical(sig.Params(), in) || !identical(sig.Results(), out) {
		return caps.HookMismatch
	}
	return caps.HookOK
}

func identical(tuple *types.Tuple, want []types.Type) bool {
	if tuple.Len() != len(want) {
		return false
	}
	for i, w := range want {
		if !types.Identical(tuple.At(i).Type(), w) {
			return false
		}
	}
	return true
}

func containsLock(typ types.Type, visiting map[types.Type]bool) bool {
	if visiting[typ] {
		return false
	}
	visiting[typ] = true
	defer delete(visiting, typ)

	mset := types.NewMethodSet(types.NewPointer(typ))
	if hookOf(mset, "Lock", nil, nil) == caps.HookOK && hookOf(mset, "Unlock", nil, nil) == caps.HookOK {
		return true
	}
	switch u := typ.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			if containsLock(u.Field(i).Type(), visiting) {
				return true
			}
		}
	case *types.Array:
		return u.Len() > 0 && containsLock(u.Elem(), visiting)
	}
	return false
}
