package collector

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hsfzxjy/maybe/caps"
)

var stubs = map[string]string{
	capsPath: `package caps
type TagBase struct{}
func (TagBase) tag() {}
type Set struct{ bits []uint64 }
`,
	"sync": `package sync
type Mutex struct{ state int32 }
func (*Mutex) Lock()   {}
func (*Mutex) Unlock() {}
`,
}

type stubImporter struct {
	fset *token.FileSet
	pkgs map[string]*types.Package
}

func (im *stubImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := im.pkgs[path]; ok {
		return pkg, nil
	}
	src, ok := stubs[path]
	if !ok {
		return nil, fmt.Errorf("no stub for %q", path)
	}
	pkg, err := check(im, path, src)
	if err != nil {
		return nil, err
	}
	im.pkgs[path] = pkg
	return pkg, nil
}

func check(im *stubImporter, path, src string) (*types.Package, error) {
	f, err := parser.ParseFile(im.fset, path+".go", src, 0)
	if err != nil {
		return nil, err
	}
	conf := types.Config{Importer: im}
	return conf.Check(path, im.fset, []*ast.File{f}, nil)
}

func load(t *testing.T, src string) (*token.FileSet, *types.Package) {
	t.Helper()
	im := &stubImporter{token.NewFileSet(), make(map[string]*types.Package)}
	pkg, err := check(im, "example.com/fixture", src)
	qt.Assert(t, qt.IsNil(err))
	return im.fset, pkg
}

const fixture = `package fixture

import (
	"sync"

	"github.com/hsfzxjy/maybe/caps"
)

type Plain struct{ A, B int }

type Handle struct{ fd int }

func (*Handle) Drop() {}

type Owned struct{ buf []byte }

func (*Owned) Drop()        {}
func (o *Owned) Clone() Owned { return Owned{append([]byte(nil), o.buf...)} }

type Fallible struct{}

func (*Fallible) TryClone() (Fallible, error) { return Fallible{}, nil }

type Guarded struct {
	mu    sync.Mutex
	items [2]int
}

type Nested struct{ inner [1]Guarded }

type BadSwap struct{}

func (*BadSwap) Swap(BadSwap) {}

type Marker struct{ caps.TagBase }

type Callback func()

type Derived struct{}

func (Derived) DeriveCaps() caps.Set { return caps.Set{} }

type EmbedsDerived struct {
	Derived
	h Handle
}

type Code int

const Unused Code = -1

type Point struct{ X, Y int }

type Slice []int
`

func TestSolve(t *testing.T) {
	_, pkg := load(t, fixture)
	solve := func(name string) Result {
		return Solve(pkg.Scope().Lookup(name).Type())
	}

	plain := solve("Plain")
	qt.Assert(t, qt.IsTrue(plain.Caps().All(caps.Trivial, caps.Sane)))

	handle := solve("Handle")
	qt.Assert(t, qt.Equals(handle.Drop, caps.HookOK))
	qt.Assert(t, qt.IsFalse(handle.Caps().Has(caps.Sane)))

	owned := solve("Owned")
	qt.Assert(t, qt.Equals(owned.Clone, caps.HookOK))
	qt.Assert(t, qt.IsTrue(owned.Caps().All(caps.Sane, caps.NothrowCopyConstructible)))

	fallible := solve("Fallible")
	qt.Assert(t, qt.Equals(fallible.TryClone, caps.HookOK))
	qt.Assert(t, qt.IsFalse(fallible.Caps().Has(caps.NothrowCopyConstructible)))

	qt.Assert(t, qt.IsTrue(solve("Guarded").Locked))
	qt.Assert(t, qt.IsTrue(solve("Nested").Locked))
	qt.Assert(t, qt.IsFalse(solve("Nested").Caps().Has(caps.CopyConstructible)))

	badSwap := solve("BadSwap")
	qt.Assert(t, qt.Equals(badSwap.Swap, caps.HookMismatch))
	qt.Assert(t, qt.IsFalse(badSwap.Caps().Has(caps.Sane)))

	marker := solve("Marker")
	qt.Assert(t, qt.IsTrue(marker.Tag))
	qt.Assert(t, qt.Equals(marker.Caps().String(), "{Tag}"))

	qt.Assert(t, qt.IsFalse(solve("Callback").Object))
	qt.Assert(t, qt.IsTrue(solve("Derived").Derived))
	embeds := solve("EmbedsDerived")
	qt.Assert(t, qt.IsFalse(embeds.Derived))
	qt.Assert(t, qt.IsTrue(embeds.Object))
}

func TestCheckSentinel(t *testing.T) {
	fset, pkg := load(t, fixture)
	lookup := func(name string) *types.TypeName {
		return pkg.Scope().Lookup(name).(*types.TypeName)
	}

	qt.Assert(t, qt.IsNil(CheckSentinel(fset, lookup("Code"), "-1")))
	qt.Assert(t, qt.IsNil(CheckSentinel(fset, lookup("Code"), "Unused")))
	qt.Assert(t, qt.IsNil(CheckSentinel(fset, lookup("Point"), "Point{-1, -1}")))

	qt.Assert(t, qt.ErrorMatches(CheckSentinel(fset, lookup("Slice"), "nil"), `type Slice is not comparable`))
	qt.Assert(t, qt.ErrorMatches(CheckSentinel(fset, lookup("Code"), "1 +"), `bad sentinel "1 \+": .*`))
	qt.Assert(t, qt.ErrorMatches(CheckSentinel(fset, lookup("Code"), `"x"`), `bad sentinel "\\"x\\"": .*`))
}
