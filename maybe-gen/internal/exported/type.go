package exported

import (
	"go/ast"
	"go/types"
	"log/slog"

	"golang.org/x/tools/go/packages"

	"github.com/hsfzxjy/maybe/caps"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/collector"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/config"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/exception"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/uri"
)

// Directive is the parsed set of //maybe: lines on one declaration.
type Directive struct {
	Sane        bool
	HasSentinel bool
	Sentinel    string
	// identifier of the Policy alias, e.g. Checked
	Access string
}

type Type struct {
	*types.TypeName
	PPackage *packages.Package
	Spec     *ast.TypeSpec
	Directive

	Solved collector.Result
	Caps   caps.Set
}

func (t *Type) Uri() uri.Uri { return uri.UriFor(t.TypeName) }

// Filename is the source file declaring t.
func (t *Type) Filename() string {
	return t.PPackage.Fset.Position(t.Spec.Pos()).Filename
}

func (t *Type) PolicyName() string { return t.Name() + config.Struct.Naming.PolicySuffix }
func (t *Type) AliasName() string  { return config.Struct.Naming.AliasPrefix + t.Name() }
func (t *Type) EmptyName() string  { return config.Struct.Naming.EmptyPrefix + t.Name() }

// Resolve checks the capability contract of t statically.
func (t *Type) Resolve() {
	t.Solved = collector.Solve(t.Type())
	if t.Solved.Derived {
		exception.ThrowAt(t.PPackage, t.Spec, "%s derives its capabilities at run time and cannot be checked", t.Name())
	}
	t.Caps = t.Solved.Caps()
	slog.Debug("solved type", "uri", t.Uri(), "caps", t.Caps.String())

	if missing := t.Caps.Missing(caps.Sane); len(missing) > 0 {
		exception.ThrowAt(t.PPackage, t.Spec, "%s cannot be wrapped: %s", t.Name(), explain(t.Caps, t.Solved))
	}
	if t.HasSentinel {
		if err := collector.CheckSentinel(t.PPackage.Fset, t.TypeName, t.Sentinel); err != nil {
			exception.ThrowAt(t.PPackage, t.Spec, "%v", err)
		}
	}
}

func explain(set caps.Set, r collector.Result) string {
	switch {
	case r.Tag:
		return "it is a tag type"
	case !set.Has(caps.Object):
		return "it is not an object type"
	case r.Drop == caps.HookMismatch:
		return "Drop must have signature Drop()"
	case r.Move == caps.HookMismatch:
		return "Move must have signature Move() T"
	case r.Swap == caps.HookMismatch:
		return "Swap must have signature Swap(*T)"
	default:
		return "it has a Drop method but is copied by plain assignment; add Clone or TryClone"
	}
}
