package exported

import (
	"go/ast"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/hsfzxjy/maybe/maybe-gen/internal/config"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/exception"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/utils"
)

const directivePrefix = "//maybe:"

type Package struct {
	OriPkg *packages.Package
	Types  map[string]*Type
}

// parseDirective merges the //maybe: lines of doc into d and reports
// whether any was found.
func parseDirective(pkg *packages.Package, doc *ast.CommentGroup, d *Directive) bool {
	if doc == nil {
		return false
	}
	found := false
	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, directivePrefix) {
			continue
		}
		found = true
		name, args, _ := strings.Cut(strings.TrimPrefix(c.Text, directivePrefix), " ")
		switch name {
		case "sane":
			if strings.TrimSpace(args) != "" {
				exception.ThrowAt(pkg, c, "maybe:sane takes no arguments")
			}
			d.Sane = true
		case "sentinel":
			value, opts := utils.ParseValueWithOptions(args)
			if value == "" {
				exception.ThrowAt(pkg, c, "maybe:sentinel needs a value")
			}
			d.Sane = true
			d.HasSentinel = true
			d.Sentinel = value
			for k, v := range opts {
				if k != "access" {
					exception.ThrowAt(pkg, c, "unknown option %q", k)
				}
				d.Access = config.AccessIdent(v)
			}
		default:
			exception.ThrowAt(pkg, c, "unknown directive maybe:%s", name)
		}
	}
	return found
}

func NewPackage(pkg *packages.Package) *Package {
	epkg := &Package{
		OriPkg: pkg,
		Types:  make(map[string]*Type),
	}

	for _, file := range pkg.Syntax {
		filename := pkg.Fset.Position(file.Package).Filename
		if strings.HasSuffix(filename, config.Struct.Output.Suffix) {
			continue
		}
	NEXT_DECL:
		for _, decl := range file.Decls {
			decl, ok := decl.(*ast.GenDecl)
			if !ok || decl.Tok != token.TYPE {
				continue NEXT_DECL
			}
			var outer Directive
			parseDirective(pkg, decl.Doc, &outer)
			for _, spec := range decl.Specs {
				spec := spec.(*ast.TypeSpec)
				d := outer
				if !parseDirective(pkg, spec.Doc, &d) && d == (Directive{}) {
					continue
				}
				if spec.Assign != token.NoPos {
					exception.ThrowAt(pkg, spec, "type alias cannot carry maybe directives")
				}
				if spec.TypeParams != nil {
					exception.ThrowAt(pkg, spec, "generic type cannot carry maybe directives")
				}
				if d.Access == "" {
					d.Access = config.Struct.Access
				}
				name := spec.Name.Name
				epkg.Types[name] = &Type{
					TypeName:  pkg.Types.Scope().Lookup(name).(*types.TypeName),
					PPackage:  pkg,
					Spec:      spec,
					Directive: d,
				}
			}
		}
	}
	return epkg
}

func (ex *Package) Resolve() {
	for _, etyp := range ex.Types {
		etyp.Resolve()
	}
}

// Sorted lists the types in declaration order.
func (ex *Package) Sorted() []*Type {
	out := make([]*Type, 0, len(ex.Types))
	for _, t := range ex.Types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Spec.Pos() < out[j].Spec.Pos() })
	return out
}
