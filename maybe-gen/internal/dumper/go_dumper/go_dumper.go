package go_dumper

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/hsfzxjy/maybe/caps"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/config"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/exception"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/exported"
)

const (
	maybeMod = "github.com/hsfzxjy/maybe"
	capsMod  = "github.com/hsfzxjy/maybe/caps"
)

// hookAssertions pins every hook a type implements, so that a later
// signature change breaks the build instead of silently dropping the hook.
func hookAssertions(etype *exported.Type) []Code {
	name := etype.Name()
	var defs []Code
	assert := func(iface *Statement) {
		defs = append(defs, Id("_").Add(iface).Op("=").Parens(Op("*").Id(name)).Parens(Nil()))
	}
	h := etype.Solved.Hooks
	if h.Drop == caps.HookOK {
		assert(Qual(capsMod, "Dropper"))
	}
	if h.Clone == caps.HookOK {
		assert(Qual(capsMod, "Cloner").Types(Id(name)))
	}
	if h.TryClone == caps.HookOK {
		assert(Qual(capsMod, "TryCloner").Types(Id(name)))
	}
	if h.Move == caps.HookOK {
		assert(Qual(capsMod, "Mover").Types(Id(name)))
	}
	if h.Assign == caps.HookOK {
		assert(Qual(capsMod, "Assigner").Types(Id(name)))
	}
	if h.Swap == caps.HookOK {
		assert(Qual(capsMod, "Swapper").Types(Id(name)))
	}
	return defs
}

func sentinelValue(etype *exported.Type) *Statement {
	return Id(etype.Name()).Parens(Op(etype.Sentinel))
}

type GoDumper struct {
	// DryRun writes every file to Out instead of the file system.
	DryRun bool
	Out    io.Writer

	files map[string]*File
}

func (d *GoDumper) dumpType(etype *exported.Type, file *File) {
	name := etype.Name()
	if defs := hookAssertions(etype); len(defs) > 0 {
		file.Var().Defs(defs...).Line()
	}
	if !etype.HasSentinel {
		return
	}

	policy := etype.PolicyName()
	file.Commentf("%s reserves %s as the empty %s.", policy, etype.Sentinel, name)
	file.Type().Id(policy).Struct().Line()

	file.Func().
		Params(Id(policy)).
		Id("SentinelValue").Params().Id(name).
		Block(Return(sentinelValue(etype))).
		Line()

	file.Func().
		Params(Id(policy)).
		Id("IsSentinelValue").Params(Id("v").Op("*").Id(name)).Bool().
		Block(Return(Op("*").Id("v").Op("==").Add(sentinelValue(etype)))).
		Line()

	params := func() []Code {
		return []Code{
			Id(name),
			Qual(maybeMod, "Elided").Types(Id(name), Id(policy)),
			Qual(maybeMod, etype.Access),
		}
	}
	alias, empty := etype.AliasName(), etype.EmptyName()
	file.Commentf("%s is an optional %s that is empty while it holds %s.", alias, name, etype.Sentinel)
	file.Commentf("Its zero value holds the zero %s, so build empty ones with %s.", name, empty)
	file.Type().Id(alias).Op("=").Qual(maybeMod, "Maybe").Types(params()...).Line()

	file.Commentf("%s returns an empty %s.", empty, alias)
	file.Func().Id(empty).Params().Id(alias).
		Block(Return(Qual(maybeMod, "Empty").Types(params()...).Call())).
		Line()
}

func (d *GoDumper) AddType(etype *exported.Type) {
	if d.files == nil {
		d.files = make(map[string]*File)
	}
	dstPath := strings.TrimSuffix(etype.Filename(), ".go") + config.Struct.Output.Suffix
	file, ok := d.files[dstPath]
	if !ok {
		file = NewFile(etype.PPackage.Name)
		file.HeaderComment("Code generated by maybe-gen. DO NOT EDIT.")
		file.ImportName(maybeMod, "maybe")
		file.ImportName(capsMod, "caps")
		d.files[dstPath] = file
	}
	d.dumpType(etype, file)
}

func (d *GoDumper) Save() {
	paths := make([]string, 0, len(d.files))
	for path := range d.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		file := d.files[path]
		if d.DryRun {
			fmt.Fprintf(d.Out, "// %s\n", path)
			exception.Die(file.Render(d.Out))
			continue
		}
		slog.Info("writing", "file", path)
		exception.Die(file.Save(path))
	}
}
