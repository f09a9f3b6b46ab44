package internal

import (
	"log/slog"
	"sort"

	"github.com/hsfzxjy/maybe/maybe-gen/internal/dumper"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/exported"
)

type Exports struct {
	Packages map[string]*exported.Package
}

func NewExports(pattern string) *Exports {
	ex := &Exports{Packages: make(map[string]*exported.Package)}
	ex.ParsePackages(pattern)
	return ex
}

func (ex *Exports) ParsePackages(pattern string) {
	pkgs := LoadPackages(pattern)
	for _, pkg := range pkgs {
		ex.Packages[pkg.PkgPath] = exported.NewPackage(pkg)
	}
	for _, path := range ex.paths() {
		epkg := ex.Packages[path]
		slog.Info("checking package", "path", path, "types", len(epkg.Types))
		epkg.Resolve()
	}
}

func (ex *Exports) paths() []string {
	paths := make([]string, 0, len(ex.Packages))
	for path := range ex.Packages {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (ex *Exports) Dump(dumpers ...dumper.Dumper) {
	for _, dumper := range dumpers {
		for _, path := range ex.paths() {
			for _, etype := range ex.Packages[path].Sorted() {
				dumper.AddType(etype)
			}
		}
		dumper.Save()
	}
}
