package internal

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/tools/go/packages"

	"github.com/hsfzxjy/maybe/maybe-gen/internal/config"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/exception"
)

func printErrors(pkgs []*packages.Package) int {
	n := 0
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, err := range p.Errors {
			n++
			fmt.Fprintf(os.Stderr, "%s\n", err)
		}
	})
	return n
}

func LoadPackages(pattern string) []*packages.Package {
	slog.Debug("loading packages", "pattern", pattern, "dir", config.Opts.Dir)
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  config.Opts.Dir,
	}, pattern)
	exception.Die(err)
	if n := printErrors(pkgs); n > 0 {
		exception.Throw("%d error(s) while loading %s", n, pattern)
	}
	if len(pkgs) == 0 {
		exception.Throw("no packages match %s", pattern)
	}
	return pkgs
}
