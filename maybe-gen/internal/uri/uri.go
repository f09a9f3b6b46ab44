package uri

import (
	"fmt"
	"go/types"
	"strings"
)

// Uri names a type declaration as "pkgpath#Name".
type Uri string

func UriFor(obj *types.TypeName) Uri {
	return NewUri(obj.Pkg().Path(), obj.Name())
}

func NewUri(pkgPath, name string) Uri {
	return Uri(fmt.Sprintf("%s#%s", pkgPath, name))
}

func (uri Uri) PkgPath() string {
	pos := strings.IndexByte(string(uri), '#')
	return string(uri[:pos])
}

func (uri Uri) Name() string {
	pos := strings.IndexByte(string(uri), '#')
	return string(uri[pos+1:])
}

func (uri Uri) IsWithPackagePath(pkgPath string) bool {
	return uri.PkgPath() == pkgPath
}
