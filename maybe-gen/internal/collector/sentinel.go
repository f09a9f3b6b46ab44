package collector

import (
	"fmt"
	"go/parser"
	"go/token"
	"go/types"
)

// CheckSentinel verifies that expr, converted to the type named obj, is a
// valid sentinel value in the scope of obj's package.
func CheckSentinel(fset *token.FileSet, obj *types.TypeName, expr string) error {
	if !types.Comparable(obj.Type()) {
		return fmt.Errorf("type %s is not comparable", obj.Name())
	}
	if _, err := parser.ParseExpr(expr); err != nil {
		return fmt.Errorf("bad sentinel %q: %w", expr, err)
	}
	conv := fmt.Sprintf("%s(%s)", obj.Name(), expr)
	tv, err := types.Eval(fset, obj.Pkg(), token.NoPos, conv)
	if err != nil {
		return fmt.Errorf("bad sentinel %q: %w", expr, err)
	}
	if !types.Identical(tv.Type, obj.Type()) {
		return fmt.Errorf("bad sentinel %q: converts to %s", expr, tv.Type)
	}
	return nil
}
