package maybe

import "github.com/hsfzxjy/maybe/caps"

// Err marks E as the error alternative when building a Result.
type Err[E any] struct {
	caps.TagBase
	Value E
}
