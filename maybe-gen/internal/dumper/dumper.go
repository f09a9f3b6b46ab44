package dumper

import (
	"github.com/hsfzxjy/maybe/maybe-gen/internal/exported"
)

type Dumper interface {
	AddType(*exported.Type)
	Save()
}
