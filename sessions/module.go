package sessions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/weave/formats"
)

type Module struct {
	dscope.Module
	Formats formats.Module
}
