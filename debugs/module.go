package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/weave/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
