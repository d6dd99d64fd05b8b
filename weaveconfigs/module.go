package weaveconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/weave/configs"
	"github.com/reusee/weave/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
