package weaveconfigs

import (
	"github.com/reusee/weave/cmds"
	"github.com/reusee/weave/configs"
	"github.com/reusee/weave/vars"
)

// DefaultFormat names the format new sessions render with.
type DefaultFormat string

var formatFlag = cmds.Var[string]("-format")

func (Module) DefaultFormat(
	loader configs.Loader,
) DefaultFormat {
	return DefaultFormat(vars.FirstNonZero(
		*formatFlag,
		configs.First[string](loader, "default_format"),
		"english",
	))
}
