package weaveconfigs

import (
	"github.com/reusee/weave/cmds"
	"github.com/reusee/weave/configs"
	"github.com/reusee/weave/modes"
)

// Strict enables full invariant verification after every channel mutation.
type Strict bool

var strictFlag = cmds.Switch("-strict")

func (Module) Strict(
	loader configs.Loader,
	mode modes.Mode,
) Strict {
	if *strictFlag {
		return true
	}
	var strict bool
	if err := loader.AssignFirst("strict", &strict); err == nil {
		return Strict(strict)
	}
	return mode == modes.ModeDevelopment
}
