package patterns

import (
	"github.com/reusee/dscope"
	"github.com/reusee/weave/sessions"
)

type Module struct {
	dscope.Module
	Sessions sessions.Module
}
