package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/weave/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin with globals predeclared, and returns when input ends.
type Tap func(ctx context.Context, what string, globals map[string]any)

var replOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap",
			"what", what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap done",
				"what", what,
			)
		}()

		predeclared := make(starlark.StringDict, len(names))
		for _, name := range names {
			predeclared[name] = toStarlarkValue(globals[name])
		}

		thread := &starlark.Thread{
			Name: what,
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		repl.REPLOptions(replOptions, thread, predeclared)
	}
}
