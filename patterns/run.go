// Package patterns executes Starlark pattern programs against a session.
package patterns

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/weave/channels"
	"github.com/reusee/weave/logs"
	"github.com/reusee/weave/sessions"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Globals are predeclared in every pattern alongside the session builtins.
// A session builtin wins over a global of the same name.
type Globals starlark.StringDict

func (Module) Globals() Globals {
	return nil
}

// Run executes src, streaming its output into session.
// Execution stops when ctx is done.
type Run func(ctx context.Context, session *sessions.Session, filename string, src []byte) error

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	globals Globals,
) Run {
	return func(ctx context.Context, session *sessions.Session, filename string, src []byte) (err error) {
		ctx, _ = newSpan(ctx, "",
			"pattern", filename,
			"session", session.ID.String(),
		)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg, "pattern", filename)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		// strict sessions panic on a broken channel
		defer func() {
			if p := recover(); p != nil {
				e, ok := p.(error)
				if !ok || !errors.Is(e, channels.ErrInvariant) {
					panic(p)
				}
				err = fmt.Errorf("pattern %s: %w", filename, e)
			}
		}()

		predeclared := Builtins(session)
		for name, value := range globals {
			if _, ok := predeclared[name]; !ok {
				predeclared[name] = value
			}
		}

		logger.InfoContext(ctx, "run pattern", "pattern", filename)
		if _, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, predeclared); err != nil {
			return fmt.Errorf("pattern %s: %w", filename, err)
		}
		logger.InfoContext(ctx, "pattern done",
			"pattern", filename,
			"steps", thread.ExecutionSteps(),
		)
		return nil
	}
}
