package patterns

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/reusee/weave/logs"
	"github.com/reusee/weave/sessions"
	"github.com/reusee/weave/syncs"
)

// Source is a named pattern program.
type Source struct {
	Name    string
	Content []byte
}

// ReadSources loads pattern files.
func ReadSources(paths []string) ([]Source, error) {
	ret := make([]Source, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Source{
			Name:    path,
			Content: content,
		})
	}
	return ret, nil
}

// Batch runs each source in its own session, at most jobs at a time.
// Sessions are returned in source order; a failed source leaves its session partially rendered.
type Batch func(ctx context.Context, sources []Source, jobs int) ([]*sessions.Session, error)

func (Module) Batch(
	run Run,
	newSession sessions.NewSession,
	logger logs.Logger,
) Batch {
	return func(ctx context.Context, sources []Source, jobs int) ([]*sessions.Session, error) {
		ret := make([]*sessions.Session, len(sources))
		for i := range sources {
			session, err := newSession("")
			if err != nil {
				return nil, err
			}
			ret[i] = session
		}

		sem := syncs.NewSemaphore(jobs)
		errs := make([]error, len(sources))
		var wg sync.WaitGroup
		for i, source := range sources {
			if err := sem.Acquire(ctx); err != nil {
				errs[i] = err
				break
			}
			wg.Go(func() {
				defer sem.Release()
				errs[i] = run(ctx, ret[i], source.Name, source.Content)
			})
		}
		wg.Wait()

		err := errors.Join(errs...)
		logger.InfoContext(ctx, "batch done",
			"sources", len(sources),
			"jobs", cap(sem),
			"failed", err != nil,
		)
		return ret, err
	}
}
