package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/weave/configs"
	"github.com/reusee/weave/modes"
	"github.com/reusee/weave/sessions"
	"github.com/reusee/weave/weaveconfigs"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		new(sessions.Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewSourceLoader(nil, weaveconfigs.Schema)
		},
	).Call(func(
		tap Tap,
		newSession sessions.NewSession,
	) {
		session, err := newSession("")
		if err != nil {
			t.Fatal(err)
		}
		session.Write("foo")
		// stdin is empty under go test
		tap(t.Context(), "test", SessionGlobals(session))
	})
}
