package patterns

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/weave/channels"
	"github.com/reusee/weave/configs"
	"github.com/reusee/weave/modes"
	"github.com/reusee/weave/outputs"
	"github.com/reusee/weave/sessions"
	"github.com/reusee/weave/weaveconfigs"
	"go.starlark.net/starlark"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewSourceLoader(nil, weaveconfigs.Schema)
		},
	)
}

func runPattern(t *testing.T, src string) *sessions.Session {
	t.Helper()
	var session *sessions.Session
	testScope(t).Call(func(
		newSession sessions.NewSession,
		run Run,
	) {
		var err error
		session, err = newSession("")
		if err != nil {
			t.Fatal(err)
		}
		if err := run(t.Context(), session, "test.star", []byte(src)); err != nil {
			t.Fatal(err)
		}
	})
	return session
}

func mainValue(t *testing.T, session *sessions.Session) string {
	t.Helper()
	value, err := session.Read(outputs.MainChannel)
	if err != nil {
		t.Fatal(err)
	}
	return value
}

func TestWrite(t *testing.T) {
	session := runPattern(t, `
write("one", " ", 2, None, " ", True)
for i in range(3):
    write(str(i))
`)
	if v := mainValue(t, session); v != "one 2 True012" {
		t.Fatalf("got %q", v)
	}
}

func TestArticle(t *testing.T) {
	session := runPattern(t, `
case("sentence")
for noun in ["owl", "cat", "hour"]:
    article()
    write(" ", noun, ". ")
`)
	if v := mainValue(t, session); v != "An owl. A cat. An hour. " {
		t.Fatalf("got %q", v)
	}
}

func TestTargets(t *testing.T) {
	session := runPattern(t, `
send("who", "Bob")
write("Hello, ")
target("who")
write("! Bye, ")
target("who2")
send("who2", "Ann")
send("who2", "ie")
`)
	if v := mainValue(t, session); v != "Hello, Bob! Bye, Annie" {
		t.Fatalf("got %q", v)
	}
}

func TestMarkers(t *testing.T) {
	session := runPattern(t, `
mark("a")
write("I ate ")
article()
write(" apple")
mark("b")
n = dist("a", "b")
s = copy("b", "a")
write(" (", n, ": ", s, ")")
`)
	if v := mainValue(t, session); v != "I ate an apple (14: I ate an apple)" {
		t.Fatalf("got %q", v)
	}
}

func TestChannels(t *testing.T) {
	session := runPattern(t, `
chan("scratch", visibility="internal")
write("hidden")
close("scratch")
chan("notes", "private")
write("n1")
close("notes")
write("visible")
`)
	if v := mainValue(t, session); v != "visible" {
		t.Fatalf("got %q", v)
	}
	if _, err := session.Read("scratch"); !errors.Is(err, outputs.ErrChannelNotVisible) {
		t.Fatalf("got %v", err)
	}
	if v, err := session.Read("notes"); err != nil || v != "n1" {
		t.Fatalf("got %q %v", v, err)
	}
}

func TestReadInPattern(t *testing.T) {
	session := runPattern(t, `
chan("name", "private")
write("Zed")
close("name")
write("name: ", read("name"))
`)
	if v := mainValue(t, session); v != "name: Zed" {
		t.Fatalf("got %q", v)
	}
}

func TestErrors(t *testing.T) {
	testScope(t).Call(func(
		newSession sessions.NewSession,
		run Run,
	) {
		for _, src := range []string{
			`close("main")`,
			`close("nope")`,
			`chan("x", "secret")`,
			`case("shouting")`,
			`read("nope")`,
			`article(1)`,
			`write(x=1)`,
			`mark()`,
			`write(`,
		} {
			session, err := newSession("")
			if err != nil {
				t.Fatal(err)
			}
			err = run(t.Context(), session, "bad.star", []byte(src))
			if err == nil {
				t.Fatalf("expected error: %s", src)
			}
			if !strings.Contains(err.Error(), "bad.star") {
				t.Fatalf("got %v", err)
			}
		}
	})
}

func TestCancel(t *testing.T) {
	testScope(t).Call(func(
		newSession sessions.NewSession,
		run Run,
	) {
		session, err := newSession("")
		if err != nil {
			t.Fatal(err)
		}
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		err = run(ctx, session, "loop.star", []byte(`
while True:
    write("x")
`))
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestGlobals(t *testing.T) {
	testScope(t).Fork(
		func() Globals {
			return Globals{
				"name":  starlark.String("owl"),
				"write": starlark.None,
			}
		},
	).Call(func(
		newSession sessions.NewSession,
		run Run,
	) {
		session, err := newSession("")
		if err != nil {
			t.Fatal(err)
		}
		if err := run(t.Context(), session, "globals.star", []byte(`
article()
write(" ", name)
`)); err != nil {
			t.Fatal(err)
		}
		if v := mainValue(t, session); v != "an owl" {
			t.Fatalf("got %q", v)
		}
	})
}

func TestBrokenChannelBecomesError(t *testing.T) {
	panicWith := func(err error) *starlark.Builtin {
		return starlark.NewBuiltin("fail", func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
			panic(err)
		})
	}

	testScope(t).Fork(
		func() Globals {
			return Globals{
				"broken": panicWith(fmt.Errorf("%w: length drift", channels.ErrInvariant)),
				"other":  panicWith(errors.New("other")),
			}
		},
	).Call(func(
		newSession sessions.NewSession,
		run Run,
	) {
		session, err := newSession("")
		if err != nil {
			t.Fatal(err)
		}
		err = run(t.Context(), session, "broken.star", []byte(`
write("x")
broken()
`))
		if !errors.Is(err, channels.ErrInvariant) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "broken.star") {
			t.Fatalf("got %v", err)
		}

		func() {
			defer func() {
				p := recover()
				if p == nil {
					t.Fatal("should panic")
				}
				if err, ok := p.(error); !ok || err.Error() != "other" {
					t.Fatalf("got %v", p)
				}
			}()
			run(t.Context(), session, "other.star", []byte(`other()`))
		}()
	})
}
