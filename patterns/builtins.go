package patterns

import (
	"strings"

	"github.com/reusee/weave/channels"
	"github.com/reusee/weave/formats"
	"github.com/reusee/weave/sessions"
	"go.starlark.net/starlark"
)

type builtinFunc = func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// Builtins returns the predeclared functions that drive session.
func Builtins(session *sessions.Session) starlark.StringDict {
	funcs := map[string]builtinFunc{

		"write": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) > 0 {
				return nil, errUnexpectedKeyword(fn)
			}
			var b strings.Builder
			for _, arg := range args {
				b.WriteString(toText(arg))
			}
			session.Write(b.String())
			return starlark.None, nil
		},

		"article": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
				return nil, err
			}
			session.Article()
			return starlark.None, nil
		},

		"send": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			var text starlark.Value
			var overwrite bool
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
				"name", &name,
				"text", &text,
				"overwrite?", &overwrite,
			); err != nil {
				return nil, err
			}
			session.WriteToTarget(name, toText(text), overwrite)
			return starlark.None, nil
		},

		"target": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			session.CreateTarget(name)
			return starlark.None, nil
		},

		"clear": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			session.ClearTarget(name)
			return starlark.None, nil
		},

		"mark": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			session.SetMarker(name)
			return starlark.None, nil
		},

		"dist": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var a, b string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "a", &a, "b", &b); err != nil {
				return nil, err
			}
			return starlark.MakeInt(session.Distance(a, b)), nil
		},

		"copy": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var a, b string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "a", &a, "b", &b); err != nil {
				return nil, err
			}
			return starlark.String(session.CopyRegion(a, b)), nil
		},

		"chan": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			visibilityName := "public"
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
				"name", &name,
				"visibility?", &visibilityName,
			); err != nil {
				return nil, err
			}
			visibility, err := channels.ParseVisibility(visibilityName)
			if err != nil {
				return nil, err
			}
			session.OpenChannel(name, visibility)
			return starlark.None, nil
		},

		"close": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			if err := session.CloseChannel(name); err != nil {
				return nil, err
			}
			return starlark.None, nil
		},

		"case": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var modeName string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "mode", &modeName); err != nil {
				return nil, err
			}
			mode, err := formats.ParseCase(modeName)
			if err != nil {
				return nil, err
			}
			session.SetCase(mode)
			return starlark.None, nil
		},

		"read": func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var name string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name); err != nil {
				return nil, err
			}
			value, err := session.Read(name)
			if err != nil {
				return nil, err
			}
			return starlark.String(value), nil
		},
	}

	ret := make(starlark.StringDict, len(funcs))
	for name, fn := range funcs {
		ret[name] = starlark.NewBuiltin(name, fn)
	}
	return ret
}

// toText renders a value for output. None renders as nothing.
func toText(v starlark.Value) string {
	switch v := v.(type) {
	case nil, starlark.NoneType:
		return ""
	case starlark.String:
		return string(v)
	}
	return v.String()
}
