package patterns

import (
	"fmt"

	"go.starlark.net/starlark"
)

func errUnexpectedKeyword(fn *starlark.Builtin) error {
	return fmt.Errorf("%s: unexpected keyword arguments", fn.Name())
}
