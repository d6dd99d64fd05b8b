package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/weave/debugs"
	"github.com/reusee/weave/patterns"
)

type Module struct {
	dscope.Module
	Patterns patterns.Module
	Debugs   debugs.Module
}
