package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/reusee/dscope"
	"github.com/reusee/weave/cmds"
	"github.com/reusee/weave/debugs"
	"github.com/reusee/weave/formats"
	"github.com/reusee/weave/logs"
	"github.com/reusee/weave/modes"
	"github.com/reusee/weave/outputs"
	"github.com/reusee/weave/patterns"
	"github.com/reusee/weave/sessions"
	"github.com/reusee/weave/vars"
	"golang.org/x/term"
)

var (
	tapFlag     = cmds.Switch("-tap")
	formatsFlag = cmds.Switch("-formats")
	jobsFlag    = cmds.Var[int]("-jobs")
)

var (
	patternFiles []string
	channelNames []string
)

func init() {
	cmds.Define("run", cmds.Func(func(path string) {
		patternFiles = append(patternFiles, path)
	}).Desc("run a pattern file, repeatable; without it the pattern is read from stdin"))
	cmds.Define("-channel", cmds.Func(func(name string) {
		channelNames = append(channelNames, name)
	}).Desc("print the named channel instead of main, repeatable"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		registry *formats.Registry,
		batch patterns.Batch,
		tap debugs.Tap,
	) {

		if *formatsFlag {
			for _, name := range registry.Names() {
				fmt.Println(name)
			}
			return
		}

		sources := readSources()
		if len(sources) == 0 {
			fmt.Fprintln(os.Stderr, "no pattern: use 'run <file>' or pipe one into stdin")
			os.Exit(2)
		}

		results, err := batch(ctx, sources, vars.FirstNonZero(*jobsFlag, runtime.NumCPU()))
		if *tapFlag {
			for _, session := range results {
				tap(ctx, "session "+session.ID.String(), debugs.SessionGlobals(session))
			}
		}
		ce(err)

		for i, session := range results {
			if len(results) > 1 {
				fmt.Printf("== %s ==\n", sources[i].Name)
			}
			ce(printChannels(os.Stdout, session, channelNames))
		}
		logger.InfoContext(ctx, "done",
			"patterns", len(sources),
		)

	})

}

func readSources() []patterns.Source {
	if len(patternFiles) > 0 {
		sources, err := patterns.ReadSources(patternFiles)
		ce(err)
		return sources
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	content, err := io.ReadAll(os.Stdin)
	ce(err)
	return []patterns.Source{
		{
			Name:    "<stdin>",
			Content: content,
		},
	}
}

// printChannels writes the named channels, main if none named.
// Several channels are each preceded by a header line.
func printChannels(w io.Writer, session *sessions.Session, names []string) error {
	if len(names) == 0 {
		names = []string{outputs.MainChannel}
	}
	for _, name := range names {
		value, err := session.Read(name)
		if err != nil {
			return err
		}
		if len(names) > 1 {
			if _, err := fmt.Fprintf(w, "[%s]\n", name); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, value); err != nil {
			return err
		}
	}
	return nil
}
