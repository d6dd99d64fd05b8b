package cmds

import (
	"slices"
	"testing"
)

func TestVar(t *testing.T) {
	jobs := Var[int]("-TestVar-jobs")
	format := Var[string]("-TestVar-format")
	GlobalExecutor.MustExecute([]string{
		"-TestVar-jobs", "4",
		"-TestVar-format", "pirate",
	})
	if *jobs != 4 {
		t.Fatalf("got %v", *jobs)
	}
	if *format != "pirate" {
		t.Fatalf("got %v", *format)
	}

	// trailing dot resets
	GlobalExecutor.MustExecute([]string{
		"-TestVar-format.",
	})
	if *format != "" {
		t.Fatalf("got %v", *format)
	}
}

func TestSwitch(t *testing.T) {
	strict := Switch("-TestSwitch-strict")
	GlobalExecutor.MustExecute([]string{
		"-TestSwitch-strict",
	})
	if !*strict {
		t.Fatal("should be on")
	}
	GlobalExecutor.MustExecute([]string{
		"!-TestSwitch-strict",
	})
	if *strict {
		t.Fatal("should be off")
	}
}

func TestCollect(t *testing.T) {
	names := Collect[string]("-TestCollect-channel")
	GlobalExecutor.MustExecute([]string{
		"-TestCollect-channel", "main",
		"-TestCollect-channel", "notes",
	})
	if !slices.Equal(*names, []string{"main", "notes"}) {
		t.Fatalf("got %v", *names)
	}
}

func TestTypedVar(t *testing.T) {
	type FormatName string
	v := Var[FormatName]("-TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"-TestTypedVar", "english",
	})
	if *v != "english" {
		t.Fatalf("got %v", *v)
	}
}
