package weaveconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/weave/configs"
	"github.com/reusee/weave/modes"
)

func testScope(t *testing.T, src string) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewSourceLoader([]configs.Source{
				{
					Name:    "weave.cue",
					Content: []byte(src),
				},
			}, Schema)
		},
	)
}

func TestDefaultFormat(t *testing.T) {
	testScope(t, ``).Call(func(
		format DefaultFormat,
	) {
		if format != "english" {
			t.Fatalf("got %v", format)
		}
	})

	testScope(t, `default_format: "pirate"`).Call(func(
		format DefaultFormat,
	) {
		if format != "pirate" {
			t.Fatalf("got %v", format)
		}
	})
}

func TestStrict(t *testing.T) {
	testScope(t, ``).Call(func(
		strict Strict,
	) {
		if !strict {
			t.Fatal("should be strict in development mode")
		}
	})

	testScope(t, `strict: false`).Call(func(
		strict Strict,
	) {
		if strict {
			t.Fatal("should follow config")
		}
	})
}

func TestSchema(t *testing.T) {
	loader := configs.NewSourceLoader([]configs.Source{
		{
			Name: "weave.cue",
			Content: []byte(`
formats: [{
	name: "pirate"
	consonant: "arr"
	vowel: "arrn"
}]
`),
		},
	}, Schema)
	var formats []map[string]any
	if err := loader.AssignFirst("formats", &formats); err != nil {
		t.Fatal(err)
	}
	if len(formats) != 1 || formats[0]["name"] != "pirate" {
		t.Fatalf("got %v", formats)
	}

	bad := configs.NewSourceLoader([]configs.Source{
		{
			Name:    "weave.cue",
			Content: []byte(`colour: "red"`),
		},
	}, Schema)
	var s string
	if err := bad.AssignFirst("colour", &s); err == nil {
		t.Fatal("should error")
	}
}

func TestFindConfigFiles(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir1, ".weave.cue"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir2, "weave.cue"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	paths := findConfigFiles([]string{dir1, dir2})
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
	if paths[0] != filepath.Join(dir1, ".weave.cue") {
		t.Fatalf("got %v", paths)
	}
	if paths[1] != filepath.Join(dir2, "weave.cue") {
		t.Fatalf("got %v", paths)
	}
}
