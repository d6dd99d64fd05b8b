package weaveconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/weave/configs"
	"github.com/reusee/weave/logs"
)

//go:embed schema.cue
var Schema string

var configFileNames = []string{
	"weave.cue",
	".weave.cue",
}

// ConfigsLoader loads weave.cue files. Earlier roots take precedence:
// working directory, then user config dir, then /etc.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	paths := findConfigFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, Schema)
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range configFileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
