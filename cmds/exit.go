package cmds

import "os"

var exit = os.Exit
