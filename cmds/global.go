package cmds

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor, exiting the process on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		GlobalExecutor.output.Write([]byte(err.Error() + "\n"))
		GlobalExecutor.PrintUsage()
		exit(2)
	}
}
