package cli

// RunWithWriter runs the CLI with command output written to w
var RunWithWriter = run
