package main

import (
	"os"

	"wordfind/cmd"
)

// Build is set via ldflags at build time
var Build = "dev"

func main() {
	cmd.SetBuild(Build)
	os.Exit(cmd.Execute())
}
