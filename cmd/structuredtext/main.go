package main

import (
	"fmt"
	"os"

	"github.com/derickschaefer/structuredtext/internal/cmd"
)

// These are variables so that they can be set during the build time.
var (
	BuildVersion = "0.0.0"
	Commit       = "unknown"
)

func root() int {
	root := cmd.Root()
	root.Version = fmt.Sprintf("%s (%s)", BuildVersion, Commit)
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(root())
}
