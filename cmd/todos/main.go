package main

import (
	"os"

	"github.com/idilsaglam/todos/internal/cli"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	os.Exit(cli.Main())
}
