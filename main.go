package main

import (
	"errors"
	"os"

	"github.com/AbdouB/clipper/internal/cli"
	"github.com/AbdouB/clipper/internal/dispatch"
)

var Version = "dev"

func main() {
	cli.Version = Version
	if err := cli.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode is 1 for errors the user can fix in the form, 2 for everything else
func exitCode(err error) int {
	if errors.Is(err, dispatch.ErrValidation) {
		return 1
	}
	return 2
}
