package main

import (
	"os"

	"github.com/splittab-dev/splittab/internal/commands"
	"github.com/splittab-dev/splittab/pkg/logging"
)

func main() {
	logging.Setup()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
