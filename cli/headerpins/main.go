// Package main is the headerpins CLI command itself.
package main

import (
	"os"

	pinscli "go.viam.com/headerpins/cli"
	"go.viam.com/headerpins/logging"
)

func main() {
	// Errors raised before the app configures its own logger still belong on stderr.
	logger := logging.NewBlankLogger("headerpins")
	logger.AddAppender(logging.NewWriterAppender(os.Stderr))
	logging.ReplaceGlobal(logger)

	if err := pinscli.NewApp().Run(os.Args); err != nil {
		logging.Global().Fatal(err)
	}
}
