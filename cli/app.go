// Package cli contains the headerpins command line tool.
package cli

import (
	"github.com/urfave/cli/v2"

	"go.viam.com/headerpins/logging"
)

const (
	// Global flags.
	flagDebug    = "debug"
	flagLogLevel = "log-level"
	flagJSON     = "json"

	// Command flags.
	flagFrom = "from"
	flagTo   = "to"
	flagSort = "sort"

	loggerMetadataKey = "logger"
)

// NewApp returns the headerpins command line application.
func NewApp() *cli.App {
	return &cli.App{
		Name:            "headerpins",
		Usage:           "translate Raspberry Pi header pins between physical, GPIO and WiringPi numbering",
		HideHelpCommand: true,
		Metadata:        map[string]interface{}{},
		// Errors, including multierr combinations, are returned to the caller of Run instead
		// of exiting the process.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Value: "info",
				Usage: "minimum log level: debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  flagJSON,
				Usage: "print results as json instead of tables",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "convert pins from one numbering scheme to another",
				UsageText: "headerpins convert [--from <scheme>] [--to <scheme>] <pin>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagFrom,
						Value: "physical",
						Usage: "scheme of the input pins: physical (board), gpio (bcm) or wiringpi (wpi)",
					},
					&cli.StringFlag{
						Name:  flagTo,
						Value: "gpio",
						Usage: "scheme to convert to: physical (board), gpio (bcm) or wiringpi (wpi)",
					},
				},
				Action: ConvertAction,
			},
			{
				Name:  "table",
				Usage: "print every GPIO pin in all three numbering schemes",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagSort,
						Value: "physical",
						Usage: "scheme to sort the rows by",
					},
				},
				Action: TableAction,
			},
			{
				Name:   "header",
				Usage:  "print the 40-pin header layout, including power and ground pins",
				Action: HeaderAction,
			},
			{
				Name:      "check",
				Usage:     "validate a JSON5 file of named pin assignments",
				ArgsUsage: "<file>",
				Action:    CheckAction,
			},
		},
	}
}

// setupLogger sends logs to the app's error writer so they never mix with command output. The
// logger is installed before the level is parsed so a bad --log-level is reported there too.
func setupLogger(c *cli.Context) error {
	logger := logging.NewBlankLogger("headerpins")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logging.ReplaceGlobal(logger)
	c.App.Metadata[loggerMetadataKey] = logger

	level, err := logging.LevelFromString(c.String(flagLogLevel))
	if err != nil {
		return err
	}
	if c.Bool(flagDebug) {
		level = logging.DEBUG
	}
	logger.SetLevel(level)
	return nil
}

func loggerFrom(c *cli.Context) logging.Logger {
	if logger, ok := c.App.Metadata[loggerMetadataKey].(logging.Logger); ok {
		return logger
	}
	return logging.Global()
}
