package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go.viam.com/headerpins/config"
	"go.viam.com/headerpins/pinmap"
)

type conversion struct {
	From   pinmap.Scheme `json:"from"`
	To     pinmap.Scheme `json:"to"`
	Input  int           `json:"input"`
	Output int           `json:"output"`
}

type headerContact struct {
	Physical int    `json:"physical"`
	Name     string `json:"name"`
}

// ConvertAction converts every positional argument between the --from and --to schemes. Pins
// that convert are printed even when others fail; the failures are returned together.
func ConvertAction(c *cli.Context) error {
	from, err := pinmap.ParseScheme(c.String(flagFrom))
	if err != nil {
		return err
	}
	to, err := pinmap.ParseScheme(c.String(flagTo))
	if err != nil {
		return err
	}
	if c.Args().Len() == 0 {
		return errors.New("no pins to convert -- please provide one or more pin numbers. use --help for more information")
	}

	logger := loggerFrom(c).Sublogger("convert")
	var errs error
	conversions := make([]conversion, 0, c.Args().Len())
	for _, arg := range c.Args().Slice() {
		value, err := strconv.Atoi(arg)
		if err != nil {
			errs = multierr.Append(errs, errors.Errorf("%q is not a pin number", arg))
			continue
		}
		out, err := pinmap.Convert(value, from, to)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		conversions = append(conversions, conversion{From: from, To: to, Input: value, Output: out})
	}
	logger.Debugw("converted pins", "from", from.String(), "to", to.String(),
		"converted", len(conversions), "failed", len(multierr.Errors(errs)))

	if len(conversions) > 0 {
		if c.Bool(flagJSON) {
			if err := printJSON(c, conversions); err != nil {
				return multierr.Combine(errs, err)
			}
		} else {
			t := table.NewWriter()
			t.AppendHeader(table.Row{from.String(), to.String()})
			for _, conv := range conversions {
				t.AppendRow(table.Row{conv.Input, conv.Output})
			}
			printTable(c, t)
		}
	}
	return errs
}

// TableAction prints the whole translation table.
func TableAction(c *cli.Context) error {
	sortBy, err := pinmap.ParseScheme(c.String(flagSort))
	if err != nil {
		return err
	}
	mappings := pinmap.Mappings()
	sort.SliceStable(mappings, func(i, j int) bool {
		return mappings[i].Value(sortBy) < mappings[j].Value(sortBy)
	})
	loggerFrom(c).Debugw("printing pin table", "rows", len(mappings), "sort", sortBy.String())

	if c.Bool(flagJSON) {
		return printJSON(c, mappings)
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{pinmap.Physical.String(), pinmap.Gpio.String(), pinmap.WiringPi.String()})
	for _, m := range mappings {
		t.AppendRow(table.Row{int(m.Physical), int(m.Gpio), int(m.WiringPi)})
	}
	printTable(c, t)
	return nil
}

// HeaderAction prints the header the way it looks on the board: odd pins left, even pins right.
func HeaderAction(c *cli.Context) error {
	rows := pinmap.Header()
	if c.Bool(flagJSON) {
		contacts := make([]headerContact, 0, pinmap.HeaderSize)
		for i, row := range rows {
			for j, p := range row {
				contacts = append(contacts, headerContact{Physical: 2*i + j + 1, Name: p.Name()})
			}
		}
		return printJSON(c, contacts)
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"function", "pin", "pin", "function"})
	for i, row := range rows {
		t.AppendRow(table.Row{row[0].Name(), 2*i + 1, 2*i + 2, row[1].Name()})
	}
	printTable(c, t)
	return nil
}

// CheckAction validates a pin assignment file and prints the resolved assignments.
func CheckAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New("check takes exactly one argument: the path to a pin assignment file")
	}
	path := c.Args().First()
	logger := loggerFrom(c).Sublogger("check")

	conf, err := config.Read(path, logger)
	if err != nil {
		return err
	}
	assignments, resolveErr := conf.Resolve(path)
	if assignments == nil {
		assignments = []config.Assignment{}
	}
	if resolveErr != nil {
		logger.Warnw("invalid pin assignments", "path", path, "count", len(multierr.Errors(resolveErr)))
	}

	if c.Bool(flagJSON) {
		if err := printJSON(c, assignments); err != nil {
			return multierr.Combine(resolveErr, err)
		}
		return resolveErr
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"name", pinmap.Physical.String(), pinmap.Gpio.String(), pinmap.WiringPi.String()})
	for _, a := range assignments {
		t.AppendRow(table.Row{a.Name, int(a.Physical), int(a.Gpio), int(a.WiringPi)})
	}
	printTable(c, t)
	return resolveErr
}

func printTable(c *cli.Context, t table.Writer) {
	fmt.Fprintln(c.App.Writer, t.Render())
}

func printJSON(c *cli.Context, v interface{}) error {
	return json.NewEncoder(c.App.Writer).Encode(v)
}
