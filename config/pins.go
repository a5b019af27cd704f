// Package config reads pin assignment files: named header contacts given in one numbering
// scheme, resolved through the pin translator.
package config

import (
	"fmt"
	"io"
	"sort"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"go.viam.com/headerpins/logging"
	"go.viam.com/headerpins/pinmap"
)

// PinAssignments names header contacts. Every value in Pins is an identifier in Scheme.
type PinAssignments struct {
	Scheme string         `json:"scheme"`
	Pins   map[string]int `json:"pins"`

	// FilePath is where the assignments were read from, if anywhere.
	FilePath string `json:"-"`
}

// Assignment is a named contact with all three of its identities.
type Assignment struct {
	Name string `json:"name"`
	pinmap.Mapping
}

// Read reads pin assignments from the given JSON5 file. Environment variables in the file are
// substituted first, so "${LED_PIN}" may stand in for a number.
func Read(filePath string, logger logging.Logger) (*PinAssignments, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	logger.Debugw("read pin assignments", "path", filePath, "bytes", len(buf))
	return fromBytes(filePath, buf)
}

// FromReader reads pin assignments from the given reader and specifies
// where, if applicable, the file the reader originated from.
func FromReader(originalPath string, r io.Reader) (*PinAssignments, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return fromBytes(originalPath, buf)
}

func fromBytes(originalPath string, buf []byte) (*PinAssignments, error) {
	conf := PinAssignments{FilePath: originalPath}
	if err := json5.Unmarshal(buf, &conf); err != nil {
		return nil, errors.Wrapf(err, "failed to decode pin assignments from %q", originalPath)
	}
	return &conf, nil
}

// Validate ensures every assignment names a distinct GPIO contact.
func (conf *PinAssignments) Validate(path string) error {
	_, err := conf.Resolve(path)
	return err
}

// Resolve translates every assignment, sorted by name. Assignments that fail are left out of
// the result and reported together in the returned error.
func (conf *PinAssignments) Resolve(path string) ([]Assignment, error) {
	if conf.Scheme == "" {
		return nil, utils.NewConfigValidationFieldRequiredError(path, "scheme")
	}
	scheme, err := pinmap.ParseScheme(conf.Scheme)
	if err != nil {
		return nil, utils.NewConfigValidationError(path, err)
	}
	if len(conf.Pins) == 0 {
		return nil, utils.NewConfigValidationFieldRequiredError(path, "pins")
	}

	names := lo.Keys(conf.Pins)
	sort.Strings(names)

	var errs error
	claimedBy := make(map[pinmap.PhysicalPin]string, len(names))
	assignments := make([]Assignment, 0, len(names))
	for _, name := range names {
		pinPath := fmt.Sprintf("%s.pins.%s", path, name)
		m, err := pinmap.Lookup(conf.Pins[name], scheme)
		if err != nil {
			errs = multierr.Append(errs, utils.NewConfigValidationError(pinPath, err))
			continue
		}
		if other, ok := claimedBy[m.Physical]; ok {
			errs = multierr.Append(errs, utils.NewConfigValidationError(pinPath,
				errors.Errorf("%s is already assigned to %q", m.Physical, other)))
			continue
		}
		claimedBy[m.Physical] = name
		assignments = append(assignments, Assignment{Name: name, Mapping: m})
	}
	return assignments, errs
}
