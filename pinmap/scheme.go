package pinmap

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Scheme is one of the pin numbering conventions.
type Scheme int

const (
	// Physical numbers contacts by their position on the header.
	Physical Scheme = iota
	// Gpio numbers contacts by their Broadcom GPIO line.
	Gpio
	// WiringPi numbers contacts the way the WiringPi library does.
	WiringPi
)

var schemeNames = map[Scheme]string{
	Physical: "physical",
	Gpio:     "gpio",
	WiringPi: "wiringpi",
}

// schemeAliases holds every accepted spelling, including the names other pin libraries use.
var schemeAliases = map[string]Scheme{
	"physical": Physical,
	"board":    Physical,
	"header":   Physical,
	"gpio":     Gpio,
	"bcm":      Gpio,
	"broadcom": Gpio,
	"wiringpi": WiringPi,
	"wpi":      WiringPi,
}

// Schemes returns every known scheme.
func Schemes() []Scheme {
	return []Scheme{Physical, Gpio, WiringPi}
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

func (s Scheme) valid() bool {
	_, ok := schemeNames[s]
	return ok
}

// ParseScheme returns the scheme named by the input, ignoring case and surrounding spaces.
func ParseScheme(name string) (Scheme, error) {
	s, ok := schemeAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Physical, errors.Errorf("unknown pin scheme %q", name)
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, errors.Errorf("unknown pin scheme %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
