package pinmap

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Mapping is one GPIO carrying header contact seen through each numbering scheme.
type Mapping struct {
	Physical PhysicalPin `json:"physical"`
	Gpio     GpioPin     `json:"gpio"`
	WiringPi WiringPiPin `json:"wiringpi"`
}

// Value returns the identifier of the contact in the given scheme, or -1 for an unknown scheme.
func (m Mapping) Value(s Scheme) int {
	switch s {
	case Physical:
		return int(m.Physical)
	case Gpio:
		return int(m.Gpio)
	case WiringPi:
		return int(m.WiringPi)
	}
	return -1
}

// mappings is the only copy of the translation data; the indexes below are derived from it.
// Sorted by physical position.
var mappings = []Mapping{
	{3, 2, 8},
	{5, 3, 9},
	{7, 4, 7},
	{8, 14, 15},
	{10, 15, 16},
	{11, 17, 0},
	{12, 18, 1},
	{13, 27, 2},
	{15, 22, 3},
	{16, 23, 4},
	{18, 24, 5},
	{19, 10, 12},
	{21, 9, 13},
	{22, 25, 6},
	{23, 11, 14},
	{24, 8, 10},
	{26, 7, 11},
	{27, 0, 30},
	{28, 1, 31},
	{29, 5, 21},
	{31, 6, 22},
	{32, 12, 26},
	{33, 13, 23},
	{35, 19, 24},
	{36, 16, 27},
	{37, 26, 25},
	{38, 20, 28},
	{40, 21, 29},
}

var (
	byPhysical = make(map[PhysicalPin]Mapping, len(mappings))
	byGpio     = make(map[GpioPin]Mapping, len(mappings))
	byWiringPi = make(map[WiringPiPin]Mapping, len(mappings))
)

func init() {
	for _, m := range mappings {
		if _, dup := byPhysical[m.Physical]; dup {
			panic(fmt.Sprintf("pinmap: duplicate table entry for %s", m.Physical))
		}
		if _, dup := byGpio[m.Gpio]; dup {
			panic(fmt.Sprintf("pinmap: duplicate table entry for %s", m.Gpio))
		}
		if _, dup := byWiringPi[m.WiringPi]; dup {
			panic(fmt.Sprintf("pinmap: duplicate table entry for %s", m.WiringPi))
		}
		byPhysical[m.Physical] = m
		byGpio[m.Gpio] = m
		byWiringPi[m.WiringPi] = m
	}
}

// PhysicalToGpio returns the GPIO line wired to a header position.
func PhysicalToGpio(p PhysicalPin) (GpioPin, error) {
	m, ok := byPhysical[p]
	if !ok {
		return 0, NewUnmappedPinError(Physical, int(p))
	}
	return m.Gpio, nil
}

// PhysicalToWiringPi returns the WiringPi index of a header position.
func PhysicalToWiringPi(p PhysicalPin) (WiringPiPin, error) {
	m, ok := byPhysical[p]
	if !ok {
		return 0, NewUnmappedPinError(Physical, int(p))
	}
	return m.WiringPi, nil
}

// GpioToPhysical returns the header position a GPIO line is wired to.
func GpioToPhysical(p GpioPin) (PhysicalPin, error) {
	m, ok := byGpio[p]
	if !ok {
		return 0, NewUnmappedPinError(Gpio, int(p))
	}
	return m.Physical, nil
}

// GpioToWiringPi returns the WiringPi index of a GPIO line.
func GpioToWiringPi(p GpioPin) (WiringPiPin, error) {
	m, ok := byGpio[p]
	if !ok {
		return 0, NewUnmappedPinError(Gpio, int(p))
	}
	return m.WiringPi, nil
}

// WiringPiToPhysical returns the header position of a WiringPi index.
func WiringPiToPhysical(p WiringPiPin) (PhysicalPin, error) {
	m, ok := byWiringPi[p]
	if !ok {
		return 0, NewUnmappedPinError(WiringPi, int(p))
	}
	return m.Physical, nil
}

// WiringPiToGpio returns the GPIO line of a WiringPi index.
func WiringPiToGpio(p WiringPiPin) (GpioPin, error) {
	m, ok := byWiringPi[p]
	if !ok {
		return 0, NewUnmappedPinError(WiringPi, int(p))
	}
	return m.Gpio, nil
}

// Lookup returns the full mapping of the contact identified by value in the given scheme.
// Values that do not fit in a pin identifier are unmapped; they never wrap around.
func Lookup(value int, from Scheme) (Mapping, error) {
	if !from.valid() {
		return Mapping{}, errors.Errorf("unknown pin scheme %v", from)
	}
	if value < 0 || value > math.MaxUint8 {
		return Mapping{}, NewUnmappedPinError(from, value)
	}

	var (
		m  Mapping
		ok bool
	)
	switch from {
	case Physical:
		m, ok = byPhysical[PhysicalPin(value)]
	case Gpio:
		m, ok = byGpio[GpioPin(value)]
	case WiringPi:
		m, ok = byWiringPi[WiringPiPin(value)]
	}
	if !ok {
		return Mapping{}, NewUnmappedPinError(from, value)
	}
	return m, nil
}

// Convert translates value from one scheme to another. Converting to the same scheme returns
// the value unchanged as long as it names a GPIO contact.
func Convert(value int, from, to Scheme) (int, error) {
	if !to.valid() {
		return 0, errors.Errorf("unknown pin scheme %v", to)
	}
	m, err := Lookup(value, from)
	if err != nil {
		return 0, err
	}
	return m.Value(to), nil
}

// IsValid reports whether value names a GPIO contact in the given scheme.
func IsValid(value int, s Scheme) bool {
	_, err := Lookup(value, s)
	return err == nil
}

// Mappings returns a copy of the translation table, sorted by physical position.
func Mappings() []Mapping {
	out := make([]Mapping, len(mappings))
	copy(out, mappings)
	return out
}

// ValidPins returns every identifier of the given scheme in ascending order. It returns nil for
// an unknown scheme.
func ValidPins(s Scheme) []int {
	if !s.valid() {
		return nil
	}
	pins := lo.Map(mappings, func(m Mapping, _ int) int {
		return m.Value(s)
	})
	sort.Ints(pins)
	return pins
}
