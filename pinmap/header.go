package pinmap

import (
	"fmt"

	"periph.io/x/conn/v3/pin"
)

// HeaderSize is the number of contacts on the header.
const HeaderSize = 40

// powerPins are the header contacts that carry no GPIO signal.
var powerPins = map[PhysicalPin]pin.Pin{
	1:  pin.V3_3,
	2:  pin.V5,
	4:  pin.V5,
	6:  pin.GROUND,
	9:  pin.GROUND,
	14: pin.GROUND,
	17: pin.V3_3,
	20: pin.GROUND,
	25: pin.GROUND,
	30: pin.GROUND,
	34: pin.GROUND,
	39: pin.GROUND,
}

// HeaderPin describes the contact at a header position. GPIO contacts are named after their
// Broadcom line, e.g. "GPIO2"; power and ground contacts are the periph.io constants for them.
func HeaderPin(p PhysicalPin) (pin.Pin, error) {
	if m, ok := byPhysical[p]; ok {
		return &pin.BasicPin{N: fmt.Sprintf("GPIO%d", m.Gpio)}, nil
	}
	if power, ok := powerPins[p]; ok {
		return power, nil
	}
	return nil, NewUnmappedPinError(Physical, int(p))
}

// Header returns the header as rows of two contacts, odd positions on the left. Row i holds
// positions 2i+1 and 2i+2.
func Header() [][]pin.Pin {
	rows := make([][]pin.Pin, HeaderSize/2)
	for i := range rows {
		left, _ := HeaderPin(PhysicalPin(2*i + 1))
		right, _ := HeaderPin(PhysicalPin(2*i + 2))
		rows[i] = []pin.Pin{left, right}
	}
	return rows
}
