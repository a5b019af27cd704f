// Package pinmap translates between the three numberings of the Raspberry Pi 40-pin header:
// the physical header position, the Broadcom (SoC) GPIO line and the WiringPi index.
//
// Every function is a lookup over a constant table and is safe for concurrent use.
package pinmap

import "fmt"

// PhysicalPin is the 1-based position of a contact on the 40-pin header.
type PhysicalPin uint8

// GpioPin is the Broadcom SoC GPIO line number of a header contact.
type GpioPin uint8

// WiringPiPin is the WiringPi library index of a header contact.
type WiringPiPin uint8

func (p PhysicalPin) String() string {
	return fmt.Sprintf("%s %d", Physical, uint8(p))
}

func (p GpioPin) String() string {
	return fmt.Sprintf("%s %d", Gpio, uint8(p))
}

func (p WiringPiPin) String() string {
	return fmt.Sprintf("%s %d", WiringPi, uint8(p))
}
