package pinmap

import (
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestConversions(t *testing.T) {
	gpio, err := PhysicalToGpio(3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gpio, test.ShouldEqual, GpioPin(2))

	wpi, err := PhysicalToWiringPi(8)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, wpi, test.ShouldEqual, WiringPiPin(15))

	physical, err := GpioToPhysical(14)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, physical, test.ShouldEqual, PhysicalPin(8))

	wpi, err = GpioToWiringPi(2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, wpi, test.ShouldEqual, WiringPiPin(8))

	physical, err = WiringPiToPhysical(15)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, physical, test.ShouldEqual, PhysicalPin(8))

	gpio, err = WiringPiToGpio(7)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gpio, test.ShouldEqual, GpioPin(4))

	_, err = PhysicalToGpio(1)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, IsUnmappedPinError(err), test.ShouldBeTrue)
}

func TestRoundTrips(t *testing.T) {
	for _, m := range Mappings() {
		gpio, err := PhysicalToGpio(m.Physical)
		test.That(t, err, test.ShouldBeNil)
		physical, err := GpioToPhysical(gpio)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, physical, test.ShouldEqual, m.Physical)

		wpi, err := PhysicalToWiringPi(m.Physical)
		test.That(t, err, test.ShouldBeNil)
		physical, err = WiringPiToPhysical(wpi)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, physical, test.ShouldEqual, m.Physical)

		wpi, err = GpioToWiringPi(m.Gpio)
		test.That(t, err, test.ShouldBeNil)
		gpio, err = WiringPiToGpio(wpi)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, gpio, test.ShouldEqual, m.Gpio)

		for _, from := range Schemes() {
			for _, to := range Schemes() {
				out, err := Convert(m.Value(from), from, to)
				test.That(t, err, test.ShouldBeNil)
				test.That(t, out, test.ShouldEqual, m.Value(to))
				back, err := Convert(out, to, from)
				test.That(t, err, test.ShouldBeNil)
				test.That(t, back, test.ShouldEqual, m.Value(from))
			}
		}
	}
}

func TestTableCompleteness(t *testing.T) {
	test.That(t, Mappings(), test.ShouldHaveLength, 28)
	for _, s := range Schemes() {
		pins := ValidPins(s)
		test.That(t, pins, test.ShouldHaveLength, 28)
		seen := map[int]bool{}
		for i, p := range pins {
			test.That(t, seen[p], test.ShouldBeFalse)
			seen[p] = true
			if i > 0 {
				test.That(t, p, test.ShouldBeGreaterThan, pins[i-1])
			}
			test.That(t, IsValid(p, s), test.ShouldBeTrue)
		}
	}
	test.That(t, ValidPins(Scheme(7)), test.ShouldBeNil)
	test.That(t, ValidPins(WiringPi)[:3], test.ShouldResemble, []int{0, 1, 2})

	// Callers get their own copy.
	table := Mappings()
	table[0].Gpio = 99
	gpio, err := PhysicalToGpio(3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gpio, test.ShouldEqual, GpioPin(2))
}

func TestUnmappedPins(t *testing.T) {
	for _, p := range []PhysicalPin{0, 1, 2, 6, 9, 17, 39, 41, 255} {
		_, err := PhysicalToGpio(p)
		test.That(t, IsUnmappedPinError(err), test.ShouldBeTrue)
		_, err = PhysicalToWiringPi(p)
		test.That(t, IsUnmappedPinError(err), test.ShouldBeTrue)
		test.That(t, IsValid(int(p), Physical), test.ShouldBeFalse)
	}
	for _, p := range []GpioPin{28, 29, 100} {
		_, err := GpioToPhysical(p)
		test.That(t, IsUnmappedPinError(err), test.ShouldBeTrue)
		_, err = GpioToWiringPi(p)
		test.That(t, IsUnmappedPinError(err), test.ShouldBeTrue)
	}
	for _, p := range []WiringPiPin{17, 18, 19, 20, 32} {
		_, err := WiringPiToPhysical(p)
		test.That(t, IsUnmappedPinError(err), test.ShouldBeTrue)
		_, err = WiringPiToGpio(p)
		test.That(t, IsUnmappedPinError(err), test.ShouldBeTrue)
	}

	_, err := PhysicalToGpio(41)
	test.That(t, err, test.ShouldBeError, UnmappedPinError{Scheme: Physical, Value: 41})
	test.That(t, err.Error(), test.ShouldEqual, "physical pin 41 is not a GPIO pin")

	_, err = WiringPiToGpio(17)
	test.That(t, err.Error(), test.ShouldEqual, "wiringpi pin 17 is not a GPIO pin")

	var unmapped UnmappedPinError
	test.That(t, errors.As(errors.Wrap(err, "configuring led"), &unmapped), test.ShouldBeTrue)
	test.That(t, unmapped.Scheme, test.ShouldEqual, WiringPi)
	test.That(t, unmapped.Value, test.ShouldEqual, 17)
	test.That(t, IsUnmappedPinError(errors.New("something else")), test.ShouldBeFalse)
	test.That(t, IsUnmappedPinError(nil), test.ShouldBeFalse)
}

func TestConvert(t *testing.T) {
	out, err := Convert(3, Physical, Gpio)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, 2)

	out, err = Convert(7, WiringPi, Gpio)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, 4)

	out, err = Convert(40, Physical, Physical)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, 40)

	_, err = Convert(1, Physical, Physical)
	test.That(t, IsUnmappedPinError(err), test.ShouldBeTrue)

	// 259 would wrap to 3 as a uint8.
	for _, value := range []int{-1, 259, math.MaxUint8 + 1, math.MaxInt} {
		_, err = Convert(value, Physical, Gpio)
		test.That(t, err, test.ShouldBeError, UnmappedPinError{Scheme: Physical, Value: value})
	}

	_, err = Convert(3, Scheme(5), Gpio)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, IsUnmappedPinError(err), test.ShouldBeFalse)
	_, err = Convert(3, Physical, Scheme(-1))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, IsUnmappedPinError(err), test.ShouldBeFalse)

	m, err := Lookup(31, WiringPi)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m, test.ShouldResemble, Mapping{Physical: 28, Gpio: 1, WiringPi: 31})
	test.That(t, m.Value(Scheme(3)), test.ShouldEqual, -1)
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, m := range Mappings() {
				gpio, err := PhysicalToGpio(m.Physical)
				if err != nil || gpio != m.Gpio {
					t.Errorf("expected %s for %s, got %s (%v)", m.Gpio, m.Physical, gpio, err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestMappingJSON(t *testing.T) {
	m, err := Lookup(8, Physical)
	test.That(t, err, test.ShouldBeNil)
	data, err := json.Marshal(m)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, `{"physical":8,"gpio":14,"wiringpi":15}`)

	var decoded Mapping
	test.That(t, json.Unmarshal([]byte(`{"physical":3,"gpio":2,"wiringpi":8}`), &decoded), test.ShouldBeNil)
	test.That(t, decoded, test.ShouldResemble, Mapping{Physical: 3, Gpio: 2, WiringPi: 8})

	test.That(t, json.Unmarshal([]byte(`{"physical":300}`), &decoded), test.ShouldNotBeNil)
}

func TestPinStrings(t *testing.T) {
	test.That(t, PhysicalPin(3).String(), test.ShouldEqual, "physical 3")
	test.That(t, GpioPin(2).String(), test.ShouldEqual, "gpio 2")
	test.That(t, WiringPiPin(8).String(), test.ShouldEqual, "wiringpi 8")
}
