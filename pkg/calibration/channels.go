package calibration

import "fmt"

// InputChannel identifies one of the three analog voltages the sensor exposes.
type InputChannel int

const (
	// Vrh is the ratiometric analog voltage for the humidity measurement (Volt).
	Vrh InputChannel = iota
	// Vt is the ratiometric analog voltage for the temperature measurement (Volt).
	Vt
	// Vsupply is the supply voltage (Volt).
	Vsupply
)

// OutputChannel identifies a calibrated output quantity.
type OutputChannel int

const (
	RelativeHumidity OutputChannel = iota
	TemperatureCelsius
	TemperatureFahrenheit

	// AllOutputs selects every output channel.
	AllOutputs
)

// NumOutputs is the number of concrete output channels.
const NumOutputs = 3

// coefficients of the linear calibration equation
//
//	value = offset + gain * (source / Vsupply)
//
// taken from Figure 4, page 8 of the Sensirion SHT4xI-analog datasheet
// (2024-07-03). Fixed; never recomputed.
type coefficients struct {
	offset float64
	gain   float64
	source InputChannel
}

var calibrationTable = [NumOutputs]coefficients{
	RelativeHumidity:      {offset: -12.5, gain: 125, source: Vrh},
	TemperatureCelsius:    {offset: -66.875, gain: 218.75, source: Vt},
	TemperatureFahrenheit: {offset: -88.375, gain: 393.75, source: Vt},
}

var outputLabels = [NumOutputs]string{
	RelativeHumidity:      "Calibrated Relative Humidity",
	TemperatureCelsius:    "Calibrated Temperature (in Celsius)",
	TemperatureFahrenheit: "Calibrated Temperature (in Fahrenheit)",
}

var outputUnits = [NumOutputs]string{
	RelativeHumidity:      "%",
	TemperatureCelsius:    "Celsius",
	TemperatureFahrenheit: "Fahrenheit",
}

func (o OutputChannel) String() string {
	switch o {
	case RelativeHumidity:
		return "relative-humidity"
	case TemperatureCelsius:
		return "temperature-celsius"
	case TemperatureFahrenheit:
		return "temperature-fahrenheit"
	case AllOutputs:
		return "all"
	default:
		return fmt.Sprintf("OutputChannel(%d)", int(o))
	}
}

// Label returns the human-readable description used in reports.
func (o OutputChannel) Label() string { return outputLabels[o] }

// Unit returns the unit of measurement for the channel.
func (o OutputChannel) Unit() string { return outputUnits[o] }

// Symbol returns the stable variable name used in structured output records.
func (o OutputChannel) Symbol() string {
	return fmt.Sprintf("outputDistributions[%d]", int(o))
}

// Selected expands o into the concrete channels it covers, in formula
// evaluation order.
func (o OutputChannel) Selected() []OutputChannel {
	if o == AllOutputs {
		return []OutputChannel{RelativeHumidity, TemperatureCelsius, TemperatureFahrenheit}
	}
	return []OutputChannel{o}
}
