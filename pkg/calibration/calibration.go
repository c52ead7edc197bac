// Package calibration converts the SHT4x analog channel voltages into
// calibrated physical quantities, carrying each input's uncertainty through
// the datasheet equations to the outputs.
package calibration

import "github.com/ja7ad/sensorcal/pkg/dist"

// Inputs is one triple of input values, scalar or distributional.
// Produced fresh per iteration and not retained.
type Inputs struct {
	Vrh     dist.Value
	Vt      dist.Value
	Vsupply dist.Value
}

func (in Inputs) channel(c InputChannel) dist.Value {
	switch c {
	case Vrh:
		return in.Vrh
	case Vt:
		return in.Vt
	default:
		return in.Vsupply
	}
}

// Evaluate substitutes the inputs into the calibration equations for the
// channels selector covers. It is pure: same inputs, same outputs.
//
// The second return is the primary result: the selected channel's value, or,
// under AllOutputs, the last-evaluated channel (Fahrenheit). Single-value
// consumers such as the benchmark line depend on that ordering.
func Evaluate(in Inputs, selector OutputChannel) (map[OutputChannel]dist.Value, dist.Value, error) {
	if in.Vsupply.Mean() <= 0 {
		return nil, dist.Value{}, ErrNonPositiveSupply
	}

	values := make(map[OutputChannel]dist.Value, NumOutputs)
	var primary dist.Value
	for _, ch := range selector.Selected() {
		c := calibrationTable[ch]
		v := in.channel(c.source).Div(in.Vsupply).Scale(c.gain).Shift(c.offset)
		values[ch] = v
		primary = v
	}

	return values, primary, nil
}
