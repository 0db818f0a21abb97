// Package bias turns a raw joystick sample into a signed skew in [-1, 1].
package bias

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCalibration = errors.New("bias: invalid calibration")

// Calibration is the measured travel of one joystick axis, in raw ADC units.
type Calibration struct {
	RawMin   uint16 `yaml:"raw_min"`
	RawMax   uint16 `yaml:"raw_max"`
	Deadzone uint16 `yaml:"deadzone"`
}

// DefaultCalibration matches the 12-bit ADC on the board's X axis.
func DefaultCalibration() Calibration {
	return Calibration{RawMin: 12, RawMax: 4076, Deadzone: 200}
}

func (c Calibration) Validate() error {
	if c.RawMin >= c.RawMax {
		return fmt.Errorf("%w: raw range [%d, %d]", ErrInvalidCalibration, c.RawMin, c.RawMax)
	}
	if int(c.Deadzone)*2 > int(c.RawMax)-int(c.RawMin) {
		return fmt.Errorf("%w: deadzone %d wider than half of [%d, %d]", ErrInvalidCalibration, c.Deadzone, c.RawMin, c.RawMax)
	}
	return nil
}

// Center is the resting position of the stick.
func (c Calibration) Center() int {
	return (int(c.RawMax) + int(c.RawMin)) / 2
}

// Bias maps raw to [-1, 1]. Samples inside the deadzone map to exactly 0.
func (c Calibration) Bias(raw uint16) float64 {
	center := c.Center()
	centered := int(raw) - center
	dz := int(c.Deadzone)

	if abs(centered) < dz {
		return 0
	}

	var b float64
	if centered > 0 {
		b = MapRange(float64(raw), float64(center+dz), float64(c.RawMax), 0, 1)
	} else {
		b = MapRange(float64(raw), float64(c.RawMin), float64(center-dz), -1, 0)
	}
	return Clamp(b)
}

// MapRange linearly maps v from [inMin, inMax] to [outMin, outMax].
// A degenerate input interval yields the middle of the output interval.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if math.Abs(inMax-inMin) < 1e-6 {
		return outMin + (outMax-outMin)/2
	}
	return outMin + (outMax-outMin)*(v-inMin)/(inMax-inMin)
}

// Clamp limits b to [-1, 1].
func Clamp(b float64) float64 {
	if b < -1 {
		return -1
	}
	if b > 1 {
		return 1
	}
	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
