// Package unit defines physical measurement units and unit-tagged quantities.
//
// Magnitudes are always expressed in a unit's native scale (millimeters for
// lengths, radians for angles, and so on). The package performs no unit
// conversion; it only tags numeric values so that generic code can tell
// quantities of different dimensions apart.
package unit

import (
	"fmt"
	"strconv"
)

// Unit identifies the physical dimension of a quantity.
type Unit uint8

const (
	// None marks a dimensionless quantity.
	None Unit = iota
	// Length is measured in millimeters.
	Length
	// Area is measured in square millimeters.
	Area
	// Volume is measured in cubic millimeters.
	Volume
	// Mass is measured in kilograms.
	Mass
	// Time is measured in seconds.
	Time
	// Angle is measured in radians.
	Angle
	// Velocity is measured in millimeters per second.
	Velocity
)

// String returns the unit's name.
func (u Unit) String() string {
	switch u {
	case None:
		return "None"
	case Length:
		return "Length"
	case Area:
		return "Area"
	case Volume:
		return "Volume"
	case Mass:
		return "Mass"
	case Time:
		return "Time"
	case Angle:
		return "Angle"
	case Velocity:
		return "Velocity"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// Symbol returns the symbol of the unit's native scale.
func (u Unit) Symbol() string {
	switch u {
	case Length:
		return "mm"
	case Area:
		return "mm²"
	case Volume:
		return "mm³"
	case Mass:
		return "kg"
	case Time:
		return "s"
	case Angle:
		return "rad"
	case Velocity:
		return "mm/s"
	default:
		return ""
	}
}

// Quantity is a numeric magnitude tagged with a unit. The zero Quantity is a
// dimensionless zero.
type Quantity struct {
	value float64
	unit  Unit
}

// New returns a quantity holding value in the unit's native scale.
func New(value float64, u Unit) Quantity {
	return Quantity{value: value, unit: u}
}

// Value returns the magnitude in the quantity's native scale.
func (q Quantity) Value() float64 {
	return q.value
}

// Unit returns the quantity's unit.
func (q Quantity) Unit() Unit {
	return q.unit
}

// String renders the magnitude followed by the unit symbol, e.g. "25.4 mm".
func (q Quantity) String() string {
	s := strconv.FormatFloat(q.value, 'g', -1, 64)
	if sym := q.unit.Symbol(); sym != "" {
		return s + " " + sym
	}
	return s
}
