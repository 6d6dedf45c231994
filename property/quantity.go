package property

import (
	"fmt"

	"propkit/textid"
	"propkit/unit"
)

// Quantity holds a numeric magnitude tagged with a physical unit fixed at
// construction time. It composes advisory constraints over the float64
// magnitude and offers both typed (unit.Quantity) and unit-erased
// (magnitude + unit tag) access, so generic code such as persistence can
// handle any quantity without knowing its dimension.
type Quantity struct {
	base
	cons  ScalarConstraints[float64]
	value unit.Quantity
	def   unit.Quantity
}

// NewQuantity returns a container for quantities of unit u. def is the
// default magnitude in the unit's native scale.
func NewQuantity(g *Group, name textid.TextId, u unit.Unit, def float64) *Quantity {
	q := unit.New(def, u)
	p := &Quantity{value: q, def: q}
	p.init(g, name, p)
	return p
}

// NewQuantityRange returns a quantity container with enabled constraints
// covering [min, max] magnitudes and the given editing step.
func NewQuantityRange(g *Group, name textid.TextId, u unit.Unit, def, min, max, step float64) *Quantity {
	p := NewQuantity(g, name, u, def)
	p.cons = newConstraints(min, max, step)
	return p
}

// Unit returns the container's fixed unit.
func (p *Quantity) Unit() unit.Unit {
	return p.value.Unit()
}

// Value returns the current quantity.
func (p *Quantity) Value() unit.Quantity {
	return p.value
}

// SetValue assigns a quantity through the set protocol. A quantity of a
// different unit is rejected with ErrIncompatibleType and nothing mutates.
func (p *Quantity) SetValue(v unit.Quantity) error {
	if v.Unit() != p.value.Unit() {
		return fmt.Errorf("%w: want unit %s, got %s", ErrIncompatibleType, p.value.Unit(), v.Unit())
	}
	return setValue(&p.base, &p.value, v)
}

// Magnitude returns the magnitude in the container's native unit.
func (p *Quantity) Magnitude() float64 {
	return p.value.Value()
}

// SetMagnitude wraps the raw magnitude in the container's unit and assigns it
// through the set protocol.
func (p *Quantity) SetMagnitude(v float64) error {
	return setValue(&p.base, &p.value, unit.New(v, p.value.Unit()))
}

// DefaultValue returns the declared default quantity.
func (p *Quantity) DefaultValue() unit.Quantity {
	return p.def
}

// Constraints exposes the advisory range over the magnitude.
func (p *Quantity) Constraints() *ScalarConstraints[float64] {
	return &p.cons
}

func (p *Quantity) TypeName() string {
	return fmt.Sprintf("quantity(%s)", p.value.Unit())
}

func (p *Quantity) Variant() Variant {
	return QuantityVariant(p.value)
}

// SetVariant accepts a quantity of the container's unit, or a bare numeric
// magnitude which is taken to be in the container's native unit.
func (p *Quantity) SetVariant(v Variant) error {
	switch v.Kind() {
	case KindQuantity:
		q, err := v.AsQuantity()
		if err != nil {
			return err
		}
		return p.SetValue(q)
	case KindFloat, KindInt:
		f, err := v.AsFloat()
		if err != nil {
			return err
		}
		return p.SetMagnitude(f)
	default:
		return incompatibleKind(KindQuantity, v.Kind())
	}
}

func (p *Quantity) DefaultVariant() Variant {
	return QuantityVariant(p.def)
}

func (p *Quantity) RestoreDefault() error {
	return p.SetValue(p.def)
}

// NewLength returns a Length quantity container (millimeters).
func NewLength(g *Group, name textid.TextId, def float64) *Quantity {
	return NewQuantity(g, name, unit.Length, def)
}

// NewLengthRange is NewLength with enabled constraints.
func NewLengthRange(g *Group, name textid.TextId, def, min, max, step float64) *Quantity {
	return NewQuantityRange(g, name, unit.Length, def, min, max, step)
}

// NewArea returns an Area quantity container (square millimeters).
func NewArea(g *Group, name textid.TextId, def float64) *Quantity {
	return NewQuantity(g, name, unit.Area, def)
}

// NewAreaRange is NewArea with enabled constraints.
func NewAreaRange(g *Group, name textid.TextId, def, min, max, step float64) *Quantity {
	return NewQuantityRange(g, name, unit.Area, def, min, max, step)
}

// NewVolume returns a Volume quantity container (cubic millimeters).
func NewVolume(g *Group, name textid.TextId, def float64) *Quantity {
	return NewQuantity(g, name, unit.Volume, def)
}

// NewVolumeRange is NewVolume with enabled constraints.
func NewVolumeRange(g *Group, name textid.TextId, def, min, max, step float64) *Quantity {
	return NewQuantityRange(g, name, unit.Volume, def, min, max, step)
}

// NewMass returns a Mass quantity container (kilograms).
func NewMass(g *Group, name textid.TextId, def float64) *Quantity {
	return NewQuantity(g, name, unit.Mass, def)
}

// NewMassRange is NewMass with enabled constraints.
func NewMassRange(g *Group, name textid.TextId, def, min, max, step float64) *Quantity {
	return NewQuantityRange(g, name, unit.Mass, def, min, max, step)
}

// NewDuration returns a Time quantity container (seconds).
func NewDuration(g *Group, name textid.TextId, def float64) *Quantity {
	return NewQuantity(g, name, unit.Time, def)
}

// NewDurationRange is NewDuration with enabled constraints.
func NewDurationRange(g *Group, name textid.TextId, def, min, max, step float64) *Quantity {
	return NewQuantityRange(g, name, unit.Time, def, min, max, step)
}

// NewAngle returns an Angle quantity container (radians).
func NewAngle(g *Group, name textid.TextId, def float64) *Quantity {
	return NewQuantity(g, name, unit.Angle, def)
}

// NewAngleRange is NewAngle with enabled constraints.
func NewAngleRange(g *Group, name textid.TextId, def, min, max, step float64) *Quantity {
	return NewQuantityRange(g, name, unit.Angle, def, min, max, step)
}

// NewVelocity returns a Velocity quantity container (millimeters per second).
func NewVelocity(g *Group, name textid.TextId, def float64) *Quantity {
	return NewQuantity(g, name, unit.Velocity, def)
}

// NewVelocityRange is NewVelocity with enabled constraints.
func NewVelocityRange(g *Group, name textid.TextId, def, min, max, step float64) *Quantity {
	return NewQuantityRange(g, name, unit.Velocity, def, min, max, step)
}
