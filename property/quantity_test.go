package property

import (
	"testing"

	"propkit/unit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuantity_TypedAccess verifies typed get/set with the fixed unit.
func TestQuantity_TypedAccess(t *testing.T) {
	g := NewGroup(nil)
	p := NewLength(g, name("lineWidth"), 1.5)

	assert.Equal(t, unit.Length, p.Unit())
	assert.Equal(t, unit.New(1.5, unit.Length), p.Value())
	assert.Equal(t, unit.New(1.5, unit.Length), p.DefaultValue())

	require.NoError(t, p.SetValue(unit.New(4.0, unit.Length)))
	assert.Equal(t, 4.0, p.Magnitude())
}

// TestQuantity_UnitMismatch verifies a foreign unit is rejected without
// mutation.
func TestQuantity_UnitMismatch(t *testing.T) {
	p := NewLength(nil, name("lineWidth"), 1.5)

	err := p.SetValue(unit.New(2.0, unit.Angle))
	require.ErrorIs(t, err, ErrIncompatibleType)
	assert.Equal(t, 1.5, p.Magnitude())
}

// TestQuantity_SetMagnitude verifies unit-erased assignment routes the full
// set protocol, including rollback.
func TestQuantity_SetMagnitude(t *testing.T) {
	rec := &recorder{}
	g := NewGroup(nil, WithValidator(rejectAbove(100)), WithObserver(rec))
	p := NewAngle(g, name("tilt"), 0.5)

	require.NoError(t, p.SetMagnitude(1.2))
	assert.Equal(t, unit.New(1.2, unit.Angle), p.Value())
	assert.Equal(t, []string{"tilt"}, rec.changed)

	err := p.SetMagnitude(200)
	require.Error(t, err)
	assert.Equal(t, 1.2, p.Magnitude())
	assert.Equal(t, []string{"tilt"}, rec.changed)
}

// TestQuantity_Variant verifies erased access for persistence-style callers.
func TestQuantity_Variant(t *testing.T) {
	p := NewMass(nil, name("payload"), 10)

	v := p.Variant()
	assert.Equal(t, KindQuantity, v.Kind())

	q, err := v.AsQuantity()
	require.NoError(t, err)
	assert.Equal(t, unit.New(10, unit.Mass), q)

	// A quantity variant of the right unit assigns directly
	require.NoError(t, p.SetVariant(QuantityVariant(unit.New(12, unit.Mass))))
	assert.Equal(t, 12.0, p.Magnitude())

	// A bare number is taken as a magnitude in the native unit
	require.NoError(t, p.SetVariant(FloatVariant(2.5)))
	assert.Equal(t, 2.5, p.Magnitude())
	require.NoError(t, p.SetVariant(IntVariant(3)))
	assert.Equal(t, 3.0, p.Magnitude())

	// Wrong unit or kind is rejected
	err = p.SetVariant(QuantityVariant(unit.New(1, unit.Length)))
	require.ErrorIs(t, err, ErrIncompatibleType)
	err = p.SetVariant(StringVariant("2.5"))
	require.ErrorIs(t, err, ErrIncompatibleType)
	assert.Equal(t, 3.0, p.Magnitude())
}

// TestQuantity_Constraints verifies the composed advisory range.
func TestQuantity_Constraints(t *testing.T) {
	p := NewLengthRange(nil, name("lineWidth"), 1.5, 0.1, 10, 0.1)

	c := p.Constraints()
	require.True(t, c.Enabled())
	assert.Equal(t, 0.1, c.Minimum())
	assert.Equal(t, 10.0, c.Maximum())
	assert.Equal(t, 0.1, c.SingleStep())

	// Advisory only
	require.NoError(t, p.SetMagnitude(500))
	assert.Equal(t, 500.0, p.Magnitude())

	plain := NewLength(nil, name("other"), 0)
	assert.False(t, plain.Constraints().Enabled())
}

// TestQuantity_UnitRoster verifies the convenience constructors pick the
// right units.
func TestQuantity_UnitRoster(t *testing.T) {
	tests := []struct {
		prop *Quantity
		unit unit.Unit
	}{
		{NewLength(nil, name("p"), 0), unit.Length},
		{NewArea(nil, name("p"), 0), unit.Area},
		{NewVolume(nil, name("p"), 0), unit.Volume},
		{NewMass(nil, name("p"), 0), unit.Mass},
		{NewDuration(nil, name("p"), 0), unit.Time},
		{NewAngle(nil, name("p"), 0), unit.Angle},
		{NewVelocity(nil, name("p"), 0), unit.Velocity},
		{NewLengthRange(nil, name("p"), 0, 0, 1, 0.1), unit.Length},
		{NewAreaRange(nil, name("p"), 0, 0, 1, 0.1), unit.Area},
		{NewVolumeRange(nil, name("p"), 0, 0, 1, 0.1), unit.Volume},
		{NewMassRange(nil, name("p"), 0, 0, 1, 0.1), unit.Mass},
		{NewDurationRange(nil, name("p"), 0, 0, 1, 0.1), unit.Time},
		{NewAngleRange(nil, name("p"), 0, 0, 1, 0.1), unit.Angle},
		{NewVelocityRange(nil, name("p"), 0, 0, 1, 0.1), unit.Velocity},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.unit, tt.prop.Unit())
	}

	assert.Equal(t, "quantity(Length)", NewLength(nil, name("p"), 0).TypeName())
}
