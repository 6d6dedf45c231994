package property

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_ConstrainedCounter walks the advisory-constraints scenario: a
// constrained container accepts out-of-range values until a group validator
// starts rejecting, and rejections never clobber the last good value.
func TestScenario_ConstrainedCounter(t *testing.T) {
	limit := 0.0
	active := false
	g := NewGroup(nil, WithValidator(ValidatorFunc(func(p Property) error {
		if !active {
			return nil
		}
		return rejectAbove(limit).ValidateProperty(p)
	})))

	p := NewIntRange(g, name("counter"), 10, 0, 100, 5)
	require.Equal(t, 10, p.Value())
	require.True(t, p.Constraints().Enabled())
	require.Equal(t, 0, p.Constraints().Minimum())
	require.Equal(t, 100, p.Constraints().Maximum())
	require.Equal(t, 5, p.Constraints().SingleStep())

	// Constraints are advisory: 42 is fine even though it ignores the step
	require.NoError(t, p.SetValue(42))
	assert.Equal(t, 42, p.Value())

	// Now the group rejects values above 40
	active = true
	limit = 40

	err := p.SetValue(42)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 42, p.Value())

	err = p.SetValue(99)
	require.Error(t, err)
	assert.Equal(t, 42, p.Value())
}

// TestConstraints_Advisory verifies no assignment path clamps against the
// bounds, and that out-of-range values pass without a validator.
func TestConstraints_Advisory(t *testing.T) {
	g := NewGroup(nil)
	p := NewFloatRange(g, name("width"), 1.0, 0.0, 10.0, 0.5)

	require.NoError(t, p.SetValue(-5.0))
	assert.Equal(t, -5.0, p.Value())

	require.NoError(t, p.SetValue(1e9))
	assert.Equal(t, 1e9, p.Value())
}

// TestConstraints_Accessors verifies the capability's metadata surface.
func TestConstraints_Accessors(t *testing.T) {
	p := NewInt(nil, name("count"), 0)
	c := p.Constraints()

	assert.False(t, c.Enabled())

	c.SetRange(-10, 10)
	assert.Equal(t, -10, c.Minimum())
	assert.Equal(t, 10, c.Maximum())
	// SetRange leaves the enabled flag untouched
	assert.False(t, c.Enabled())

	c.SetEnabled(true)
	c.SetMinimum(-20)
	c.SetMaximum(20)
	c.SetSingleStep(2)
	assert.True(t, c.Enabled())
	assert.Equal(t, -20, c.Minimum())
	assert.Equal(t, 20, c.Maximum())
	assert.Equal(t, 2, c.SingleStep())
}

// TestSetVariant_RoundTrip verifies erased set/get for every builtin kind.
func TestSetVariant_RoundTrip(t *testing.T) {
	g := NewGroup(nil)
	now := time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)
	col := colorful.Color{R: 0.25, G: 0.5, B: 0.75}

	boolP := NewBool(g, name("b"), false)
	require.NoError(t, boolP.SetVariant(BoolVariant(true)))
	assert.True(t, boolP.Value())

	intP := NewInt(g, name("i"), 0)
	require.NoError(t, intP.SetVariant(IntVariant(7)))
	assert.Equal(t, 7, intP.Value())
	assert.Equal(t, IntVariant(7), intP.Variant())

	floatP := NewFloat(g, name("f"), 0)
	require.NoError(t, floatP.SetVariant(FloatVariant(3.25)))
	assert.Equal(t, 3.25, floatP.Value())

	stringP := NewString(g, name("s"), "")
	require.NoError(t, stringP.SetVariant(StringVariant("hello")))
	assert.Equal(t, "hello", stringP.Value())

	listP := NewStringList(g, name("list"), nil)
	require.NoError(t, listP.SetVariant(StringListVariant([]string{"x", "y"})))
	assert.Equal(t, []string{"x", "y"}, listP.Value())

	bytesP := NewBytes(g, name("data"), nil)
	require.NoError(t, bytesP.SetVariant(BytesVariant([]byte{9, 8})))
	assert.Equal(t, []byte{9, 8}, bytesP.Value())

	timeP := NewTime(g, name("t"), time.Time{})
	require.NoError(t, timeP.SetVariant(TimeVariant(now)))
	assert.Equal(t, now, timeP.Value())

	colorP := NewColor(g, name("c"), colorful.Color{})
	require.NoError(t, colorP.SetVariant(ColorVariant(col)))
	assert.Equal(t, col, colorP.Value())
}

// TestSetVariant_Incompatible verifies conversion failures leave the
// container untouched.
func TestSetVariant_Incompatible(t *testing.T) {
	tests := []struct {
		name string
		prop Property
		bad  Variant
	}{
		{"bool rejects string", NewBool(nil, name("b"), true), StringVariant("true")},
		{"int rejects string", NewInt(nil, name("i"), 3), StringVariant("3")},
		{"float rejects bool", NewFloat(nil, name("f"), 1.5), BoolVariant(true)},
		{"string rejects int", NewString(nil, name("s"), "keep"), IntVariant(1)},
		{"stringList rejects string", NewStringList(nil, name("l"), []string{"keep"}), StringVariant("a,b")},
		{"bytes rejects string", NewBytes(nil, name("d"), []byte("keep")), StringVariant("keep")},
		{"time rejects int", NewTime(nil, name("t"), time.Unix(100, 0)), IntVariant(100)},
		{"color rejects string", NewColor(nil, name("c"), colorful.Color{R: 1}), StringVariant("#ff0000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.prop.Variant()
			err := tt.prop.SetVariant(tt.bad)
			require.ErrorIs(t, err, ErrIncompatibleType)
			assert.Equal(t, before, tt.prop.Variant())
		})
	}
}

// TestStringList_CopySemantics verifies the container never aliases caller
// slices.
func TestStringList_CopySemantics(t *testing.T) {
	def := []string{"a"}
	p := NewStringList(nil, name("list"), def)
	def[0] = "mutated"
	assert.Equal(t, []string{"a"}, p.DefaultValue())

	in := []string{"x", "y"}
	require.NoError(t, p.SetValue(in))
	in[0] = "mutated"
	assert.Equal(t, []string{"x", "y"}, p.Value())

	out := p.Value()
	out[0] = "mutated"
	assert.Equal(t, []string{"x", "y"}, p.Value())
}

// TestBytes_CopySemantics verifies the container never aliases caller bytes.
func TestBytes_CopySemantics(t *testing.T) {
	in := []byte{1, 2}
	p := NewBytes(nil, name("data"), in)
	in[0] = 9
	assert.Equal(t, []byte{1, 2}, p.DefaultValue())

	out := p.Value()
	out[0] = 9
	assert.Equal(t, []byte{1, 2}, p.Value())
}

// TestTypeNames verifies the erased type identifiers.
func TestTypeNames(t *testing.T) {
	assert.Equal(t, "bool", NewBool(nil, name("p"), false).TypeName())
	assert.Equal(t, "int", NewInt(nil, name("p"), 0).TypeName())
	assert.Equal(t, "float", NewFloat(nil, name("p"), 0).TypeName())
	assert.Equal(t, "string", NewString(nil, name("p"), "").TypeName())
	assert.Equal(t, "stringList", NewStringList(nil, name("p"), nil).TypeName())
	assert.Equal(t, "bytes", NewBytes(nil, name("p"), nil).TypeName())
	assert.Equal(t, "time", NewTime(nil, name("p"), time.Time{}).TypeName())
	assert.Equal(t, "color", NewColor(nil, name("p"), colorful.Color{}).TypeName())
}
