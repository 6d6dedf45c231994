package property

// Number constrains the scalar types that can carry range metadata.
type Number interface {
	~int | ~int64 | ~float64
}

// ScalarConstraints is an advisory editing range for a numeric container:
// minimum, maximum and a suggested single step. The framework stores and
// reports these bounds but never clamps a value against them. Callers may
// hold out-of-range values at any time, and enforcement (if any) belongs to
// the presentation layer.
type ScalarConstraints[T Number] struct {
	enabled bool
	min     T
	max     T
	step    T
}

// Enabled reports whether the bounds are meant to be consulted.
func (c *ScalarConstraints[T]) Enabled() bool {
	return c.enabled
}

// SetEnabled toggles whether the bounds are meant to be consulted.
func (c *ScalarConstraints[T]) SetEnabled(on bool) {
	c.enabled = on
}

func (c *ScalarConstraints[T]) Minimum() T {
	return c.min
}

func (c *ScalarConstraints[T]) SetMinimum(v T) {
	c.min = v
}

func (c *ScalarConstraints[T]) Maximum() T {
	return c.max
}

func (c *ScalarConstraints[T]) SetMaximum(v T) {
	c.max = v
}

func (c *ScalarConstraints[T]) SingleStep() T {
	return c.step
}

func (c *ScalarConstraints[T]) SetSingleStep(v T) {
	c.step = v
}

// SetRange sets both bounds. The enabled flag is left as is.
func (c *ScalarConstraints[T]) SetRange(min, max T) {
	c.min = min
	c.max = max
}

func newConstraints[T Number](min, max, step T) ScalarConstraints[T] {
	return ScalarConstraints[T]{
		enabled: true,
		min:     min,
		max:     max,
		step:    step,
	}
}
