package property

import (
	"time"

	"propkit/textid"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	_ Property = (*Bool)(nil)
	_ Property = (*Int)(nil)
	_ Property = (*Float)(nil)
	_ Property = (*String)(nil)
	_ Property = (*StringList)(nil)
	_ Property = (*Bytes)(nil)
	_ Property = (*Time)(nil)
	_ Property = (*Color)(nil)
	_ Property = (*Quantity)(nil)
)

// Bool holds a boolean value.
type Bool struct {
	base
	value bool
	def   bool
}

// NewBool returns a Bool registered with g (nil constructs it detached). def
// is both the initial value and the declared default.
func NewBool(g *Group, name textid.TextId, def bool) *Bool {
	p := &Bool{value: def, def: def}
	p.init(g, name, p)
	return p
}

func (p *Bool) Value() bool {
	return p.value
}

func (p *Bool) SetValue(v bool) error {
	return setValue(&p.base, &p.value, v)
}

func (p *Bool) DefaultValue() bool {
	return p.def
}

func (p *Bool) TypeName() string {
	return "bool"
}

func (p *Bool) Variant() Variant {
	return BoolVariant(p.value)
}

func (p *Bool) SetVariant(v Variant) error {
	val, err := v.AsBool()
	if err != nil {
		return err
	}
	return p.SetValue(val)
}

func (p *Bool) DefaultVariant() Variant {
	return BoolVariant(p.def)
}

func (p *Bool) RestoreDefault() error {
	return p.SetValue(p.def)
}

// Int holds an integer value with optional advisory constraints.
type Int struct {
	base
	cons  ScalarConstraints[int]
	value int
	def   int
}

// NewInt returns an Int with constraints disabled.
func NewInt(g *Group, name textid.TextId, def int) *Int {
	p := &Int{value: def, def: def}
	p.init(g, name, p)
	return p
}

// NewIntRange returns an Int with enabled constraints covering [min, max]
// and the given editing step.
func NewIntRange(g *Group, name textid.TextId, def, min, max, step int) *Int {
	p := NewInt(g, name, def)
	p.cons = newConstraints(min, max, step)
	return p
}

func (p *Int) Value() int {
	return p.value
}

func (p *Int) SetValue(v int) error {
	return setValue(&p.base, &p.value, v)
}

func (p *Int) DefaultValue() int {
	return p.def
}

// Constraints exposes the advisory range capability for inspection and
// mutation.
func (p *Int) Constraints() *ScalarConstraints[int] {
	return &p.cons
}

func (p *Int) TypeName() string {
	return "int"
}

func (p *Int) Variant() Variant {
	return IntVariant(p.value)
}

func (p *Int) SetVariant(v Variant) error {
	val, err := v.AsInt()
	if err != nil {
		return err
	}
	return p.SetValue(val)
}

func (p *Int) DefaultVariant() Variant {
	return IntVariant(p.def)
}

func (p *Int) RestoreDefault() error {
	return p.SetValue(p.def)
}

// Float holds a float64 value with optional advisory constraints.
type Float struct {
	base
	cons  ScalarConstraints[float64]
	value float64
	def   float64
}

// NewFloat returns a Float with constraints disabled.
func NewFloat(g *Group, name textid.TextId, def float64) *Float {
	p := &Float{value: def, def: def}
	p.init(g, name, p)
	return p
}

// NewFloatRange returns a Float with enabled constraints covering [min, max]
// and the given editing step.
func NewFloatRange(g *Group, name textid.TextId, def, min, max, step float64) *Float {
	p := NewFloat(g, name, def)
	p.cons = newConstraints(min, max, step)
	return p
}

func (p *Float) Value() float64 {
	return p.value
}

func (p *Float) SetValue(v float64) error {
	return setValue(&p.base, &p.value, v)
}

func (p *Float) DefaultValue() float64 {
	return p.def
}

func (p *Float) Constraints() *ScalarConstraints[float64] {
	return &p.cons
}

func (p *Float) TypeName() string {
	return "float"
}

func (p *Float) Variant() Variant {
	return FloatVariant(p.value)
}

func (p *Float) SetVariant(v Variant) error {
	val, err := v.AsFloat()
	if err != nil {
		return err
	}
	return p.SetValue(val)
}

func (p *Float) DefaultVariant() Variant {
	return FloatVariant(p.def)
}

func (p *Float) RestoreDefault() error {
	return p.SetValue(p.def)
}

// String holds a string value.
type String struct {
	base
	value string
	def   string
}

func NewString(g *Group, name textid.TextId, def string) *String {
	p := &String{value: def, def: def}
	p.init(g, name, p)
	return p
}

func (p *String) Value() string {
	return p.value
}

func (p *String) SetValue(v string) error {
	return setValue(&p.base, &p.value, v)
}

func (p *String) DefaultValue() string {
	return p.def
}

func (p *String) TypeName() string {
	return "string"
}

func (p *String) Variant() Variant {
	return StringVariant(p.value)
}

func (p *String) SetVariant(v Variant) error {
	val, err := v.AsString()
	if err != nil {
		return err
	}
	return p.SetValue(val)
}

func (p *String) DefaultVariant() Variant {
	return StringVariant(p.def)
}

func (p *String) RestoreDefault() error {
	return p.SetValue(p.def)
}

// StringList holds an ordered list of strings. Values are copied on the way
// in and out, so callers cannot alias the container's state.
type StringList struct {
	base
	value []string
	def   []string
}

func NewStringList(g *Group, name textid.TextId, def []string) *StringList {
	p := &StringList{value: cloneStrings(def), def: cloneStrings(def)}
	p.init(g, name, p)
	return p
}

func (p *StringList) Value() []string {
	return cloneStrings(p.value)
}

func (p *StringList) SetValue(v []string) error {
	return setValue(&p.base, &p.value, cloneStrings(v))
}

func (p *StringList) DefaultValue() []string {
	return cloneStrings(p.def)
}

func (p *StringList) TypeName() string {
	return "stringList"
}

func (p *StringList) Variant() Variant {
	return StringListVariant(p.value)
}

func (p *StringList) SetVariant(v Variant) error {
	val, err := v.AsStringList()
	if err != nil {
		return err
	}
	return p.SetValue(val)
}

func (p *StringList) DefaultVariant() Variant {
	return StringListVariant(p.def)
}

func (p *StringList) RestoreDefault() error {
	return p.SetValue(p.def)
}

// Bytes holds an opaque byte payload. Values are copied on the way in and
// out.
type Bytes struct {
	base
	value []byte
	def   []byte
}

func NewBytes(g *Group, name textid.TextId, def []byte) *Bytes {
	p := &Bytes{value: cloneBytes(def), def: cloneBytes(def)}
	p.init(g, name, p)
	return p
}

func (p *Bytes) Value() []byte {
	return cloneBytes(p.value)
}

func (p *Bytes) SetValue(v []byte) error {
	return setValue(&p.base, &p.value, cloneBytes(v))
}

func (p *Bytes) DefaultValue() []byte {
	return cloneBytes(p.def)
}

func (p *Bytes) TypeName() string {
	return "bytes"
}

func (p *Bytes) Variant() Variant {
	return BytesVariant(p.value)
}

func (p *Bytes) SetVariant(v Variant) error {
	val, err := v.AsBytes()
	if err != nil {
		return err
	}
	return p.SetValue(val)
}

func (p *Bytes) DefaultVariant() Variant {
	return BytesVariant(p.def)
}

func (p *Bytes) RestoreDefault() error {
	return p.SetValue(p.def)
}

// Time holds a timestamp.
type Time struct {
	base
	value time.Time
	def   time.Time
}

func NewTime(g *Group, name textid.TextId, def time.Time) *Time {
	p := &Time{value: def, def: def}
	p.init(g, name, p)
	return p
}

func (p *Time) Value() time.Time {
	return p.value
}

func (p *Time) SetValue(v time.Time) error {
	return setValue(&p.base, &p.value, v)
}

func (p *Time) DefaultValue() time.Time {
	return p.def
}

func (p *Time) TypeName() string {
	return "time"
}

func (p *Time) Variant() Variant {
	return TimeVariant(p.value)
}

func (p *Time) SetVariant(v Variant) error {
	val, err := v.AsTime()
	if err != nil {
		return err
	}
	return p.SetValue(val)
}

func (p *Time) DefaultVariant() Variant {
	return TimeVariant(p.def)
}

func (p *Time) RestoreDefault() error {
	return p.SetValue(p.def)
}

// Color holds an RGB color.
type Color struct {
	base
	value colorful.Color
	def   colorful.Color
}

func NewColor(g *Group, name textid.TextId, def colorful.Color) *Color {
	p := &Color{value: def, def: def}
	p.init(g, name, p)
	return p
}

func (p *Color) Value() colorful.Color {
	return p.value
}

func (p *Color) SetValue(v colorful.Color) error {
	return setValue(&p.base, &p.value, v)
}

func (p *Color) DefaultValue() colorful.Color {
	return p.def
}

func (p *Color) TypeName() string {
	return "color"
}

func (p *Color) Variant() Variant {
	return ColorVariant(p.value)
}

func (p *Color) SetVariant(v Variant) error {
	val, err := v.AsColor()
	if err != nil {
		return err
	}
	return p.SetValue(val)
}

func (p *Color) DefaultVariant() Variant {
	return ColorVariant(p.def)
}

func (p *Color) RestoreDefault() error {
	return p.SetValue(p.def)
}
