package property

import (
	"fmt"
	"strconv"
	"time"

	"propkit/unit"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind enumerates the value kinds a Variant can hold. The set is closed:
// adding a kind means extending this enum, its String table, the matching
// Variant constructor and accessor, and the conv package encodings, all of
// which the compiler surfaces.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindStringList
	KindBytes
	KindTime
	KindQuantity
	KindColor
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindStringList:
		return "stringList"
	case KindBytes:
		return "bytes"
	case KindTime:
		return "time"
	case KindQuantity:
		return "quantity"
	case KindColor:
		return "color"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Variant is a type-erased snapshot of a container value: a closed tagged
// union over the supported kinds. The zero Variant is invalid. Slice-backed
// kinds are copied on construction and on access, so a Variant never aliases
// container state.
type Variant struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []string
	data []byte
	t    time.Time
	q    unit.Quantity
	c    colorful.Color
}

// Kind returns the variant's value kind.
func (v Variant) Kind() Kind {
	return v.kind
}

// IsValid reports whether the variant holds a value.
func (v Variant) IsValid() bool {
	return v.kind != KindInvalid
}

// BoolVariant wraps a bool.
func BoolVariant(v bool) Variant {
	return Variant{kind: KindBool, b: v}
}

// IntVariant wraps an int.
func IntVariant(v int) Variant {
	return Variant{kind: KindInt, i: int64(v)}
}

// FloatVariant wraps a float64.
func FloatVariant(v float64) Variant {
	return Variant{kind: KindFloat, f: v}
}

// StringVariant wraps a string.
func StringVariant(v string) Variant {
	return Variant{kind: KindString, s: v}
}

// StringListVariant wraps a copy of the given strings.
func StringListVariant(v []string) Variant {
	return Variant{kind: KindStringList, list: cloneStrings(v)}
}

// BytesVariant wraps a copy of the given bytes.
func BytesVariant(v []byte) Variant {
	return Variant{kind: KindBytes, data: cloneBytes(v)}
}

// TimeVariant wraps a time.Time.
func TimeVariant(v time.Time) Variant {
	return Variant{kind: KindTime, t: v}
}

// QuantityVariant wraps a unit-tagged quantity.
func QuantityVariant(v unit.Quantity) Variant {
	return Variant{kind: KindQuantity, q: v}
}

// ColorVariant wraps an RGB color.
func ColorVariant(v colorful.Color) Variant {
	return Variant{kind: KindColor, c: v}
}

// AsBool converts to bool. Only KindBool converts.
func (v Variant) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, incompatibleKind(KindBool, v.kind)
	}
	return v.b, nil
}

// AsInt converts to int. KindInt converts exactly; KindFloat is truncated.
func (v Variant) AsInt() (int, error) {
	switch v.kind {
	case KindInt:
		return int(v.i), nil
	case KindFloat:
		return int(v.f), nil
	default:
		return 0, incompatibleKind(KindInt, v.kind)
	}
}

// AsFloat converts to float64. KindFloat and KindInt convert; KindQuantity
// yields the magnitude in the quantity's native unit.
func (v Variant) AsFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	case KindQuantity:
		return v.q.Value(), nil
	default:
		return 0, incompatibleKind(KindFloat, v.kind)
	}
}

// AsString converts to string. Only KindString converts.
func (v Variant) AsString() (string, error) {
	if v.kind != KindString {
		return "", incompatibleKind(KindString, v.kind)
	}
	return v.s, nil
}

// AsStringList converts to a copy of the held string list.
func (v Variant) AsStringList() ([]string, error) {
	if v.kind != KindStringList {
		return nil, incompatibleKind(KindStringList, v.kind)
	}
	return cloneStrings(v.list), nil
}

// AsBytes converts to a copy of the held bytes.
func (v Variant) AsBytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, incompatibleKind(KindBytes, v.kind)
	}
	return cloneBytes(v.data), nil
}

// AsTime converts to time.Time. Only KindTime converts.
func (v Variant) AsTime() (time.Time, error) {
	if v.kind != KindTime {
		return time.Time{}, incompatibleKind(KindTime, v.kind)
	}
	return v.t, nil
}

// AsQuantity converts to a unit-tagged quantity. Only KindQuantity converts.
func (v Variant) AsQuantity() (unit.Quantity, error) {
	if v.kind != KindQuantity {
		return unit.Quantity{}, incompatibleKind(KindQuantity, v.kind)
	}
	return v.q, nil
}

// AsColor converts to an RGB color. Only KindColor converts.
func (v Variant) AsColor() (colorful.Color, error) {
	if v.kind != KindColor {
		return colorful.Color{}, incompatibleKind(KindColor, v.kind)
	}
	return v.c, nil
}

// String renders the variant for logging.
func (v Variant) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindStringList:
		return fmt.Sprintf("%q", v.list)
	case KindBytes:
		return fmt.Sprintf("bytes(%d)", len(v.data))
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindQuantity:
		return v.q.String()
	case KindColor:
		return v.c.Hex()
	default:
		return "<invalid>"
	}
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func cloneBytes(src []byte) []byte {
	if src == nil {
		return nil
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out
}
