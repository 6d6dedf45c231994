// Package conv translates property values to and from the byte payloads a
// store holds. The Default converter uses canonical, locale-independent
// encodings, so documents written on one machine load identically on any
// other. Applications with legacy formats plug in their own Converter at the
// settings layer.
package conv

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"propkit/property"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Converter translates between a property's value and its stored form. The
// property is handed over whole, so implementations can consult its type,
// unit or constraints while encoding.
type Converter interface {
	// ToStoreValue encodes the property's current value.
	ToStoreValue(p property.Property) ([]byte, error)

	// FromStoreValue decodes data and assigns the result through the
	// property's regular set protocol, so validation and change notification
	// apply to loaded values exactly as they do to programmatic writes.
	FromStoreValue(p property.Property, data []byte) error
}

// Default is the canonical converter:
//
//	bool        "true" / "false"
//	int         decimal digits
//	float       shortest round-trip decimal
//	string      the raw string
//	stringList  JSON array of strings
//	bytes       standard base64
//	time        RFC 3339 with nanoseconds
//	quantity    magnitude in the property's unit
//	color       hex "#rrggbb"
type Default struct{}

var _ Converter = Default{}

// ToStoreValue encodes the property's current value.
func (Default) ToStoreValue(p property.Property) ([]byte, error) {
	v := p.Variant()
	switch v.Kind() {
	case property.KindBool:
		b, err := v.AsBool()
		if err != nil {
			return nil, err
		}
		return []byte(strconv.FormatBool(b)), nil
	case property.KindInt:
		n, err := v.AsInt()
		if err != nil {
			return nil, err
		}
		return []byte(strconv.FormatInt(int64(n), 10)), nil
	case property.KindFloat, property.KindQuantity:
		// A quantity persists as its magnitude, the owning container knows
		// the unit
		f, err := v.AsFloat()
		if err != nil {
			return nil, err
		}
		return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
	case property.KindString:
		s, err := v.AsString()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case property.KindStringList:
		list, err := v.AsStringList()
		if err != nil {
			return nil, err
		}
		return encodeStringList(list)
	case property.KindBytes:
		data, err := v.AsBytes()
		if err != nil {
			return nil, err
		}
		return []byte(base64.StdEncoding.EncodeToString(data)), nil
	case property.KindTime:
		t, err := v.AsTime()
		if err != nil {
			return nil, err
		}
		return []byte(t.Format(time.RFC3339Nano)), nil
	case property.KindColor:
		c, err := v.AsColor()
		if err != nil {
			return nil, err
		}
		return []byte(c.Hex()), nil
	}
	return nil, fmt.Errorf("no stored encoding for %s property %q", v.Kind(), p.Name().Key)
}

// FromStoreValue decodes data for the property's kind and assigns it through
// the set protocol. A value the property's validators reject leaves the
// property unchanged and surfaces the validation error.
func (Default) FromStoreValue(p property.Property, data []byte) error {
	kind := p.Variant().Kind()
	switch kind {
	case property.KindBool:
		b, err := strconv.ParseBool(string(data))
		if err != nil {
			return decodeError(kind, p, err)
		}
		return p.SetVariant(property.BoolVariant(b))
	case property.KindInt:
		n, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return decodeError(kind, p, err)
		}
		return p.SetVariant(property.IntVariant(int(n)))
	case property.KindFloat, property.KindQuantity:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return decodeError(kind, p, err)
		}
		return p.SetVariant(property.FloatVariant(f))
	case property.KindString:
		return p.SetVariant(property.StringVariant(string(data)))
	case property.KindStringList:
		list, err := decodeStringList(data)
		if err != nil {
			return decodeError(kind, p, err)
		}
		return p.SetVariant(property.StringListVariant(list))
	case property.KindBytes:
		raw, err := base64.StdEncoding.DecodeString(string(data))
		if err != nil {
			return decodeError(kind, p, err)
		}
		return p.SetVariant(property.BytesVariant(raw))
	case property.KindTime:
		t, err := time.Parse(time.RFC3339Nano, string(data))
		if err != nil {
			return decodeError(kind, p, err)
		}
		return p.SetVariant(property.TimeVariant(t))
	case property.KindColor:
		c, err := colorful.Hex(string(data))
		if err != nil {
			return decodeError(kind, p, err)
		}
		return p.SetVariant(property.ColorVariant(c))
	}
	return fmt.Errorf("no stored encoding for %s property %q", kind, p.Name().Key)
}

func decodeError(kind property.Kind, p property.Property, err error) error {
	return fmt.Errorf("failed to decode %s value for %q: %w", kind, p.Name().Key, err)
}

func encodeStringList(list []string) ([]byte, error) {
	doc := []byte("[]")
	for _, item := range list {
		var err error
		doc, err = sjson.SetBytes(doc, "-1", item)
		if err != nil {
			return nil, fmt.Errorf("failed to encode string list: %w", err)
		}
	}
	return doc, nil
}

func decodeStringList(data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("not valid JSON")
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("not a JSON array")
	}
	var list []string
	parsed.ForEach(func(_, item gjson.Result) bool {
		list = append(list, item.String())
		return true
	})
	return list, nil
}
