package domain

import (
	"encoding/json"
	"strconv"
)

// Kind identifies which variant of a Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindLong
	KindFloat
	KindDecimal
	KindBoolean
	KindString
	KindQuantity
	KindDateTime
	KindDate
	KindTime
	KindInterval
	KindList
	KindTuple
	KindOpaque
)

// String returns the JSON "type" discriminator for tagged variants and a
// lowercase label for primitive ones (used in reports, not in output JSON).
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindLong:
		return "Long"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "Decimal"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindQuantity:
		return "Quantity"
	case KindDateTime:
		return "DateTime"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindInterval:
		return "Interval"
	case KindList:
		return "List"
	case KindTuple:
		return "Tuple"
	case KindOpaque:
		return "opaque"
	}
	return "unknown"
}

// Value is the classified expected result of a test case. Exactly one
// variant is populated, selected by Kind; the zero value is Null.
type Value struct {
	Kind Kind

	Int   int64   // Integer, Long
	Float float64 // Float, Quantity value
	Bool  bool    // Boolean
	Str   string  // String, Decimal symbolic text, Opaque/Interval/List/Tuple raw

	Unit      string // Quantity
	Args      string // DateTime, Date, Time constructor arguments, verbatim
	Precision string // DateTime, Date, Time
}

func NullValue() Value             { return Value{Kind: KindNull} }
func IntegerValue(v int64) Value   { return Value{Kind: KindInteger, Int: v} }
func LongValue(v int64) Value      { return Value{Kind: KindLong, Int: v} }
func FloatValue(v float64) Value   { return Value{Kind: KindFloat, Float: v} }
func DecimalValue(s string) Value  { return Value{Kind: KindDecimal, Str: s} }
func BooleanValue(v bool) Value    { return Value{Kind: KindBoolean, Bool: v} }
func StringValue(s string) Value   { return Value{Kind: KindString, Str: s} }
func OpaqueValue(raw string) Value { return Value{Kind: KindOpaque, Str: raw} }

// RawValue builds one of the composite raw variants (Interval, List, Tuple).
func RawValue(k Kind, raw string) Value { return Value{Kind: k, Str: raw} }

func QuantityValue(v float64, unit string) Value {
	return Value{Kind: KindQuantity, Float: v, Unit: unit}
}

func TemporalValue(k Kind, args, precision string) Value {
	return Value{Kind: k, Args: args, Precision: precision}
}

// MarshalJSON renders the variant in the fixture's wire shape: primitives as
// native JSON values, tagged variants as objects with a "type" discriminator,
// Opaque as a bare {"raw": ...} object.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindInteger:
		return []byte(strconv.FormatInt(v.Int, 10)), nil
	case KindLong:
		return json.Marshal(struct {
			Type  string `json:"type"`
			Value int64  `json:"value"`
		}{"Long", v.Int})
	case KindFloat:
		return json.Marshal(v.Float)
	case KindDecimal:
		return json.Marshal(struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		}{"Decimal", v.Str})
	case KindBoolean:
		return json.Marshal(v.Bool)
	case KindString:
		return json.Marshal(v.Str)
	case KindQuantity:
		return json.Marshal(struct {
			Type  string  `json:"type"`
			Value float64 `json:"value"`
			Unit  string  `json:"unit"`
		}{"Quantity", v.Float, v.Unit})
	case KindDateTime, KindDate, KindTime:
		return json.Marshal(struct {
			Type      string `json:"type"`
			Args      string `json:"args"`
			Precision string `json:"precision"`
		}{v.Kind.String(), v.Args, v.Precision})
	case KindInterval, KindList, KindTuple:
		return json.Marshal(struct {
			Type string `json:"type"`
			Raw  string `json:"raw"`
		}{v.Kind.String(), v.Str})
	default:
		return json.Marshal(struct {
			Raw string `json:"raw"`
		}{v.Str})
	}
}

// UnmarshalJSON restores a Value from its wire shape. Only what the viewer
// needs: the tagged variants keep their fields, primitives map back to their
// kinds, and anything unrecognized lands in Opaque.
func (v *Value) UnmarshalJSON(data []byte) error {
	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch p := probe.(type) {
	case nil:
		*v = NullValue()
	case bool:
		*v = BooleanValue(p)
	case string:
		*v = StringValue(p)
	case float64:
		if p == float64(int64(p)) {
			*v = IntegerValue(int64(p))
		} else {
			*v = FloatValue(p)
		}
	case map[string]interface{}:
		*v = valueFromObject(p)
	default:
		*v = OpaqueValue(string(data))
	}
	return nil
}

func valueFromObject(obj map[string]interface{}) Value {
	str := func(key string) string {
		s, _ := obj[key].(string)
		return s
	}
	switch str("type") {
	case "Long":
		n, _ := obj["value"].(float64)
		return LongValue(int64(n))
	case "Decimal":
		return DecimalValue(str("value"))
	case "Quantity":
		n, _ := obj["value"].(float64)
		return QuantityValue(n, str("unit"))
	case "DateTime":
		return TemporalValue(KindDateTime, str("args"), str("precision"))
	case "Date":
		return TemporalValue(KindDate, str("args"), str("precision"))
	case "Time":
		return TemporalValue(KindTime, str("args"), str("precision"))
	case "Interval":
		return RawValue(KindInterval, str("raw"))
	case "List":
		return RawValue(KindList, str("raw"))
	case "Tuple":
		return RawValue(KindTuple, str("raw"))
	}
	return OpaqueValue(str("raw"))
}
