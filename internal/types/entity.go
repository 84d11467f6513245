// Package types provides type definitions for structured data used throughout the resume parser.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which variant an EntityValue holds.
type Kind int

// EntityValue variants. The zero EntityValue is KindNull.
const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// EntityValue is one value reported by the extraction service. The service is
// loosely typed: an entity may be a plain string, a tagged object carrying a
// "text" field plus metadata, or a bare scalar. Numbers keep their original
// literal so re-encoding never alters them.
type EntityValue struct {
	kind   Kind
	str    string // string value, or the number literal for KindNumber
	b      bool
	items  []EntityValue
	fields map[string]EntityValue
}

// NullValue returns the null entity value.
func NullValue() EntityValue {
	return EntityValue{}
}

// StringValue wraps a plain string.
func StringValue(s string) EntityValue {
	return EntityValue{kind: KindString, str: s}
}

// NumberValue wraps a JSON number literal.
func NumberValue(n json.Number) EntityValue {
	return EntityValue{kind: KindNumber, str: n.String()}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) EntityValue {
	return EntityValue{kind: KindBool, b: b}
}

// ObjectValue builds a tagged object. The map is copied.
func ObjectValue(fields map[string]EntityValue) EntityValue {
	cp := make(map[string]EntityValue, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return EntityValue{kind: KindObject, fields: cp}
}

// ListValue builds a sequence of values. The slice is copied.
func ListValue(items ...EntityValue) EntityValue {
	return EntityValue{kind: KindList, items: append([]EntityValue{}, items...)}
}

// ValueOf converts a decoded Go value (as produced by encoding/json) into an EntityValue.
func ValueOf(x any) EntityValue {
	switch t := x.(type) {
	case nil:
		return NullValue()
	case EntityValue:
		return t
	case string:
		return StringValue(t)
	case json.Number:
		return NumberValue(t)
	case float64:
		return NumberValue(json.Number(strconv.FormatFloat(t, 'g', -1, 64)))
	case int:
		return NumberValue(json.Number(strconv.Itoa(t)))
	case int64:
		return NumberValue(json.Number(strconv.FormatInt(t, 10)))
	case bool:
		return BoolValue(t)
	case []string:
		items := make([]EntityValue, 0, len(t))
		for _, s := range t {
			items = append(items, StringValue(s))
		}
		return EntityValue{kind: KindList, items: items}
	case []any:
		items := make([]EntityValue, 0, len(t))
		for _, item := range t {
			items = append(items, ValueOf(item))
		}
		return EntityValue{kind: KindList, items: items}
	case map[string]any:
		fields := make(map[string]EntityValue, len(t))
		for k, v := range t {
			fields[k] = ValueOf(v)
		}
		return EntityValue{kind: KindObject, fields: fields}
	default:
		return StringValue(fmt.Sprint(t))
	}
}

// Kind reports the variant held by v.
func (v EntityValue) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null value.
func (v EntityValue) IsNull() bool {
	return v.kind == KindNull
}

// Str returns the string held by v and whether v is a string.
func (v EntityValue) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Number returns the number literal held by v and whether v is a number.
func (v EntityValue) Number() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return json.Number(v.str), true
}

// Bool returns the boolean held by v and whether v is a boolean.
func (v EntityValue) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Items returns a copy of the elements of a list value, or nil for any other kind.
func (v EntityValue) Items() []EntityValue {
	if v.kind != KindList {
		return nil
	}
	return slices.Clone(v.items)
}

// Len returns the number of elements of a list or fields of an object.
func (v EntityValue) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Field looks up a field of an object value.
func (v EntityValue) Field(name string) (EntityValue, bool) {
	if v.kind != KindObject {
		return EntityValue{}, false
	}
	f, ok := v.fields[name]
	return f, ok
}

// Keys returns the sorted field names of an object value.
func (v EntityValue) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Text coerces any entity value into exactly one plain string. This is the
// only place the fallback policy lives:
//   - strings are returned verbatim
//   - tagged objects yield their "text" field when it is a non-empty string
//   - null yields the empty string
//   - anything else yields its compact JSON form, with object keys sorted
//
// Text never fails, and Text(StringValue(v.Text())) == v.Text().
func (v EntityValue) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNull:
		return ""
	case KindObject:
		if t, ok := v.fields["text"]; ok && t.kind == KindString && t.str != "" {
			return t.str
		}
	}
	return v.compact()
}

func (v EntityValue) compact() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v.toAny()); err != nil {
		// only reachable for a NumberValue built from an invalid literal
		return v.str
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func (v EntityValue) toAny() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return json.Number(v.str)
	case KindBool:
		return v.b
	case KindList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.toAny()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.fields))
		for k, f := range v.fields {
			out[k] = f.toAny()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes v back into the JSON shape it was decoded from.
func (v EntityValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.toAny())
}

// UnmarshalJSON decodes any JSON value, keeping number literals intact.
func (v *EntityValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode entity value: %w", err)
	}
	*v = ValueOf(raw)
	return nil
}
