// Package document holds the generic in-memory representation of a
// deserialized quote payload. Carrier quoting APIs disagree on structure, so
// the engine works over this tagged union instead of concrete response types.
package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Member is one key/value entry of an object. Objects keep their members in
// the order the source document declared them; mapping suggestions pick the
// first matching member, so that order is significant.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable document node.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  []Member
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array wraps an element slice.
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Object wraps an ordered member list.
func Object(members ...Member) Value { return Value{kind: KindObject, obj: members} }

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// BoolVal returns the boolean payload; false for other kinds.
func (v Value) BoolVal() bool { return v.b }

// NumberVal returns the numeric payload; 0 for other kinds.
func (v Value) NumberVal() float64 { return v.n }

// StringVal returns the string payload; "" for other kinds.
func (v Value) StringVal() string { return v.s }

// Elems returns the elements of an array value, nil otherwise.
func (v Value) Elems() []Value { return v.arr }

// Members returns the ordered members of an object value, nil otherwise.
func (v Value) Members() []Member { return v.obj }

// Len returns the element count for arrays and the member count for objects.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	}
	return 0
}

// Get looks up a key on an object value.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Null(), false
	}
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Null(), false
}

// Index returns the i-th element of an array value.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Null(), false
	}
	return v.arr[i], true
}

// Resolve walks a dot-separated path from v. An empty path yields v itself.
// Numeric segments index into arrays. The second return is false when any
// segment fails to resolve.
func (v Value) Resolve(path string) (Value, bool) {
	if path == "" {
		return v, true
	}
	cur := v
	for _, seg := range strings.Split(path, ".") {
		switch cur.kind {
		case KindObject:
			next, ok := cur.Get(seg)
			if !ok {
				return Null(), false
			}
			cur = next
		case KindArray:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return Null(), false
			}
			next, ok := cur.Index(idx)
			if !ok {
				return Null(), false
			}
			cur = next
		default:
			return Null(), false
		}
	}
	return cur, true
}

// Render formats a scalar value for display. Arrays and objects render as a
// short shape description rather than their full contents.
func (v Value) Render() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	case KindArray:
		return fmt.Sprintf("[%d items]", len(v.arr))
	case KindObject:
		return fmt.Sprintf("{%d fields}", len(v.obj))
	}
	return ""
}
