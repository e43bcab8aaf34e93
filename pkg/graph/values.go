package graph

import "time"

// Key is the normalized representation of a JSON object key.
type Key string

// Object is a normalized JSON object.
type Object map[Key]any

// Array is a normalized JSON array.
type Array []any

// Get returns the value stored under key and whether it was present.
func (o Object) Get(key Key) (any, bool) {
	v, ok := o[key]

	return v, ok
}

// String returns the string stored under key, or "" if absent or not a string.
func (o Object) String(key Key) string {
	s, _ := o[key].(string)

	return s
}

// Int returns the integer stored under key, or 0 if absent or not an integer.
func (o Object) Int(key Key) int64 {
	i, _ := o[key].(int64)

	return i
}

// Time returns the timestamp stored under key, or the zero time.
func (o Object) Time(key Key) time.Time {
	t, _ := o[key].(time.Time)

	return t
}

// Object returns the nested object stored under key, or nil.
func (o Object) Object(key Key) Object {
	obj, _ := o[key].(Object)

	return obj
}

// Array returns the nested array stored under key, or nil.
func (o Object) Array(key Key) Array {
	arr, _ := o[key].(Array)

	return arr
}

// Plain converts a normalized value back into plain Go maps and slices keyed
// by string, suitable for JSON or YAML encoding. Other values pass through.
func Plain(value any) any {
	switch v := value.(type) {
	case Object:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[string(key)] = Plain(item)
		}

		return out
	case Array:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Plain(item)
		}

		return out
	default:
		return value
	}
}
