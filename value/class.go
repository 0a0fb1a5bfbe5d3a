package value

import (
	"math"
	"reflect"
)

// TypeTag is the canonical runtime category of a value.
type TypeTag string

// Tags returned by ClassOf. Only String, Number and Boolean are primitive.
const (
	String   TypeTag = "String"
	Number   TypeTag = "Number"
	Boolean  TypeTag = "Boolean"
	Complex  TypeTag = "Complex"
	Array    TypeTag = "Array"
	Object   TypeTag = "Object"
	Function TypeTag = "Function"
	Pointer  TypeTag = "Pointer"
	Channel  TypeTag = "Channel"
	Null     TypeTag = "Null"
	Unknown  TypeTag = "Unknown"
)

// ClassOf returns the TypeTag of v. Named types are classified by their
// underlying kind, so a `type Color string` value is a String.
func ClassOf(v any) TypeTag {
	if v == nil {
		return Null
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.String:
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Bool:
		return Boolean
	case reflect.Complex64, reflect.Complex128:
		return Complex
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Map, reflect.Struct:
		return Object
	case reflect.Func:
		return Function
	case reflect.Pointer, reflect.UnsafePointer:
		return Pointer
	case reflect.Chan:
		return Channel
	default:
		return Unknown
	}
}

// IsPrimitive reports whether v is a non-nil String, Boolean or Number.
func IsPrimitive(v any) bool {
	switch ClassOf(v) {
	case String, Boolean, Number:
		return true
	default:
		return false
	}
}

// IsNaN reports whether v is a floating point NaN of any float kind.
func IsNaN(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	default:
		return false
	}
}
