// Package object provides the literal value types carried by stackscript
// tokens and Push instructions.
//
// Values are immutable. Callers usually type switch on the concrete type:
//
//	switch obj := obj.(type) {
//	case *object.Int:
//		// do something with obj.Value()
//	case *object.String:
//		// do something with obj.Value()
//	}
package object

// Type of an object as a string.
type Type string

// Type constants
const (
	BOOL   Type = "bool"
	FLOAT  Type = "float"
	INT    Type = "int"
	STRING Type = "string"
)

// Object is the interface that all stackscript values implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Equals returns true if the given object is equal to this object.
	Equals(other Object) bool
}

// Equals reports whether two possibly-nil objects are equal.
func Equals(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// FromGoType converts a native Go value into an Object. It returns nil for
// types that have no stackscript representation.
func FromGoType(v interface{}) Object {
	switch v := v.(type) {
	case Object:
		return v
	case int:
		return NewInt(int64(v))
	case int64:
		return NewInt(v)
	case float64:
		return NewFloat(v)
	case string:
		return NewString(v)
	case bool:
		return NewBool(v)
	default:
		return nil
	}
}
