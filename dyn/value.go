// Package dyn describes the boundary between native code and the dynamic
// runtime that calls it. The runtime's values stay opaque: everything the
// argument binder needs to know about them goes through an Engine.
package dyn

//go:generate go tool stringer -type=TypeEnum -trimprefix=Type -output=type_string.go

// Value is a borrowed handle to a value owned by the dynamic runtime.
type Value any

// TypeEnum is the coarse dynamic type of a Value as seen by the binder.
type TypeEnum int

const (
	TypeUndefined TypeEnum = iota // absent argument or the runtime's undefined/None sentinel
	TypeBoolean
	TypeNumber
	TypeString
	TypeFunction
	TypeObject
	TypeArray

	// TypeTotal is a constant that represents the total number of types defined
	TypeTotal = int(iota)
)

// HandleTag identifies the native type behind an opaque handle. Tags are
// compared by identity, two tags with the same name are still different.
type HandleTag struct {
	Name string
}

func NewHandleTag(name string) *HandleTag {
	return &HandleTag{Name: name}
}

func (t *HandleTag) String() string {
	if t == nil {
		return "<untagged>"
	}

	return t.Name
}

// Engine exposes the runtime's type tests and standard conversions.
type Engine interface {
	// Undefined returns the sentinel that stands for a missing argument.
	Undefined() Value
	TypeOf(v Value) TypeEnum

	// ToNumber applies the runtime's number conversion. Sources that do not
	// denote a number (e.g. "abc") are reported as an error, never as NaN.
	ToNumber(v Value) (float64, error)
	ToBoolean(v Value) bool
	ToString(v Value) (string, error)
	IsCallable(v Value) bool

	// NativeHandle returns the payload and tag previously attached to an
	// object; ok is false when v carries no native handle.
	NativeHandle(v Value) (payload any, tag *HandleTag, ok bool)

	// Property returns the named property of an object, ok is false when it
	// is not present.
	Property(v Value, name string) (Value, bool)

	// Elements returns the items of an array value.
	Elements(v Value) ([]Value, bool)
}

// IsUndefined reports whether v is absent as far as the binder is concerned.
func IsUndefined(e Engine, v Value) bool {
	return e.TypeOf(v) == TypeUndefined
}
