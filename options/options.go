package options

// CoerceEnum selects whether a transform demands the exact dynamic type
// or may apply the engine's standard conversion first.
type CoerceEnum int

const (
	NoCoerce CoerceEnum = iota // strict: the dynamic value must already have the matching type
	Coerce                     // the engine's conversion rules are applied before extraction
)

// OptionalEnum selects what happens when the argument is absent or undefined.
type OptionalEnum int

const (
	Required OptionalEnum = iota // absence fails the whole binding
	Optional                     // absence is skipped and the destination is left untouched
)

// RoundEnum selects how a number is turned into an integer.
type RoundEnum int

const (
	Round RoundEnum = iota // nearest, halves away from zero
	Floor                  // towards negative infinity
	Ceil                   // towards positive infinity
	Trunc                  // towards zero
)

// ClampEnum selects what happens when a rounded number does not fit the integer type.
type ClampEnum int

const (
	NoClamp ClampEnum = iota // out of range values are rejected
	Clamp                    // out of range values saturate at the type bounds
)

func (c CoerceEnum) String() string {
	if c == Coerce {
		return "coerce"
	}

	return "strict"
}

func (o OptionalEnum) String() string {
	if o == Optional {
		return "optional"
	}

	return "required"
}
