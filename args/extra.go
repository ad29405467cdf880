package args

import (
	"argbind/dyn"
	"argbind/options"
)

// ExtraEnum tells which payload an Extra carries.
type ExtraEnum int

const (
	ExtraNone       ExtraEnum = iota
	ExtraCapacity             // destination size in bytes, strings
	ExtraTag                  // expected native handle tag
	ExtraIntOptions           // rounding and clamping, integers
	ExtraOpaque               // anything a custom transform wants
)

// IntOptions controls how a number becomes an integer.
type IntOptions struct {
	Round options.RoundEnum
	Clamp options.ClampEnum
}

// Extra is the transform-specific configuration of a Descriptor. Exactly one
// payload is set, and each accessor reports whether it is the one present.
type Extra struct {
	kind     ExtraEnum
	capacity int
	tag      *dyn.HandleTag
	integer  IntOptions
	opaque   any
}

func CapacityOf(n int) Extra {
	return Extra{kind: ExtraCapacity, capacity: n}
}

func TagOf(tag *dyn.HandleTag) Extra {
	return Extra{kind: ExtraTag, tag: tag}
}

func IntOptionsOf(round options.RoundEnum, clamp options.ClampEnum) Extra {
	return Extra{kind: ExtraIntOptions, integer: IntOptions{Round: round, Clamp: clamp}}
}

func OpaqueOf(v any) Extra {
	return Extra{kind: ExtraOpaque, opaque: v}
}

func (e Extra) Kind() ExtraEnum {
	return e.kind
}

func (e Extra) Capacity() (int, bool) {
	return e.capacity, e.kind == ExtraCapacity
}

func (e Extra) Tag() (*dyn.HandleTag, bool) {
	return e.tag, e.kind == ExtraTag
}

func (e Extra) IntOptions() (IntOptions, bool) {
	return e.integer, e.kind == ExtraIntOptions
}

func (e Extra) Opaque() (any, bool) {
	return e.opaque, e.kind == ExtraOpaque
}
