package args

import "argbind/dyn"

// Transform extracts one logical argument from the cursor into dst. It
// consumes as many positions as it needs, normally one, and must leave dst
// untouched when it fails.
type Transform[T any] interface {
	TransformInto(c *Cursor, dst *T, extra Extra) error
}

// TransformFunc adapts a plain function to Transform.
type TransformFunc[T any] func(c *Cursor, dst *T, extra Extra) error

func (f TransformFunc[T]) TransformInto(c *Cursor, dst *T, extra Extra) error {
	return f(c, dst, extra)
}

// Extractor converts a single present value. Presence has already been
// checked by the time it runs, and the cursor has already moved past v.
type Extractor[T any] func(e dyn.Engine, v dyn.Value, dst *T, extra Extra) error

// Descriptor is one logical argument ready to be applied: a transform bound
// to its destination together with the transform's extra configuration.
type Descriptor struct {
	kind   KindEnum
	extra  Extra
	hasDst bool
	apply  func(c *Cursor) error
}

func bind[T any](kind KindEnum, dst *T, t Transform[T], extra Extra) Descriptor {
	if dst == nil {
		panic("destination of " + kind.String() + " argument cannot be nil")
	}

	return Descriptor{
		kind:   kind,
		extra:  extra,
		hasDst: true,
		apply: func(c *Cursor) error {
			return t.TransformInto(c, dst, extra)
		},
	}
}

func (d Descriptor) Kind() KindEnum {
	return d.kind
}

func (d Descriptor) Extra() Extra {
	return d.extra
}

// HasDestination reports whether applying d writes into a native slot.
func (d Descriptor) HasDestination() bool {
	return d.hasDst
}

// Apply runs the descriptor's transform against c.
func (d Descriptor) Apply(c *Cursor) error {
	if d.apply == nil {
		panic("zero Descriptor cannot be applied")
	}

	return d.apply(c)
}
