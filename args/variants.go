package args

import (
	"fmt"

	"argbind/dyn"
	"argbind/options"
)

type variant struct {
	coerce   options.CoerceEnum
	optional options.OptionalEnum
}

// Variants resolves the {strict, coerce} × {required, optional} matrix of one
// argument kind to concrete transforms. Every built-in kind is a Variants
// value, and user-defined kinds are built the same way.
type Variants[T any] struct {
	kind  KindEnum
	table map[variant]Transform[T]
}

// NewVariants composes the four transforms of a kind out of its strict and
// coercing extractors. Kinds that have no meaningful coercion pass the same
// extractor twice.
func NewVariants[T any](kind KindEnum, strict, coercing Extractor[T]) *Variants[T] {
	v := &Variants[T]{
		kind:  kind,
		table: make(map[variant]Transform[T], 4),
	}

	for coerce, extract := range map[options.CoerceEnum]Extractor[T]{
		options.NoCoerce: strict,
		options.Coerce:   coercing,
	} {
		v.table[variant{coerce, options.Required}] = required(extract)
		v.table[variant{coerce, options.Optional}] = optional(extract)
	}

	return v
}

func (v *Variants[T]) Kind() KindEnum {
	return v.kind
}

// Lookup returns the transform for the given modifiers.
func (v *Variants[T]) Lookup(coerce options.CoerceEnum, opt options.OptionalEnum) Transform[T] {
	t, ok := v.table[variant{coerce, opt}]
	if !ok {
		panic(fmt.Sprintf("no %s transform for %s/%s", v.kind, coerce, opt))
	}

	return t
}

// Descriptor binds the transform selected by the modifiers to dst.
func (v *Variants[T]) Descriptor(dst *T, coerce options.CoerceEnum, opt options.OptionalEnum, extra Extra) Descriptor {
	return bind(v.kind, dst, v.Lookup(coerce, opt), extra)
}

// required consumes one position and fails when it holds no value.
func required[T any](extract Extractor[T]) Transform[T] {
	return TransformFunc[T](func(c *Cursor, dst *T, extra Extra) error {
		v := c.Pop()
		if dyn.IsUndefined(c.Engine(), v) {
			return ErrMissingRequired
		}

		return extract(c.Engine(), v, dst, extra)
	})
}

// optional consumes one position and skips it without writing when it
// holds no value. Absent and explicitly undefined arguments look the same.
func optional[T any](extract Extractor[T]) Transform[T] {
	return TransformFunc[T](func(c *Cursor, dst *T, extra Extra) error {
		v := c.Pop()
		if dyn.IsUndefined(c.Engine(), v) {
			return nil
		}

		return extract(c.Engine(), v, dst, extra)
	})
}
