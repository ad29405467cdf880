package args

import (
	"argbind/dyn"
	"argbind/options"
)

var booleanVariants = NewVariants(KindBoolean, extractBooleanStrict, extractBooleanCoerce)

// Boolean binds a boolean argument into dst. The coercing variant applies
// the engine's truthiness rules and never fails on a present value.
func Boolean(dst *bool, coerce options.CoerceEnum, opt options.OptionalEnum) Descriptor {
	return booleanVariants.Descriptor(dst, coerce, opt, Extra{})
}

func extractBooleanStrict(e dyn.Engine, v dyn.Value, dst *bool, extra Extra) error {
	if e.TypeOf(v) != dyn.TypeBoolean {
		return typeMismatch(e, v, dyn.TypeBoolean)
	}

	return extractBooleanCoerce(e, v, dst, extra)
}

func extractBooleanCoerce(e dyn.Engine, v dyn.Value, dst *bool, _ Extra) error {
	*dst = e.ToBoolean(v)
	return nil
}
