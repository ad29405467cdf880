package args

import (
	"argbind/dyn"
	"argbind/options"
)

var numberVariants = NewVariants(KindNumber, extractNumberStrict, extractNumberCoerce)

// Number binds a number argument into dst.
func Number(dst *float64, coerce options.CoerceEnum, opt options.OptionalEnum) Descriptor {
	return numberVariants.Descriptor(dst, coerce, opt, Extra{})
}

func extractNumberStrict(e dyn.Engine, v dyn.Value, dst *float64, extra Extra) error {
	if e.TypeOf(v) != dyn.TypeNumber {
		return typeMismatch(e, v, dyn.TypeNumber)
	}

	return extractNumberCoerce(e, v, dst, extra)
}

func extractNumberCoerce(e dyn.Engine, v dyn.Value, dst *float64, _ Extra) error {
	n, err := e.ToNumber(v)
	if err != nil {
		return coercionFailed(err)
	}

	*dst = n
	return nil
}
