package args

import (
	"argbind/dyn"
	"argbind/options"
)

var functionVariants = NewVariants(KindFunction, extractFunction, extractFunction)

// Function binds a callable argument. Callability has no coercion, so only
// optionality can be chosen. The stored value is borrowed from the runtime.
func Function(dst *dyn.Value, opt options.OptionalEnum) Descriptor {
	return functionVariants.Descriptor(dst, options.NoCoerce, opt, Extra{})
}

func extractFunction(e dyn.Engine, v dyn.Value, dst *dyn.Value, _ Extra) error {
	if !e.IsCallable(v) {
		return typeMismatch(e, v, dyn.TypeFunction)
	}

	*dst = v
	return nil
}
