package args

import (
	"errors"
	"fmt"

	"argbind/dyn"
	"argbind/options"
)

// ObjectProperties binds the named properties of an object argument, each
// through the descriptor at the same index. A missing property is undefined,
// so optional descriptors skip it and required ones fail.
func ObjectProperties(names []string, descs []Descriptor, opt options.OptionalEnum) Descriptor {
	if len(names) != len(descs) {
		panic(fmt.Sprintf("%d object properties need %d descriptors, got %d", len(names), len(names), len(descs)))
	}

	extract := func(e dyn.Engine, v dyn.Value, _ *struct{}, _ Extra) error {
		return bindProperties(e, v, names, descs)
	}

	return nested(KindObject, extract, opt)
}

// Array binds the leading elements of an array argument positionally.
// Elements beyond the descriptors are ignored.
func Array(descs []Descriptor, opt options.OptionalEnum) Descriptor {
	extract := func(e dyn.Engine, v dyn.Value, _ *struct{}, _ Extra) error {
		return bindElements(e, v, descs)
	}

	return nested(KindArray, extract, opt)
}

// nested builds a descriptor whose destinations live in inner descriptors.
func nested(kind KindEnum, extract Extractor[struct{}], opt options.OptionalEnum) Descriptor {
	var unused struct{}

	d := NewVariants(kind, extract, extract).Descriptor(&unused, options.NoCoerce, opt, Extra{})
	d.hasDst = false

	return d
}

func bindProperties(e dyn.Engine, v dyn.Value, names []string, descs []Descriptor) error {
	if e.TypeOf(v) != dyn.TypeObject {
		return typeMismatch(e, v, dyn.TypeObject)
	}

	props := make([]dyn.Value, len(names))
	for i, name := range names {
		p, ok := e.Property(v, name)
		if !ok {
			p = e.Undefined()
		}
		props[i] = p
	}

	err := Apply(NewCursor(e, props), descs...)

	var be *BindError
	if errors.As(err, &be) && be.Position < len(names) {
		return fmt.Errorf("property %q: %w", names[be.Position], be.Err)
	}

	return err
}

func bindElements(e dyn.Engine, v dyn.Value, descs []Descriptor) error {
	items, ok := e.Elements(v)
	if !ok || e.TypeOf(v) != dyn.TypeArray {
		return typeMismatch(e, v, dyn.TypeArray)
	}

	err := Apply(NewCursor(e, items), descs...)

	var be *BindError
	if errors.As(err, &be) {
		return fmt.Errorf("element %d: %w", be.Position, be.Err)
	}

	return err
}
