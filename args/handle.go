package args

import (
	"fmt"
	"reflect"

	"argbind/dyn"
	"argbind/options"
)

// NativeHandle binds the native payload attached to an object argument. The
// object's tag must be tag itself and the payload must be a T.
func NativeHandle[T any](dst *T, tag *dyn.HandleTag, opt options.OptionalEnum) Descriptor {
	return NewVariants(KindNativeHandle, extractHandle[T], extractHandle[T]).
		Descriptor(dst, options.NoCoerce, opt, TagOf(tag))
}

func extractHandle[T any](e dyn.Engine, v dyn.Value, dst *T, extra Extra) error {
	if e.TypeOf(v) != dyn.TypeObject {
		return typeMismatch(e, v, dyn.TypeObject)
	}

	want, _ := extra.Tag()

	payload, tag, ok := e.NativeHandle(v)
	if !ok {
		return fmt.Errorf("%w: object has no native handle, want %s", ErrHandleTypeMismatch, want)
	}

	if tag != want {
		return fmt.Errorf("%w: got %s, want %s", ErrHandleTypeMismatch, tag, want)
	}

	p, ok := payload.(T)
	if !ok {
		return fmt.Errorf("%w: %s payload is %T, want %s", ErrHandleTypeMismatch, tag, payload, reflect.TypeFor[T]())
	}

	*dst = p
	return nil
}
