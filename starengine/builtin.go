package starengine

import (
	"fmt"

	"go.starlark.net/starlark"

	"argbind/args"
	"argbind/dyn"
)

// BindFunc binds the positional arguments of the current call.
type BindFunc func(descs ...args.Descriptor) error

// NewBuiltin wraps fn as a Starlark builtin. fn binds the call's positional
// arguments through bind; a binding failure surfaces in the script as an
// error prefixed with the builtin's name. Keyword arguments are rejected.
func NewBuiltin(
	name string,
	binder *args.Binder,
	fn func(thread *starlark.Thread, bind BindFunc) (starlark.Value, error),
) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(
		thread *starlark.Thread, b *starlark.Builtin, argv starlark.Tuple, kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword argument %s", b.Name(), kwargs[0][0])
		}

		values := make([]dyn.Value, len(argv))
		for i, v := range argv {
			values[i] = v
		}

		res, err := fn(thread, func(descs ...args.Descriptor) error {
			return binder.Bind(values, descs...)
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}

		if res == nil {
			res = starlark.None
		}

		return res, nil
	})
}
