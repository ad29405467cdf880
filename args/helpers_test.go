package args_test

import (
	"go.starlark.net/starlark"

	"argbind/args"
	"argbind/dyn"
	"argbind/starengine"
)

var engine = starengine.New()

func values(vs ...starlark.Value) []dyn.Value {
	out := make([]dyn.Value, len(vs))
	for i, v := range vs {
		out[i] = v
	}

	return out
}

func bind(argv []dyn.Value, descs ...args.Descriptor) error {
	return args.Apply(args.NewCursor(engine, argv), descs...)
}

// recorder is a custom descriptor that notes whether it ran.
func recorder(ran *bool) args.Descriptor {
	return args.CustomFunc[struct{}](nil, args.Extra{}, func(c *args.Cursor, _ *struct{}, _ args.Extra) error {
		*ran = true
		c.Pop()
		return nil
	})
}

func noop(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return starlark.None, nil
}
