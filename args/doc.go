// Package args binds the arguments of a native function call, received as
// dynamic runtime values, into statically typed Go destinations.
//
// A call site builds one Descriptor per logical argument, in the order the
// arguments must be consumed, and applies them against a single Cursor:
//
//	var (
//		count float64
//		name  = args.NewBuffer(32)
//		cb    dyn.Value
//	)
//	err := args.NewBinder(engine).Bind(argv,
//		args.Number(&count, options.Coerce, options.Required),
//		args.String(name, options.NoCoerce, options.Required),
//		args.Function(&cb, options.Optional),
//	)
//
// Binding stops at the first failing descriptor and returns a *BindError
// carrying the zero-based position of the offending argument. ReasonOf
// classifies any failure into a ReasonEnum.
//
// Every built-in kind resolves its transform through Variants, a lookup
// keyed by {coerce, optional}; user-defined kinds build their own Variants
// from a strict and a coercing Extractor, and one-off transforms go through
// Custom.
package args
