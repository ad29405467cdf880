package args

// Custom builds a descriptor around a caller-supplied transform. The
// transform advances the cursor itself and may consume any number of
// positions; dst may be nil when it writes nowhere.
func Custom[T any](dst *T, extra Extra, t Transform[T]) Descriptor {
	return Descriptor{
		kind:   KindCustom,
		extra:  extra,
		hasDst: dst != nil,
		apply: func(c *Cursor) error {
			return t.TransformInto(c, dst, extra)
		},
	}
}

// CustomFunc is Custom for a plain function.
func CustomFunc[T any](dst *T, extra Extra, fn func(c *Cursor, dst *T, extra Extra) error) Descriptor {
	return Custom(dst, extra, TransformFunc[T](fn))
}
