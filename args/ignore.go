package args

// Ignore consumes one argument position, whatever it holds, and writes
// nowhere.
func Ignore() Descriptor {
	return Descriptor{
		kind: KindIgnore,
		apply: func(c *Cursor) error {
			c.Pop()
			return nil
		},
	}
}
