package args

import "argbind/dyn"

// Cursor walks the arguments of one native call. It borrows the values and
// must not outlive the binding pass. Cursor is not safe for concurrent use.
type Cursor struct {
	engine dyn.Engine
	items  []dyn.Value
	index  int
}

func NewCursor(e dyn.Engine, items []dyn.Value) *Cursor {
	return &Cursor{
		engine: e,
		items:  items,
	}
}

func (c *Cursor) Engine() dyn.Engine {
	return c.engine
}

// Peek returns the current argument without consuming it, or the engine's
// undefined sentinel once the arguments are exhausted.
func (c *Cursor) Peek() dyn.Value {
	if c.index < len(c.items) {
		return c.items[c.index]
	}

	return c.engine.Undefined()
}

// Pop returns the current argument and advances by exactly one position.
// Running past the end is not a fault: the position keeps counting and the
// undefined sentinel is returned.
func (c *Cursor) Pop() dyn.Value {
	v := c.Peek()
	c.index++

	return v
}

// Position is the zero-based index of the next argument Pop would return.
func (c *Cursor) Position() int {
	return c.index
}

func (c *Cursor) Len() int {
	return len(c.items)
}

func (c *Cursor) Remaining() int {
	return max(len(c.items)-c.index, 0)
}
