package starengine

import (
	"fmt"

	"go.starlark.net/starlark"

	"argbind/dyn"
)

// Handle is a Starlark value carrying an opaque native payload. Native code
// gets the payload back through args.NativeHandle with the same tag.
type Handle struct {
	Tag     *dyn.HandleTag
	Payload any
}

var _ starlark.Value = (*Handle)(nil)

func NewHandle(tag *dyn.HandleTag, payload any) *Handle {
	return &Handle{Tag: tag, Payload: payload}
}

func (h *Handle) String() string        { return fmt.Sprintf("<handle %s>", h.Tag) }
func (h *Handle) Type() string          { return "handle" }
func (h *Handle) Freeze()               {}
func (h *Handle) Truth() starlark.Bool  { return starlark.True }
func (h *Handle) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: handle") }
