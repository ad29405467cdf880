package goengine

import "argbind/dyn"

// Handle attaches an opaque native payload to a value passed through the
// dynamic layer.
type Handle struct {
	Tag     *dyn.HandleTag
	Payload any
}

func NewHandle(tag *dyn.HandleTag, payload any) *Handle {
	return &Handle{Tag: tag, Payload: payload}
}
