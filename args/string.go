package args

import (
	"fmt"

	"argbind/dyn"
	"argbind/options"
)

// Buffer is a fixed-capacity destination for string arguments. A binding
// either stores the whole encoded string or fails, it never truncates.
type Buffer struct {
	data []byte
	n    int
}

func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, capacity)}
}

// Cap is the capacity in bytes.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Len is the encoded length of the last stored string.
func (b *Buffer) Len() int {
	return b.n
}

func (b *Buffer) Bytes() []byte {
	return b.data[:b.n]
}

func (b *Buffer) String() string {
	return string(b.Bytes())
}

func (b *Buffer) store(s string, capacity int) error {
	capacity = min(capacity, len(b.data))
	if len(s) > capacity {
		return fmt.Errorf("%w: %d bytes do not fit into %d", ErrCapacityExceeded, len(s), capacity)
	}

	b.n = copy(b.data, s)
	return nil
}

var (
	bufferVariants = NewVariants(KindString, storeString(extractStringStrict), storeString(extractStringCoerce))
	textVariants   = NewVariants(KindString, extractStringStrict, extractStringCoerce)
)

// String binds a string argument into a fixed-capacity buffer. The encoded
// bytes must fit into dst.Cap() in both strict and coercing mode.
func String(dst *Buffer, coerce options.CoerceEnum, opt options.OptionalEnum) Descriptor {
	if dst == nil {
		panic("destination of String argument cannot be nil")
	}

	return bufferVariants.Descriptor(dst, coerce, opt, CapacityOf(dst.Cap()))
}

// Text binds a string argument into a Go string with no capacity limit.
func Text(dst *string, coerce options.CoerceEnum, opt options.OptionalEnum) Descriptor {
	return textVariants.Descriptor(dst, coerce, opt, Extra{})
}

func storeString(extract Extractor[string]) Extractor[Buffer] {
	return func(e dyn.Engine, v dyn.Value, dst *Buffer, extra Extra) error {
		var s string
		if err := extract(e, v, &s, extra); err != nil {
			return err
		}

		capacity, ok := extra.Capacity()
		if !ok {
			capacity = dst.Cap()
		}

		return dst.store(s, capacity)
	}
}

func extractStringStrict(e dyn.Engine, v dyn.Value, dst *string, extra Extra) error {
	if e.TypeOf(v) != dyn.TypeString {
		return typeMismatch(e, v, dyn.TypeString)
	}

	return extractStringCoerce(e, v, dst, extra)
}

func extractStringCoerce(e dyn.Engine, v dyn.Value, dst *string, _ Extra) error {
	s, err := e.ToString(v)
	if err != nil {
		return coercionFailed(err)
	}

	*dst = s
	return nil
}
