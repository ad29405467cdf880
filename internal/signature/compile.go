package signature

import (
	"errors"
	"fmt"
	"strings"

	"argbind/args"
	"argbind/dyn"
	"argbind/goengine"
	"argbind/options"
	"argbind/primitive"
)

var (
	ErrUnknownTag         = errors.New("unknown handle tag")
	ErrUnknownKind        = errors.New("unknown argument kind")
	ErrInvalidArgument    = errors.New("invalid argument declaration")
	ErrUnsupportedDefault = errors.New("default is not supported for this kind")
)

// Value is one bound argument as reported by Frame.Values. Object and
// array arguments hold their properties as a []Value.
type Value struct {
	Name  string
	Value any
}

func (v Value) String() string {
	return v.Name + " = " + formatValue(v.Value)
}

func formatValue(v any) string {
	nested, ok := v.([]Value)
	if !ok {
		return fmt.Sprint(v)
	}

	parts := make([]string, len(nested))
	for i, p := range nested {
		parts[i] = p.String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Frame owns the destinations of one compiled signature. Binding writes
// into them; a frame is reused across calls only when absent optional
// arguments may keep the values of the previous call.
type Frame struct {
	name  string
	slots []*slot
	descs []args.Descriptor
}

type slot struct {
	name  string
	kind  string
	build func(coerce options.CoerceEnum, opt options.OptionalEnum) args.Descriptor
	value func() any
}

func (f *Frame) Name() string {
	return f.name
}

// Descriptors lists one descriptor per declared argument, in call order.
func (f *Frame) Descriptors() []args.Descriptor {
	return f.descs
}

// Values reports the current content of every destination. Ignored
// arguments have none and are left out.
func (f *Frame) Values() []Value {
	return slotValues(f.slots)
}

func slotValues(slots []*slot) []Value {
	var out []Value
	for _, s := range slots {
		if s.kind == KindIgnore {
			continue
		}

		out = append(out, Value{Name: s.name, Value: s.value()})
	}

	return out
}

// Compile allocates destinations for every argument of s, binds their
// defaults and returns the frame. Handle arguments resolve their tag by
// name in tags.
func (s *Signature) Compile(tags map[string]*dyn.HandleTag) (*Frame, error) {
	f := &Frame{name: s.Name}

	for i := range s.Args {
		a := &s.Args[i]

		sl, err := compileArg(a, tags)
		if err != nil {
			return nil, fmt.Errorf("signature %s: argument %s: %w", s.Name, a.Name, err)
		}

		f.slots = append(f.slots, sl)
		f.descs = append(f.descs, sl.build(a.coerce(), a.optional()))
	}

	return f, nil
}

func compileArg(a *Arg, tags map[string]*dyn.HandleTag) (*slot, error) {
	sl, err := newSlot(a, tags)
	if err != nil {
		return nil, err
	}

	sl.name = a.Name
	sl.kind = a.Kind

	if a.Default == nil {
		return sl, nil
	}

	if !acceptsDefault(a.Kind) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDefault, a.Kind)
	}

	// defaults come from YAML as plain Go values
	c := args.NewCursor(goengine.New(), []dyn.Value{a.Default})
	if err := args.Apply(c, sl.build(options.Coerce, options.Required)); err != nil {
		return nil, fmt.Errorf("default %v: %w", a.Default, err)
	}

	return sl, nil
}

func newSlot(a *Arg, tags map[string]*dyn.HandleTag) (*slot, error) {
	switch a.Kind {
	case KindNumber:
		var v float64
		return &slot{
			build: func(c options.CoerceEnum, o options.OptionalEnum) args.Descriptor { return args.Number(&v, c, o) },
			value: func() any { return v },
		}, nil

	case KindBoolean:
		var v bool
		return &slot{
			build: func(c options.CoerceEnum, o options.OptionalEnum) args.Descriptor { return args.Boolean(&v, c, o) },
			value: func() any { return v },
		}, nil

	case KindString:
		if a.Capacity <= 0 {
			return nil, fmt.Errorf("%w: capacity %d", ErrInvalidArgument, a.Capacity)
		}

		buf := args.NewBuffer(a.Capacity)
		return &slot{
			build: func(c options.CoerceEnum, o options.OptionalEnum) args.Descriptor { return args.String(buf, c, o) },
			value: func() any { return buf.String() },
		}, nil

	case KindText:
		var v string
		return &slot{
			build: func(c options.CoerceEnum, o options.OptionalEnum) args.Descriptor { return args.Text(&v, c, o) },
			value: func() any { return v },
		}, nil

	case KindFunction:
		var v dyn.Value
		return &slot{
			build: func(_ options.CoerceEnum, o options.OptionalEnum) args.Descriptor { return args.Function(&v, o) },
			value: func() any { return v },
		}, nil

	case KindHandle:
		tag, ok := tags[a.Tag]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownTag, a.Tag)
		}

		var v any
		return &slot{
			build: func(_ options.CoerceEnum, o options.OptionalEnum) args.Descriptor {
				return args.NativeHandle(&v, tag, o)
			},
			value: func() any { return v },
		}, nil

	case KindIgnore:
		return &slot{
			build: func(options.CoerceEnum, options.OptionalEnum) args.Descriptor { return args.Ignore() },
			value: func() any { return nil },
		}, nil

	case KindInteger:
		return integerSlot(a)

	case KindObject, KindArray:
		return nestedSlot(a, tags)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownKind, a.Kind)
}

func integerSlot(a *Arg) (*slot, error) {
	kind, ok := integerTypes[a.Type]
	if !ok {
		return nil, fmt.Errorf("%w: integer type %q", ErrInvalidArgument, a.Type)
	}

	round, ok := roundings[a.Round]
	if !ok {
		return nil, fmt.Errorf("%w: rounding %q", ErrInvalidArgument, a.Round)
	}

	clamp := a.clamp()

	switch kind {
	case primitive.KindInt:
		return newInteger[int](round, clamp), nil
	case primitive.KindInt8:
		return newInteger[int8](round, clamp), nil
	case primitive.KindInt16:
		return newInteger[int16](round, clamp), nil
	case primitive.KindInt32:
		return newInteger[int32](round, clamp), nil
	case primitive.KindInt64:
		return newInteger[int64](round, clamp), nil
	case primitive.KindUint:
		return newInteger[uint](round, clamp), nil
	case primitive.KindUint8:
		return newInteger[uint8](round, clamp), nil
	case primitive.KindUint16:
		return newInteger[uint16](round, clamp), nil
	case primitive.KindUint32:
		return newInteger[uint32](round, clamp), nil
	case primitive.KindUint64:
		return newInteger[uint64](round, clamp), nil
	case primitive.KindUintptr:
		return newInteger[uintptr](round, clamp), nil
	}

	panic("integer type table out of sync for " + kind.String())
}

func newInteger[T primitive.Integer](round options.RoundEnum, clamp options.ClampEnum) *slot {
	var v T
	return &slot{
		build: func(c options.CoerceEnum, o options.OptionalEnum) args.Descriptor {
			return args.Integer(&v, round, clamp, c, o)
		},
		value: func() any { return v },
	}
}

// nestedSlot compiles the properties of an object or the elements of an
// array. Each nested argument keeps its own modifiers; the outer coerce
// flag does not propagate.
func nestedSlot(a *Arg, tags map[string]*dyn.HandleTag) (*slot, error) {
	children := make([]*slot, len(a.Properties))
	names := make([]string, len(a.Properties))
	descs := make([]args.Descriptor, len(a.Properties))

	for i := range a.Properties {
		p := &a.Properties[i]

		child, err := compileArg(p, tags)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}

		children[i] = child
		names[i] = p.Name
		descs[i] = child.build(p.coerce(), p.optional())
	}

	value := func() any { return slotValues(children) }

	if a.Kind == KindArray {
		return &slot{
			build: func(_ options.CoerceEnum, o options.OptionalEnum) args.Descriptor { return args.Array(descs, o) },
			value: value,
		}, nil
	}

	return &slot{
		build: func(_ options.CoerceEnum, o options.OptionalEnum) args.Descriptor {
			return args.ObjectProperties(names, descs, o)
		},
		value: value,
	}, nil
}
