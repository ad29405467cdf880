// Package starengine lets native functions called from Starlark bind their
// arguments with package args.
//
// Starlark has no undefined value, None stands in for it: an optional
// argument passed as None is skipped exactly like an omitted one.
package starengine

import (
	"fmt"

	"go.starlark.net/starlark"

	"argbind/dyn"
)

// Engine implements dyn.Engine over go.starlark.net values. It is stateless.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func (*Engine) Undefined() dyn.Value {
	return starlark.None
}

func (*Engine) TypeOf(v dyn.Value) dyn.TypeEnum {
	switch v.(type) {
	case nil, starlark.NoneType:
		return dyn.TypeUndefined
	case starlark.Bool:
		return dyn.TypeBoolean
	case starlark.Int, starlark.Float:
		return dyn.TypeNumber
	case starlark.String, starlark.Bytes:
		return dyn.TypeString
	case *Handle:
		return dyn.TypeObject
	case starlark.Callable:
		return dyn.TypeFunction
	case starlark.Indexable:
		return dyn.TypeArray
	default:
		return dyn.TypeObject
	}
}

func (e *Engine) ToNumber(v dyn.Value) (float64, error) {
	switch v := v.(type) {
	case starlark.Int, starlark.Float:
		f, _ := starlark.AsFloat(v.(starlark.Value))
		return f, nil
	case starlark.Bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case starlark.String:
		return dyn.ParseNumber(string(v))
	}

	return 0, fmt.Errorf("cannot convert %s to number", typeName(v))
}

func (*Engine) ToBoolean(v dyn.Value) bool {
	sv, ok := v.(starlark.Value)
	if !ok {
		return false
	}

	return bool(sv.Truth())
}

func (*Engine) ToString(v dyn.Value) (string, error) {
	switch v := v.(type) {
	case starlark.String:
		return string(v), nil
	case starlark.Bytes:
		return string(v), nil
	case starlark.Value:
		return v.String(), nil
	}

	return "", fmt.Errorf("cannot convert %s to string", typeName(v))
}

func (*Engine) IsCallable(v dyn.Value) bool {
	_, ok := v.(starlark.Callable)
	return ok
}

func (*Engine) NativeHandle(v dyn.Value) (any, *dyn.HandleTag, bool) {
	h, ok := v.(*Handle)
	if !ok {
		return nil, nil, false
	}

	return h.Payload, h.Tag, true
}

func (*Engine) Property(v dyn.Value, name string) (dyn.Value, bool) {
	switch v := v.(type) {
	case *starlark.Dict:
		p, found, err := v.Get(starlark.String(name))
		if err != nil || !found {
			return nil, false
		}
		return p, true
	case starlark.HasAttrs:
		p, err := v.Attr(name)
		if err != nil || p == nil {
			return nil, false
		}
		return p, true
	}

	return nil, false
}

func (e *Engine) Elements(v dyn.Value) ([]dyn.Value, bool) {
	if e.TypeOf(v) != dyn.TypeArray {
		return nil, false
	}

	seq := v.(starlark.Indexable)
	items := make([]dyn.Value, seq.Len())
	for i := range items {
		items[i] = seq.Index(i)
	}

	return items, true
}

func typeName(v dyn.Value) string {
	if sv, ok := v.(starlark.Value); ok && sv != nil {
		return sv.Type()
	}

	return fmt.Sprintf("%T", v)
}
