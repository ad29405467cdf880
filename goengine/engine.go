// Package goengine implements dyn.Engine over plain Go values, for hosts
// whose dynamic layer already hands arguments over as Go values (decoded
// JSON, RPC payloads, embedded interpreters built on interface{}).
//
// nil and nil pointers, maps, slices and funcs are undefined. Booleans,
// numbers and strings are classified by their underlying kind, so named
// types count too. Funcs are callable, slices and arrays are arrays, and
// everything else is an object.
package goengine

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"argbind/dyn"
	"argbind/primitive"
)

// Engine is stateless.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func (*Engine) Undefined() dyn.Value {
	return nil
}

func (*Engine) TypeOf(v dyn.Value) dyn.TypeEnum {
	if h, ok := v.(*Handle); ok && h != nil {
		return dyn.TypeObject
	}

	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return dyn.TypeUndefined
	}

	switch kind := primitive.FromReflectType(rv.Type()); {
	case kind == primitive.KindBool:
		return dyn.TypeBoolean
	case kind == primitive.KindString:
		return dyn.TypeString
	case kind.IsNumber():
		return dyn.TypeNumber
	}

	switch rv.Kind() {
	case reflect.Func:
		return dyn.TypeFunction
	case reflect.Slice, reflect.Array:
		return dyn.TypeArray
	default:
		return dyn.TypeObject
	}
}

func (e *Engine) ToNumber(v dyn.Value) (float64, error) {
	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return 0, fmt.Errorf("cannot convert undefined to number")
	}

	switch kind := primitive.FromReflectType(rv.Type()); {
	case kind == primitive.KindBool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case kind == primitive.KindString:
		return dyn.ParseNumber(rv.String())
	case kind.IsSigned():
		return float64(rv.Int()), nil
	case kind.IsUnsigned():
		return float64(rv.Uint()), nil
	case kind.IsFloat():
		return rv.Float(), nil
	}

	return 0, fmt.Errorf("cannot convert %T to number", v)
}

func (*Engine) ToBoolean(v dyn.Value) bool {
	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return false
	}

	switch kind := primitive.FromReflectType(rv.Type()); {
	case kind == primitive.KindBool:
		return rv.Bool()
	case kind == primitive.KindString:
		return rv.Len() > 0
	case kind.IsSigned():
		return rv.Int() != 0
	case kind.IsUnsigned():
		return rv.Uint() != 0
	case kind.IsFloat():
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}

	return true
}

func (*Engine) ToString(v dyn.Value) (string, error) {
	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return "", fmt.Errorf("cannot convert undefined to string")
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}

	switch kind := primitive.FromReflectType(rv.Type()); {
	case kind == primitive.KindString:
		return rv.String(), nil
	case kind == primitive.KindBool:
		return strconv.FormatBool(rv.Bool()), nil
	case kind.IsSigned():
		return strconv.FormatInt(rv.Int(), 10), nil
	case kind.IsUnsigned():
		return strconv.FormatUint(rv.Uint(), 10), nil
	case kind.IsFloat():
		return strconv.FormatFloat(rv.Float(), 'g', -1, kind.Bits()), nil
	}

	return "", fmt.Errorf("cannot convert %T to string", v)
}

func (e *Engine) IsCallable(v dyn.Value) bool {
	return e.TypeOf(v) == dyn.TypeFunction
}

func (*Engine) NativeHandle(v dyn.Value) (any, *dyn.HandleTag, bool) {
	h, ok := v.(*Handle)
	if !ok || h == nil {
		return nil, nil, false
	}

	return h.Payload, h.Tag, true
}

// Property looks name up in maps keyed by strings and in structs, where an
// exported field matches by its `arg` tag or by its name.
func (*Engine) Property(v dyn.Value, name string) (dyn.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		p := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !p.IsValid() {
			return nil, false
		}
		return p.Interface(), true

	case reflect.Struct:
		rt := rv.Type()
		for i := range rt.NumField() {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}

			if tag, ok := field.Tag.Lookup("arg"); (ok && tag == name) || (!ok && field.Name == name) {
				return rv.Field(i).Interface(), true
			}
		}
	}

	return nil, false
}

func (*Engine) Elements(v dyn.Value) ([]dyn.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]dyn.Value, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

func isNil(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}

	return false
}
