package args

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"argbind/dyn"
	"argbind/utils"
)

var (
	ErrIsNotACaster         = errors.New("provided function is not a recognizable caster")
	ErrCasterIsNotAFunction = errors.New("provided caster is not a function")
	ErrCasterResultType     = errors.New("caster result does not match the destination type")
)

type caster[T any] struct {
	fn      reflect.Value
	src     reflect.Type
	name    string
	hasBool bool
	hasErr  bool
}

// ParseCaster inspects fn and turns it into a transform for destinations of
// type T.
//
// Supports interfaces:
//   - func(src A) (dst T)
//   - func(src A) (dst T, bool)
//   - func(src A) (dst T, error)
//   - func(src A) (dst T, bool, error)
//
// The argument is handed to fn when it is assignable to A, or convertible
// to A without changing its kind (e.g. a runtime's named string type into
// string). A false bool fails with ErrTypeMismatch and a returned error with
// ErrCoercionFailed.
func ParseCaster[T any](fn any) (Transform[T], error) {
	if fn == nil {
		return nil, ErrCasterIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return nil, ErrCasterIsNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.IsVariadic() || fnType.NumOut() == 0 {
		return nil, ErrIsNotACaster
	}

	if fnType.Out(0) != reflect.TypeFor[T]() {
		return nil, fmt.Errorf("%w: returns %s, want %s", ErrCasterResultType, fnType.Out(0), reflect.TypeFor[T]())
	}

	c := &caster[T]{
		fn:   fnVal,
		src:  fnType.In(0),
		name: funcName(fnVal),
	}

	switch fnType.NumOut() {
	default:
		return nil, ErrIsNotACaster

	case 1:
		return c, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return nil, ErrIsNotACaster
		case last.Kind() == reflect.Bool:
			c.hasBool = true
		case isError(last):
			c.hasErr = true
		}
		return c, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return nil, ErrIsNotACaster
		}

		c.hasBool = true
		c.hasErr = true
		return c, nil
	}
}

// Caster binds a required argument into dst through a plain Go function, see
// ParseCaster for the accepted shapes.
func Caster[T any](dst *T, fn any) (Descriptor, error) {
	t, err := ParseCaster[T](fn)
	if err != nil {
		return Descriptor{}, err
	}

	return Custom(dst, OpaqueOf(t.(*caster[T]).name), t), nil
}

func (c *caster[T]) TransformInto(cur *Cursor, dst *T, _ Extra) error {
	e := cur.Engine()

	v := cur.Pop()
	if dyn.IsUndefined(e, v) {
		return ErrMissingRequired
	}

	in, ok := c.argument(v)
	if !ok {
		return fmt.Errorf("%w: %s takes %s, got %s", ErrTypeMismatch, c.name, c.src, e.TypeOf(v))
	}

	out := c.fn.Call([]reflect.Value{in})

	if c.hasErr {
		if err, _ := out[len(out)-1].Interface().(error); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCoercionFailed, c.name, err)
		}
	}

	if c.hasBool && !out[1].Bool() {
		return fmt.Errorf("%w: %s rejected the %s argument", ErrTypeMismatch, c.name, e.TypeOf(v))
	}

	if dst != nil {
		reflect.ValueOf(dst).Elem().Set(out[0])
	}

	return nil
}

func (c *caster[T]) argument(v dyn.Value) (reflect.Value, bool) {
	if v == nil {
		switch c.src.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(c.src), true
		}

		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Type().AssignableTo(c.src):
		return rv, true
	case rv.Kind() == c.src.Kind() && rv.Type().ConvertibleTo(c.src):
		return rv.Convert(c.src), true
	}

	return reflect.Value{}, false
}

func funcName(fn reflect.Value) string {
	fnPC := runtime.FuncForPC(fn.Pointer())
	if fnPC == nil {
		return "caster"
	}

	pkg, name := utils.Unpack2(strings.SplitN(utils.Second(path.Split(fnPC.Name())), ".", 2))
	if name == "" {
		return pkg
	}

	return pkg + "." + name
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(reflect.TypeFor[error]())
}
