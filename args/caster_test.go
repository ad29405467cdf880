package args_test

import (
	"errors"
	"net/netip"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"

	"argbind/args"
)

func TestParseCaster(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   any
		err  error
	}{
		{"plain", func(s string) int { return len(s) }, nil},
		{"with bool", func(s string) (int, bool) { return len(s), s != "" }, nil},
		{"with error", strconv.Atoi, nil},
		{"with bool and error", func(string) (int, bool, error) { return 0, true, nil }, nil},
		{"nil", nil, args.ErrCasterIsNotAFunction},
		{"not a function", 42, args.ErrCasterIsNotAFunction},
		{"no arguments", func() int { return 0 }, args.ErrIsNotACaster},
		{"two arguments", func(string, string) int { return 0 }, args.ErrIsNotACaster},
		{"variadic", func(...string) int { return 0 }, args.ErrIsNotACaster},
		{"no results", func(string) {}, args.ErrIsNotACaster},
		{"wrong second result", func(string) (int, string) { return 0, "" }, args.ErrIsNotACaster},
		{"swapped results", func(string) (int, error, bool) { return 0, nil, true }, args.ErrIsNotACaster},
		{"wrong result type", strconv.Itoa, args.ErrCasterResultType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := args.ParseCaster[int](tt.fn)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCasterBinding(t *testing.T) {
	t.Parallel()

	var n int
	d, err := args.Caster(&n, strconv.Atoi)
	require.NoError(t, err)

	name, ok := d.Extra().Opaque()
	require.True(t, ok)
	assert.Equal(t, "strconv.Atoi", name)
	assert.Equal(t, args.KindCustom, d.Kind())

	require.NoError(t, bind(values(starlark.String("42")), d))
	assert.Equal(t, 42, n)

	err = bind(values(starlark.String("forty-two")), d)
	assert.ErrorIs(t, err, args.ErrCoercionFailed)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Equal(t, 42, n)

	err = bind(values(starlark.MakeInt(42)), d)
	assert.ErrorIs(t, err, args.ErrTypeMismatch)

	err = bind(nil, d)
	assert.ErrorIs(t, err, args.ErrMissingRequired)
}

func TestCasterBoolResult(t *testing.T) {
	t.Parallel()

	var addr netip.Addr
	d, err := args.Caster(&addr, func(s string) (netip.Addr, bool) {
		a, err := netip.ParseAddr(s)
		return a, err == nil
	})
	require.NoError(t, err)

	require.NoError(t, bind(values(starlark.String("10.0.0.1")), d))
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), addr)

	err = bind(values(starlark.String("localhost")), d)
	assert.ErrorIs(t, err, args.ErrTypeMismatch)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), addr)
}

func TestCasterAcceptsRuntimeValues(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd length")

	var list *starlark.List
	d, err := args.Caster(&list, func(v starlark.Value) (*starlark.List, error) {
		l, ok := v.(*starlark.List)
		if !ok || l.Len()%2 != 0 {
			return nil, errOdd
		}
		return l, nil
	})
	require.NoError(t, err)

	l := starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})
	require.NoError(t, bind(values(l), d))
	assert.Same(t, l, list)

	err = bind(values(starlark.Tuple{starlark.MakeInt(1)}), d)
	assert.ErrorIs(t, err, errOdd)
	assert.Equal(t, args.ReasonCoercionFailed, args.ReasonOf(err))
}
