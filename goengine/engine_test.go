package goengine_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argbind/args"
	"argbind/dyn"
	"argbind/goengine"
	"argbind/options"
)

type Mode string

type Config struct {
	Host    string `arg:"host"`
	Port    uint16 `arg:"port"`
	Verbose bool
	secret  string
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	e := goengine.New()

	var nilMap map[string]any
	var nilFunc func()

	tests := []struct {
		name  string
		value dyn.Value
		want  dyn.TypeEnum
	}{
		{"nil", nil, dyn.TypeUndefined},
		{"nil pointer", (*Config)(nil), dyn.TypeUndefined},
		{"nil map", nilMap, dyn.TypeUndefined},
		{"nil func", nilFunc, dyn.TypeUndefined},
		{"nil handle", (*goengine.Handle)(nil), dyn.TypeUndefined},
		{"bool", true, dyn.TypeBoolean},
		{"int", 1, dyn.TypeNumber},
		{"named number", time.Second, dyn.TypeNumber},
		{"float", math.NaN(), dyn.TypeNumber},
		{"string", "", dyn.TypeString},
		{"named string", Mode("fast"), dyn.TypeString},
		{"func", func() {}, dyn.TypeFunction},
		{"slice", []int{}, dyn.TypeArray},
		{"array", [2]string{}, dyn.TypeArray},
		{"map", map[string]any{}, dyn.TypeObject},
		{"struct", Config{}, dyn.TypeObject},
		{"handle", goengine.NewHandle(dyn.NewHandleTag("h"), nil), dyn.TypeObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, e.TypeOf(tt.value))
		})
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()

	e := goengine.New()

	n, err := e.ToNumber(uint8(200))
	require.NoError(t, err)
	assert.Equal(t, 200.0, n)

	n, err = e.ToNumber(Mode(" 0x1f "))
	require.NoError(t, err)
	assert.Equal(t, 31.0, n)

	n, err = e.ToNumber(false)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = e.ToNumber([]int{1})
	assert.Error(t, err)

	_, err = e.ToNumber(nil)
	assert.Error(t, err)

	assert.True(t, e.ToBoolean("x"))
	assert.False(t, e.ToBoolean(""))
	assert.False(t, e.ToBoolean(math.NaN()))
	assert.False(t, e.ToBoolean(uint(0)))
	assert.True(t, e.ToBoolean(Config{}))
	assert.False(t, e.ToBoolean(nil))

	s, err := e.ToString(float32(0.1))
	require.NoError(t, err)
	assert.Equal(t, "0.1", s)

	s, err = e.ToString(time.Second)
	require.NoError(t, err)
	assert.Equal(t, "1s", s, "fmt.Stringer wins over the underlying kind")

	s, err = e.ToString(int64(-5))
	require.NoError(t, err)
	assert.Equal(t, "-5", s)

	_, err = e.ToString(Config{})
	assert.Error(t, err)

	assert.True(t, e.IsCallable(func(int) {}))
	assert.False(t, e.IsCallable("func"))
}

func TestPropertyAndElements(t *testing.T) {
	t.Parallel()

	e := goengine.New()
	cfg := &Config{Host: "localhost", Port: 8080, Verbose: true, secret: "s"}

	for name, want := range map[string]any{"host": "localhost", "port": uint16(8080), "Verbose": true} {
		got, ok := e.Property(cfg, name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	for _, name := range []string{"Host", "secret", "missing"} {
		_, ok := e.Property(cfg, name)
		assert.False(t, ok, name)
	}

	got, ok := e.Property(map[Mode]int{"fast": 1}, "fast")
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = e.Property(map[int]int{1: 1}, "1")
	assert.False(t, ok)

	items, ok := e.Elements([2]any{"a", 1})
	assert.True(t, ok)
	assert.Equal(t, []dyn.Value{"a", 1}, items)

	_, ok = e.Elements(map[string]any{})
	assert.False(t, ok)
}

func TestBindGoValues(t *testing.T) {
	t.Parallel()

	type conn struct{ id int }

	tag := dyn.NewHandleTag("conn")
	c := &conn{id: 7}
	b := args.NewBinder(goengine.New())

	var (
		handle  *conn
		host    string
		port    uint16
		verbose bool
		retries = 3
		xs      [2]float64
	)

	err := b.Bind([]dyn.Value{
		goengine.NewHandle(tag, c),
		Config{Host: "example.org", Port: 443},
		nil,
		[]any{1.5, "2.5"},
	},
		args.NativeHandle(&handle, tag, options.Required),
		args.ObjectProperties(
			[]string{"host", "port", "Verbose"},
			[]args.Descriptor{
				args.Text(&host, options.NoCoerce, options.Required),
				args.Integer(&port, options.Round, options.NoClamp, options.NoCoerce, options.Required),
				args.Boolean(&verbose, options.NoCoerce, options.Optional),
			},
			options.Required,
		),
		args.Integer(&retries, options.Round, options.NoClamp, options.NoCoerce, options.Optional),
		args.Array([]args.Descriptor{
			args.Number(&xs[0], options.NoCoerce, options.Required),
			args.Number(&xs[1], options.Coerce, options.Required),
		}, options.Required),
	)
	require.NoError(t, err)

	assert.Same(t, c, handle)
	assert.Equal(t, "example.org", host)
	assert.Equal(t, uint16(443), port)
	assert.False(t, verbose)
	assert.Equal(t, 3, retries)
	assert.Equal(t, [2]float64{1.5, 2.5}, xs)
}
