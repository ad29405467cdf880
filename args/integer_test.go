package args_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"

	"argbind/args"
	"argbind/options"
	"argbind/primitive"
)

type integerCase struct {
	name   string
	value  starlark.Value
	round  options.RoundEnum
	clamp  options.ClampEnum
	coerce options.CoerceEnum
	want   int64
	reason args.ReasonEnum
}

func runIntegerCases[T primitive.Integer](t *testing.T, tests []integerCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got T
			err := bind(values(tt.value), args.Integer(&got, tt.round, tt.clamp, tt.coerce, options.Required))

			if tt.reason != args.ReasonUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.reason, args.ReasonOf(err))
				assert.Zero(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, T(tt.want), got)
		})
	}
}

func TestIntegerRounding(t *testing.T) {
	t.Parallel()

	runIntegerCases[int](t, []integerCase{
		{name: "round half up", value: starlark.Float(2.5), round: options.Round, want: 3},
		{name: "round half away from zero", value: starlark.Float(-2.5), round: options.Round, want: -3},
		{name: "floor", value: starlark.Float(-2.1), round: options.Floor, want: -3},
		{name: "ceil", value: starlark.Float(2.1), round: options.Ceil, want: 3},
		{name: "trunc", value: starlark.Float(-2.7), round: options.Trunc, want: -2},
		{name: "int is exact", value: starlark.MakeInt(1 << 40), round: options.Trunc, want: 1 << 40},
		{name: "hex string coerce", value: starlark.String("0x10"), coerce: options.Coerce, want: 16},
		{name: "string strict", value: starlark.String("16"), reason: args.ReasonTypeMismatch},
		{name: "nan", value: starlark.Float(math.NaN()), reason: args.ReasonCoercionFailed},
		{name: "infinity", value: starlark.Float(math.Inf(1)), reason: args.ReasonOutOfRange},
		{name: "infinity clamped", value: starlark.Float(math.Inf(-1)), clamp: options.Clamp, want: math.MinInt},
	})
}

func TestIntegerRangeInt8(t *testing.T) {
	t.Parallel()

	runIntegerCases[int8](t, []integerCase{
		{name: "upper bound", value: starlark.Float(127.4), round: options.Round, want: 127},
		{name: "rounded past upper bound", value: starlark.Float(127.5), round: options.Round, reason: args.ReasonOutOfRange},
		{name: "truncated under upper bound", value: starlark.Float(127.9), round: options.Trunc, want: 127},
		{name: "lower bound", value: starlark.MakeInt(-128), want: -128},
		{name: "below lower bound", value: starlark.MakeInt(-129), reason: args.ReasonOutOfRange},
		{name: "clamped high", value: starlark.MakeInt(1000), clamp: options.Clamp, want: 127},
		{name: "clamped low", value: starlark.MakeInt(-200), clamp: options.Clamp, want: -128},
	})
}

func TestIntegerRangeUint8(t *testing.T) {
	t.Parallel()

	runIntegerCases[uint8](t, []integerCase{
		{name: "max", value: starlark.MakeInt(255), want: 255},
		{name: "overflow", value: starlark.MakeInt(300), reason: args.ReasonOutOfRange},
		{name: "negative", value: starlark.MakeInt(-1), reason: args.ReasonOutOfRange},
		{name: "small negative rounds to zero", value: starlark.Float(-0.4), round: options.Round, want: 0},
		{name: "overflow clamped", value: starlark.MakeInt(300), clamp: options.Clamp, want: 255},
		{name: "negative clamped", value: starlark.MakeInt(-1), clamp: options.Clamp, want: 0},
		{name: "coerced bool", value: starlark.True, coerce: options.Coerce, want: 1},
	})
}

func TestIntegerUint64Bounds(t *testing.T) {
	t.Parallel()

	var got uint64

	require.NoError(t, bind(values(starlark.Float(math.Ldexp(1, 63))),
		args.Integer(&got, options.Trunc, options.NoClamp, options.NoCoerce, options.Required)))
	assert.Equal(t, uint64(1)<<63, got)

	err := bind(values(starlark.Float(math.Ldexp(1, 64))),
		args.Integer(&got, options.Trunc, options.NoClamp, options.NoCoerce, options.Required))
	require.EqualError(t, err, "argument 0 (Integer): number out of range: 1.8446744073709552e+19 does not fit into uint64")

	require.NoError(t, bind(values(starlark.Float(math.Ldexp(1, 64))),
		args.Integer(&got, options.Trunc, options.Clamp, options.NoCoerce, options.Required)))
	assert.Equal(t, uint64(math.MaxUint64), got)
}

func TestIntegerOptionalAndNamedTypes(t *testing.T) {
	t.Parallel()

	type Port uint16

	port := Port(8080)
	d := args.Integer(&port, options.Round, options.NoClamp, options.Coerce, options.Optional)

	require.NoError(t, bind(nil, d))
	assert.Equal(t, Port(8080), port)

	require.NoError(t, bind(values(starlark.String("443")), d))
	assert.Equal(t, Port(443), port)

	opts, ok := d.Extra().IntOptions()
	assert.True(t, ok)
	assert.Equal(t, args.IntOptions{Round: options.Round, Clamp: options.NoClamp}, opts)
}
