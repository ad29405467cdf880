package args

import (
	"fmt"
	"math"
	"reflect"

	"argbind/dyn"
	"argbind/options"
	"argbind/primitive"
	"argbind/utils"
)

// Integer binds a number argument into any Go integer type. The number is
// extracted like Number (strict or coercing), rounded, then checked against
// the range of T: clamping saturates at the bounds, otherwise an out of
// range value fails with ErrOutOfRange.
func Integer[T primitive.Integer](
	dst *T,
	round options.RoundEnum,
	clamp options.ClampEnum,
	coerce options.CoerceEnum,
	opt options.OptionalEnum,
) Descriptor {
	return NewVariants(KindInteger, integerOf[T](extractNumberStrict), integerOf[T](extractNumberCoerce)).
		Descriptor(dst, coerce, opt, IntOptionsOf(round, clamp))
}

func integerOf[T primitive.Integer](number Extractor[float64]) Extractor[T] {
	return func(e dyn.Engine, v dyn.Value, dst *T, extra Extra) error {
		var f float64
		if err := number(e, v, &f, extra); err != nil {
			return err
		}

		opts, _ := extra.IntOptions()

		n, err := toInteger[T](f, opts)
		if err != nil {
			return err
		}

		*dst = n
		return nil
	}
}

func toInteger[T primitive.Integer](f float64, opts IntOptions) (T, error) {
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: NaN is not an integer", ErrCoercionFailed)
	}

	switch opts.Round {
	case options.Round:
		f = math.Round(f)
	case options.Floor:
		f = math.Floor(f)
	case options.Ceil:
		f = math.Ceil(f)
	case options.Trunc:
		f = math.Trunc(f)
	}

	kind := primitive.FromType[T]()

	lo, hi := kind.Range()
	if !utils.IsInHalfOpen(lo, f, hi) {
		if opts.Clamp == options.NoClamp {
			return 0, fmt.Errorf("%w: %g does not fit into %s", ErrOutOfRange, f, reflect.TypeFor[T]())
		}

		if f < lo {
			return T(kind.MinInt64()), nil
		}

		return T(kind.MaxUint64()), nil
	}

	if kind.IsSigned() {
		return T(int64(f)), nil
	}

	return T(uint64(f)), nil
}
