package primitive

import (
	"math"
	"reflect"
	"strconv"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindBool
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Integer matches every Go integer type, named or not.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float matches every Go floating-point type, named or not.
type Float interface {
	~float32 | ~float64
}

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		return strconv.IntSize
	case KindUintptr:
		return int(reflect.TypeFor[uintptr]().Size()) * 8
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
}

// Range returns the half-open interval [lo, hi) of real numbers whose
// integer part fits the kind. Both bounds are powers of two and therefore
// exact in float64, which makes the comparison safe for 64-bit kinds too.
func (k KindEnum) Range() (lo, hi float64) {
	if !k.IsInteger() {
		panic("only integer kinds has a range, but requested for: " + k.String())
	}

	bits := k.Bits()
	if k.IsSigned() {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}

	return 0, math.Ldexp(1, bits)
}

// MaxUint64 returns the largest value of an unsigned kind and the largest
// positive value of a signed kind, as an uint64.
func (k KindEnum) MaxUint64() uint64 {
	if k.IsSigned() {
		return 1<<(k.Bits()-1) - 1
	}

	return math.MaxUint64 >> (64 - k.Bits())
}

// MinInt64 returns the smallest value of an integer kind.
func (k KindEnum) MinInt64() int64 {
	if k.IsSigned() {
		return -1 << (k.Bits() - 1)
	}

	return 0
}

// FromReflectType classifies rtype by its underlying kind, so named types
// (e.g. `type Port uint16`) share the kind of their base type.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Uintptr:
		return KindUintptr
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}

func FromType[T any]() KindEnum {
	return FromReflectType(reflect.TypeFor[T]())
}
