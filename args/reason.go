package args

import (
	"errors"
	"fmt"

	"argbind/dyn"
)

//go:generate go tool stringer -type=ReasonEnum -trimprefix=Reason -output=reason_string.go

// ReasonEnum classifies why a transform failed.
type ReasonEnum int

const (
	ReasonUnknown ReasonEnum = iota // custom failures wrapping none of the sentinels
	ReasonTypeMismatch
	ReasonCoercionFailed
	ReasonCapacityExceeded
	ReasonHandleTypeMismatch
	ReasonMissingRequired
	ReasonOutOfRange

	// ReasonTotal is a constant that represents the total number of reasons defined
	ReasonTotal = int(iota)
)

var (
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrCoercionFailed     = errors.New("coercion failed")
	ErrCapacityExceeded   = errors.New("destination capacity exceeded")
	ErrHandleTypeMismatch = errors.New("native handle type mismatch")
	ErrMissingRequired    = errors.New("missing required argument")
	ErrOutOfRange         = errors.New("number out of range")
)

var reasonErrors = [ReasonTotal]error{
	ReasonTypeMismatch:       ErrTypeMismatch,
	ReasonCoercionFailed:     ErrCoercionFailed,
	ReasonCapacityExceeded:   ErrCapacityExceeded,
	ReasonHandleTypeMismatch: ErrHandleTypeMismatch,
	ReasonMissingRequired:    ErrMissingRequired,
	ReasonOutOfRange:         ErrOutOfRange,
}

// Err returns the sentinel error wrapped by failures of this reason, nil
// for ReasonUnknown.
func (r ReasonEnum) Err() error {
	if r < 0 || int(r) >= ReasonTotal {
		return nil
	}

	return reasonErrors[r]
}

// ReasonOf classifies err. A nil error and errors wrapping no sentinel are
// both ReasonUnknown.
func ReasonOf(err error) ReasonEnum {
	if err == nil {
		return ReasonUnknown
	}

	for r := ReasonUnknown + 1; int(r) < ReasonTotal; r++ {
		if errors.Is(err, reasonErrors[r]) {
			return r
		}
	}

	return ReasonUnknown
}

func typeMismatch(e dyn.Engine, v dyn.Value, want dyn.TypeEnum) error {
	return fmt.Errorf("%w: got %s, want %s", ErrTypeMismatch, e.TypeOf(v), want)
}

func coercionFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrCoercionFailed, err)
}
