package dyn

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber is the string-to-number conversion shared by the engines. It
// accepts decimal and exponent notation, integer literals with a 0x, 0o or
// 0b prefix and surrounding blanks; the blank string is zero. Text that does
// not denote a number, including "NaN", is an error rather than NaN.
func ParseNumber(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(t, 64)
	if (err == nil || errors.Is(err, strconv.ErrRange)) && !math.IsNaN(f) {
		return f, nil
	}

	if i, err := strconv.ParseInt(t, 0, 64); err == nil {
		return float64(i), nil
	}

	return 0, fmt.Errorf("%q does not denote a number", s)
}
