package stats

import (
	"errors"
	"fmt"
	"math"
)

// Number constrains the statistics helpers to real numeric element types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Basis selects the variance denominator: the whole population (n) or a
// sample drawn from it (n-1, Bessel's correction).
type Basis int

const (
	Population Basis = iota
	Sample
)

func (b Basis) String() string {
	switch b {
	case Population:
		return "population"
	case Sample:
		return "sample"
	default:
		return fmt.Sprintf("basis(%d)", int(b))
	}
}

var (
	// ErrEmptyInput is returned when a statistic is requested over no data.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrInsufficientData is returned when a sample statistic is requested
	// over fewer than two points.
	ErrInsufficientData = errors.New("stats: insufficient data")

	// ErrUnknownBasis is returned for a Basis outside the defined set.
	ErrUnknownBasis = errors.New("stats: unknown basis")
)

// Mean returns the arithmetic mean of values.
func Mean[T Number](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values)), nil
}

// Variance returns the variance of values on the given basis. The sample
// basis needs at least two points; emptiness is checked first regardless
// of basis.
func Variance[T Number](values []T, basis Basis) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	if basis != Population && basis != Sample {
		return 0, ErrUnknownBasis
	}
	if basis == Sample && len(values) < 2 {
		return 0, ErrInsufficientData
	}

	mean, _ := Mean(values)

	var sum float64
	for _, v := range values {
		d := float64(v) - mean
		sum += d * d
	}

	n := float64(len(values))
	if basis == Sample {
		n--
	}
	return sum / n, nil
}

// StdDev returns the standard deviation of values on the given basis.
func StdDev[T Number](values []T, basis Basis) (float64, error) {
	variance, err := Variance(values, basis)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}
