package galaxy

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfRange is returned when a RangeValue is set outside its bounds.
var ErrOutOfRange = errors.New("galaxy: value out of range")

// RangeValue is a bounded, user adjustable scalar.
type RangeValue struct {
	Lower         float64
	Upper         float64
	Current       float64
	DecimalPlaces int
	Percentage    bool // display Current*100 with a % suffix
}

// NewRangeValue validates the bounds and the initial value.
func NewRangeValue(lower, upper, current float64, places int, percentage bool) (RangeValue, error) {
	if lower > upper {
		return RangeValue{}, fmt.Errorf("galaxy: range lower %v above upper %v", lower, upper)
	}
	r := RangeValue{Lower: lower, Upper: upper, DecimalPlaces: places, Percentage: percentage}
	if err := r.Set(current); err != nil {
		return RangeValue{}, err
	}
	return r, nil
}

func mustRange(lower, upper, current float64, places int, percentage bool) RangeValue {
	r, err := NewRangeValue(lower, upper, current, places, percentage)
	if err != nil {
		panic(err)
	}
	return r
}

// Set updates Current, rejecting values outside [Lower, Upper].
func (r *RangeValue) Set(v float64) error {
	if v < r.Lower || v > r.Upper || v != v {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, v, r.Lower, r.Upper)
	}
	r.Current = v
	return nil
}

// Step moves Current by delta and clamps to the bounds.
func (r *RangeValue) Step(delta float64) {
	r.Current = min(max(r.Current+delta, r.Lower), r.Upper)
}

// Int returns Current truncated to an int.
func (r RangeValue) Int() int { return int(r.Current) }

// Fraction returns the position of Current within the bounds, in [0, 1].
func (r RangeValue) Fraction() float64 {
	if r.Upper == r.Lower {
		return 0
	}
	return (r.Current - r.Lower) / (r.Upper - r.Lower)
}

func (r RangeValue) String() string {
	if r.Percentage {
		return strconv.FormatFloat(r.Current*100, 'f', r.DecimalPlaces, 64) + "%"
	}
	return strconv.FormatFloat(r.Current, 'f', r.DecimalPlaces, 64)
}
