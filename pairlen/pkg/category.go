package pairlen

import (
	"fmt"
	"math"
)

type Category int

const (
	CatUnknown Category = iota
	LQ
	MQ
	HQ
)

func (c Category) String() string {
	switch c {
	case HQ: return "hq"
	case MQ: return "mq"
	case LQ: return "lq"
	default: return "unknown"
	}
}

func ParseCategory(s string) (Category, error) {
	switch s {
	case "hq": return HQ, nil
	case "mq": return MQ, nil
	case "lq": return LQ, nil
	default: return CatUnknown, fmt.Errorf("ParseCategory: unknown category %q", s)
	}
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	var e error
	*c, e = ParseCategory(string(b))
	return e
}

// Better reports whether a is strictly more desirable than b.
func Better(a, b Category) bool {
	return a > b
}

func KeepHQ(c Category) bool {
	return c == HQ
}

func KeepNotLQ(c Category) bool {
	return c == HQ || c == MQ
}

type Strategy int

const (
	ThreeTier Strategy = iota
	TwoTier
)

func (s Strategy) String() string {
	switch s {
	case ThreeTier: return "three_tier"
	case TwoTier: return "two_tier"
	default: return "unknown"
	}
}

func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "three_tier": return ThreeTier, nil
	case "two_tier": return TwoTier, nil
	default: return ThreeTier, fmt.Errorf("ParseStrategy: unknown strategy %q", s)
	}
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(b []byte) error {
	var e error
	*s, e = ParseStrategy(string(b))
	return e
}

// Fracs scales the shorter and longer sequence lengths into the lower and
// upper bounds on their length difference.
type Fracs struct {
	Short float64
	Long float64
}

func checkFrac(name string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%s fraction %v: %w", name, f, ErrInvalidFraction)
	}
	return nil
}

// Validate only requires positive, finite fractions. Short > 1 or Long < 1
// are allowed and just make the bounds stricter.
func (f Fracs) Validate() error {
	if e := checkFrac("short", f.Short); e != nil {
		return e
	}
	return checkFrac("long", f.Long)
}

type Bounds struct {
	Low int64
	Up int64
	Diff int64
}

func (b Bounds) LowRatio() float64 {
	return float64(b.Diff) / float64(b.Low)
}

func (b Bounds) UpRatio() float64 {
	return float64(b.Diff) / float64(b.Up)
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func checkLen(l int64) error {
	if l <= 0 {
		return fmt.Errorf("length %v: %w", l, ErrInvalidLength)
	}
	return nil
}

// PairBounds truncates the shorter length times f.Short and the longer length
// times f.Long toward zero.
func PairBounds(qlen, slen int64, f Fracs) (Bounds, error) {
	if e := checkLen(qlen); e != nil {
		return Bounds{}, e
	}
	if e := checkLen(slen); e != nil {
		return Bounds{}, e
	}

	lo, hi := qlen, slen
	if lo > hi {
		lo, hi = hi, lo
	}

	b := Bounds{
		Low: int64(float64(lo) * f.Short),
		Up: int64(float64(hi) * f.Long),
		Diff: hi - lo,
	}
	if b.Low <= 0 || b.Up <= 0 {
		return b, fmt.Errorf("lengths %v, %v; fractions %v, %v; bounds %v, %v: %w", qlen, slen, f.Short, f.Long, b.Low, b.Up, ErrDivisionByZero)
	}
	return b, nil
}

// Diff <= bound is the same test as diff / bound <= 1 without the float
// division.
func (b Bounds) lowOk() bool {
	return b.Diff <= b.Low
}

func (b Bounds) upOk() bool {
	return b.Diff <= b.Up
}

func (s Strategy) Decide(b Bounds) Category {
	if !b.upOk() {
		return LQ
	}
	if b.lowOk() {
		return HQ
	}
	if s == TwoTier {
		return LQ
	}
	return MQ
}

func Categorize(qlen, slen int64, f Fracs) (Category, error) {
	return ThreeTier.Categorize(qlen, slen, f)
}

func (s Strategy) Categorize(qlen, slen int64, f Fracs) (Category, error) {
	b, e := PairBounds(qlen, slen, f)
	if e != nil {
		return CatUnknown, fmt.Errorf("Categorize: %w", e)
	}
	return s.Decide(b), nil
}

type Categorizer struct {
	Fracs
	Strategy Strategy
}

func (c Categorizer) Categorize(qlen, slen int64) (Category, error) {
	return c.Strategy.Categorize(qlen, slen, c.Fracs)
}
