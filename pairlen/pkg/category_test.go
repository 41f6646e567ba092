package pairlen

import (
	"errors"
	"testing"
)

func TestCategorizeExamples(t *testing.T) {
	f := Fracs{Short: 0.5, Long: 1.5}
	cases := []struct {
		q, s int64
		expect Category
	}{
		{50, 100, MQ},
		{100, 50, MQ},
		{90, 100, HQ},
		{100, 100, HQ},
		{100, 150, HQ},
		{100, 151, MQ},
	}
	for _, c := range cases {
		cat, e := Categorize(c.q, c.s, f)
		if e != nil { panic(e) }
		if cat != c.expect {
			t.Errorf("Categorize(%v, %v) %v != expect %v", c.q, c.s, cat, c.expect)
		}
	}
}

func TestCategorizeBoundsAndRatios(t *testing.T) {
	b, e := PairBounds(50, 100, Fracs{0.5, 1.5})
	if e != nil { panic(e) }
	if b.Low != 25 || b.Up != 150 || b.Diff != 50 {
		t.Errorf("bounds %v != expect {25 150 50}", b)
	}
	if b.LowRatio() != 2 {
		t.Errorf("low ratio %v != 2", b.LowRatio())
	}

	b, e = PairBounds(100, 150, Fracs{0.5, 1.5})
	if e != nil { panic(e) }
	if b.LowRatio() != 1 {
		t.Errorf("low ratio %v != 1", b.LowRatio())
	}
	if cat := ThreeTier.Decide(b); cat != HQ {
		t.Errorf("boundary pair %v != hq", cat)
	}
}

func TestCategorizeLQ(t *testing.T) {
	f := Fracs{Short: 0.5, Long: 0.6}
	cat, e := Categorize(100, 300, f)
	if e != nil { panic(e) }
	if cat != LQ {
		t.Errorf("cat %v != lq", cat)
	}
}

func TestCategorizeIdentical(t *testing.T) {
	for _, f := range []Fracs{{0.5, 1}, {0.5, 1.5}, {1, 1}, {1, 1.5}} {
		for a := int64(2); a < 500; a++ {
			cat, e := Categorize(a, a, f)
			if e != nil { panic(e) }
			if cat != HQ {
				t.Errorf("Categorize(%v, %v, %v) %v != hq", a, a, f, cat)
			}
		}
	}
}

func TestCategorizeSymmetric(t *testing.T) {
	for _, f := range []Fracs{{0.5, 1.5}, {0.3, 0.8}, {0.9, 1.1}} {
		for a := int64(1); a <= 60; a++ {
			for b := int64(1); b <= 60; b++ {
				c1, e1 := Categorize(a, b, f)
				c2, e2 := Categorize(b, a, f)
				if c1 != c2 || (e1 == nil) != (e2 == nil) {
					t.Errorf("Categorize(%v, %v) = %v, %v; Categorize(%v, %v) = %v, %v", a, b, c1, e1, b, a, c2, e2)
				}
			}
		}
	}
}

func TestCategorizeMonotone(t *testing.T) {
	f := Fracs{Short: 0.5, Long: 0.9}
	b := int64(100)

	prev := HQ
	for a := b; a >= 2; a-- {
		cat, e := Categorize(a, b, f)
		if e != nil { panic(e) }
		if Better(cat, prev) {
			t.Errorf("shrinking: Categorize(%v, %v) %v better than previous %v", a, b, cat, prev)
		}
		prev = cat
	}
	if prev != LQ {
		t.Errorf("shortest pair %v != lq", prev)
	}

	prev = HQ
	for a := b; a <= 1200; a++ {
		cat, e := Categorize(a, b, f)
		if e != nil { panic(e) }
		if Better(cat, prev) {
			t.Errorf("growing: Categorize(%v, %v) %v better than previous %v", a, b, cat, prev)
		}
		prev = cat
	}
	if prev != LQ {
		t.Errorf("longest pair %v != lq", prev)
	}
}

func TestCategorizeDivisionByZero(t *testing.T) {
	_, e := Categorize(1, 5, Fracs{0.1, 1.5})
	if !errors.Is(e, ErrDivisionByZero) {
		t.Errorf("err %v is not ErrDivisionByZero", e)
	}
	_, e = Categorize(5, 1, Fracs{0.1, 1.5})
	if !errors.Is(e, ErrDivisionByZero) {
		t.Errorf("err %v is not ErrDivisionByZero", e)
	}
	_, e = Categorize(3, 3, Fracs{0.5, 0.2})
	if !errors.Is(e, ErrDivisionByZero) {
		t.Errorf("err %v is not ErrDivisionByZero", e)
	}
}

func TestCategorizeInvalidLength(t *testing.T) {
	for _, pair := range [][2]int64{{0, 5}, {5, 0}, {-3, 5}} {
		_, e := Categorize(pair[0], pair[1], Fracs{0.5, 1.5})
		if !errors.Is(e, ErrInvalidLength) {
			t.Errorf("Categorize(%v, %v) err %v is not ErrInvalidLength", pair[0], pair[1], e)
		}
	}
}

func TestTwoTier(t *testing.T) {
	c := Categorizer{Fracs: Fracs{0.5, 1.5}, Strategy: TwoTier}
	cat, e := c.Categorize(50, 100)
	if e != nil { panic(e) }
	if cat != LQ {
		t.Errorf("two tier %v != lq", cat)
	}
	cat, e = c.Categorize(90, 100)
	if e != nil { panic(e) }
	if cat != HQ {
		t.Errorf("two tier %v != hq", cat)
	}
}

func TestFracsValidate(t *testing.T) {
	bad := []Fracs{{0, 1.5}, {0.5, 0}, {-1, 1}, {0.5, -2}}
	for _, f := range bad {
		if e := f.Validate(); !errors.Is(e, ErrInvalidFraction) {
			t.Errorf("Validate(%v) err %v is not ErrInvalidFraction", f, e)
		}
	}
	for _, f := range []Fracs{{0.5, 1.5}, {1.2, 0.8}} {
		if e := f.Validate(); e != nil {
			t.Errorf("Validate(%v) err %v", f, e)
		}
	}
}

func TestCategoryText(t *testing.T) {
	for _, c := range []Category{HQ, MQ, LQ} {
		p, e := ParseCategory(c.String())
		if e != nil { panic(e) }
		if p != c {
			t.Errorf("ParseCategory(%v) %v != %v", c.String(), p, c)
		}
	}
	if _, e := ParseCategory("xq"); e == nil {
		t.Errorf("ParseCategory(xq) did not fail")
	}
	if !Better(HQ, MQ) || !Better(MQ, LQ) || Better(LQ, MQ) {
		t.Errorf("bad category order")
	}
}
