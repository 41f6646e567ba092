package pairlen

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/jgbaldwinbrown/iter"
)

func near(a, b float64) bool {
	return math.Abs(a - b) < 1e-6
}

func TestConcordance(t *testing.T) {
	hits := []Hit{
		{Qseqid: "a", Sseqid: "w", Qlen: 10, Slen: 21},
		{Qseqid: "b", Sseqid: "x", Qlen: 20, Slen: 41},
		{Qseqid: "c", Sseqid: "y", Qlen: 30, Slen: 61},
		{Qseqid: "d", Sseqid: "z", Qlen: 40, Slen: 81},
	}
	fit, e := Concordance(iter.SliceIter[Hit](hits))
	if e != nil { panic(e) }

	if fit.N != 4 || !near(fit.Slope, 2) || !near(fit.Intercept, 1) || !near(fit.R2, 1) {
		t.Errorf("fit %v != {4 1 2 1}", fit)
	}
}

func TestConcordanceErrors(t *testing.T) {
	if _, e := Concordance(iter.SliceIter[Hit](nil)); !errors.Is(e, ErrEmptyInput) {
		t.Errorf("err %v is not ErrEmptyInput", e)
	}
	hits := []Hit{{Qseqid: "a", Sseqid: "b", Qlen: 10}}
	if _, e := Concordance(iter.SliceIter[Hit](hits)); !errors.Is(e, ErrInvalidLength) {
		t.Errorf("err %v is not ErrInvalidLength", e)
	}
}

func TestRunConcordance(t *testing.T) {
	args := FilterArgs{QueryGroup: "sp1", SubjectGroup: "sp2"}
	var b strings.Builder
	fit, e := RunConcordance(strings.NewReader(hitsIn), &b, testLens(), args)
	if e != nil { panic(e) }
	if fit.N != 4 {
		t.Errorf("fit.N %v != 4", fit.N)
	}
	if !strings.HasPrefix(b.String(), "n\t4\n") {
		t.Errorf("out %v does not start with n\t4", b.String())
	}
}
