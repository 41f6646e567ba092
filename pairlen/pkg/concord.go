package pairlen

import (
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/iter"
	"github.com/sajari/regression"
)

// Fit is a linear model of subject length against query length.
type Fit struct {
	N int
	Intercept float64
	Slope float64
	R2 float64
}

func (f Fit) String() string {
	return fmt.Sprintf("n\t%v\nintercept\t%v\nslope\t%v\nr2\t%v\n", f.N, FormatFloat(f.Intercept), FormatFloat(f.Slope), FormatFloat(f.R2))
}

// Concordance fits slen ~ qlen over hits with resolved lengths. Pairs of
// perfectly concordant lengths give a slope near 1 and an R2 near 1.
func Concordance(it iter.Iter[Hit]) (Fit, error) {
	h := handle("Concordance: %w")

	var ds regression.DataPoints
	e := it.Iterate(func(hit Hit) error {
		if e := checkLen(hit.Qlen); e != nil {
			return e
		}
		if e := checkLen(hit.Slen); e != nil {
			return e
		}
		ds = append(ds, regression.DataPoint(float64(hit.Slen), []float64{float64(hit.Qlen)}))
		return nil
	})
	if e != nil {
		return Fit{}, h(e)
	}
	if len(ds) == 0 {
		return Fit{}, h(ErrEmptyInput)
	}

	r := new(regression.Regression)
	r.SetObserved("slen")
	r.SetVar(0, "qlen")
	r.Train(ds...)
	if e := r.Run(); e != nil {
		return Fit{}, h(e)
	}

	return Fit{
		N: len(ds),
		Intercept: r.Coeff(0),
		Slope: r.Coeff(1),
		R2: r.R2,
	}, nil
}

func RunConcordance(r io.Reader, w io.Writer, lens *LenTable, args FilterArgs) (Fit, error) {
	var dropped int64
	fit, e := Concordance(JoinAll(ParseHits(r), args.QueryGroup, args.SubjectGroup, lens, args.DropMissing, &dropped))
	if e != nil {
		return fit, e
	}
	_, e = fmt.Fprint(w, fit)
	return fit, e
}
