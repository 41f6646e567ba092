package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/jgbaldwinbrown/orthofilt/pairlen/pkg"
)

func main() {
	twoTier := flag.Bool("two-tier", false, "only report hq and lq")
	flag.Parse()
	if flag.NArg() != 4 {
		log.Fatal("usage: categorize [-two-tier] qlen slen short_frac long_frac")
	}

	qlen, e := strconv.ParseInt(flag.Arg(0), 10, 64)
	if e != nil { log.Fatal(e) }
	slen, e := strconv.ParseInt(flag.Arg(1), 10, 64)
	if e != nil { log.Fatal(e) }
	var f pairlen.Fracs
	f.Short, e = strconv.ParseFloat(flag.Arg(2), 64)
	if e != nil { log.Fatal(e) }
	f.Long, e = strconv.ParseFloat(flag.Arg(3), 64)
	if e != nil { log.Fatal(e) }
	if e = f.Validate(); e != nil { log.Fatal(e) }

	s := pairlen.ThreeTier
	if *twoTier {
		s = pairlen.TwoTier
	}

	b, e := pairlen.PairBounds(qlen, slen, f)
	if e != nil { log.Fatal(e) }
	fmt.Printf("low_bound\t%v\nup_bound\t%v\ndiff\t%v\nlow_ratio\t%v\nup_ratio\t%v\ncategory\t%v\n",
		b.Low, b.Up, b.Diff, b.LowRatio(), b.UpRatio(), s.Decide(b))
}
