package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jgbaldwinbrown/orthofilt/pairlen/pkg"
)

type Flags struct {
	pairlen.Job
	ArgPath string
	TwoTier bool
}

func GetFlags() (Flags, error) {
	var f Flags
	flag.StringVar(&f.Inpath, "i", "", "hit table to filter (.gz ok; default stdin)")
	flag.StringVar(&f.LenPath, "l", "", "length table with species, seqid, length columns")
	flag.StringVar(&f.QSizePath, "qs", "", "query size table with seqid, length columns (instead of -l)")
	flag.StringVar(&f.SSizePath, "ss", "", "subject size table with seqid, length columns (instead of -l)")
	flag.StringVar(&f.QueryGroup, "q", "", "query species")
	flag.StringVar(&f.SubjectGroup, "s", "", "subject species")
	flag.Float64Var(&f.Fracs.Short, "sf", 0, "short fraction")
	flag.Float64Var(&f.Fracs.Long, "lf", 0, "long fraction")
	flag.StringVar(&f.HQOutpath, "hq", "", "path to write hq hits (default stdout if -mq is also empty)")
	flag.StringVar(&f.MQOutpath, "mq", "", "path to write hq and mq hits")
	flag.BoolVar(&f.TwoTier, "two-tier", false, "only keep hq and lq tiers")
	flag.BoolVar(&f.DropMissing, "drop-missing", false, "drop hits with no length instead of failing")
	flag.BoolVar(&f.Annotate, "annotate", false, "append the category as a final column")
	flag.StringVar(&f.ArgPath, "a", "", "JSON filter argument file (overrides -sf, -lf, -q, -s and tier flags)")
	flag.Parse()

	if f.ArgPath != "" {
		args, e := pairlen.GetFilterArgsFromPath(f.ArgPath)
		if e != nil {
			return f, e
		}
		f.FilterArgs = args
	} else if f.TwoTier {
		f.Strategy = pairlen.TwoTier
	}

	if f.LenPath == "" && (f.QSizePath == "" || f.SSizePath == "") {
		return f, fmt.Errorf("missing -l, or -qs and -ss")
	}
	if f.QueryGroup == "" {
		return f, fmt.Errorf("missing -q")
	}
	if f.SubjectGroup == "" {
		return f, fmt.Errorf("missing -s")
	}
	if e := f.Fracs.Validate(); e != nil {
		return f, fmt.Errorf("bad -sf or -lf: %w", e)
	}
	return f, nil
}

func main() {
	f, e := GetFlags()
	if e != nil {
		log.Fatal(e)
	}

	lens, e := pairlen.LoadJobLens(f.Job)
	if e != nil {
		log.Fatal(e)
	}

	var counts pairlen.Counts
	if f.Inpath != "" && (f.HQOutpath != "" || f.MQOutpath != "") {
		counts, e = pairlen.RunFilterPaths(f.Job, lens)
	} else {
		stdout := bufio.NewWriter(os.Stdout)
		defer stdout.Flush()
		counts, e = runStdio(f, lens, stdout)
	}
	if e != nil {
		log.Fatal(e)
	}
	fmt.Fprint(os.Stderr, counts)
}

func runStdio(f Flags, lens *pairlen.LenTable, stdout *bufio.Writer) (pairlen.Counts, error) {
	if f.Inpath != "" {
		return pairlen.Counts{}, fmt.Errorf("-i needs -hq or -mq")
	}
	if f.HQOutpath != "" || f.MQOutpath != "" {
		return pairlen.Counts{}, fmt.Errorf("-hq and -mq need -i")
	}
	return pairlen.RunFilter(bufio.NewReader(os.Stdin), lens, stdout, nil, f.FilterArgs)
}
