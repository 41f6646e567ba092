package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/jgbaldwinbrown/orthofilt/pairlen/pkg"
)

func main() {
	var j pairlen.Job
	flag.StringVar(&j.LenPath, "l", "", "length table with species, seqid, length columns")
	flag.StringVar(&j.QueryGroup, "q", "", "query species")
	flag.StringVar(&j.SubjectGroup, "s", "", "subject species")
	flag.BoolVar(&j.DropMissing, "drop-missing", false, "skip hits with no length instead of failing")
	flag.Parse()
	if j.LenPath == "" || j.QueryGroup == "" || j.SubjectGroup == "" {
		log.Fatal("missing -l, -q or -s")
	}

	lens, e := pairlen.LoadJobLens(j)
	if e != nil {
		log.Fatal(e)
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()
	if _, e := pairlen.RunConcordance(bufio.NewReader(os.Stdin), stdout, lens, j.FilterArgs); e != nil {
		log.Fatal(e)
	}
}
