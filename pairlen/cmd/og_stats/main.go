package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"

	"github.com/jgbaldwinbrown/orthofilt/pairlen/pkg"
)

type Flags struct {
	Inpath string
	Outpath string
	Threads int
}

func main() {
	var f Flags
	flag.StringVar(&f.Inpath, "i", "", "orthogroup table with og_id and lengths columns (default stdin)")
	flag.StringVar(&f.Outpath, "o", "", "path to write og_id, median, mad, size (default stdout)")
	flag.IntVar(&f.Threads, "t", -1, "Threads to use (default infinite).")
	flag.Parse()

	ctx := context.Background()
	if f.Inpath != "" && f.Outpath != "" {
		if e := pairlen.RunStatsPaths(ctx, f.Inpath, f.Outpath, f.Threads); e != nil {
			log.Fatal(e)
		}
		return
	}
	if f.Inpath != "" || f.Outpath != "" {
		log.Fatal("-i and -o must be given together")
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()
	if e := pairlen.RunStats(ctx, bufio.NewReader(os.Stdin), stdout, f.Threads); e != nil {
		log.Fatal(e)
	}
}
