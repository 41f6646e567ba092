package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/jgbaldwinbrown/orthofilt/pairlen/pkg"
)

func main() {
	threads := flag.Int("t", -1, "Threads to use (default infinite).")
	flag.Parse()

	jobs, e := pairlen.ReadJobs(os.Stdin)
	if e != nil {
		log.Fatal(e)
	}

	_, e = pairlen.RunFilterMulti(context.Background(), *threads, jobs...)
	if e != nil {
		log.Fatal(e)
	}
}
