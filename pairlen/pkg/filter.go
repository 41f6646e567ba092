package pairlen

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jgbaldwinbrown/csvh"
	"golang.org/x/sync/errgroup"
)

type FilterArgs struct {
	Fracs Fracs
	Strategy Strategy
	QueryGroup string
	SubjectGroup string
	DropMissing bool
	Annotate bool
}

func (a FilterArgs) Categorizer() Categorizer {
	return Categorizer{Fracs: a.Fracs, Strategy: a.Strategy}
}

func GetFilterArgsFromReader(r io.Reader) (FilterArgs, error) {
	h := handle("GetFilterArgsFromReader: %w")
	var args FilterArgs

	dec := json.NewDecoder(r)
	e := dec.Decode(&args)
	if e != nil { return args, h(e) }
	if e = args.Fracs.Validate(); e != nil { return args, h(e) }

	return args, nil
}

func GetFilterArgsFromPath(path string) (FilterArgs, error) {
	h := handle("GetFilterArgsFromPath: %w")

	r, e := os.Open(path)
	if e != nil { return FilterArgs{}, h(e) }
	defer r.Close()

	return GetFilterArgsFromReader(r)
}

type Counts struct {
	HQ int64
	MQ int64
	LQ int64
	Dropped int64
}

func (c *Counts) Add(cat Category) {
	switch cat {
	case HQ: c.HQ++
	case MQ: c.MQ++
	case LQ: c.LQ++
	}
}

func (c Counts) Total() int64 {
	return c.HQ + c.MQ + c.LQ + c.Dropped
}

func (c Counts) String() string {
	return fmt.Sprintf("hq\t%v\nmq\t%v\nlq\t%v\ndropped\t%v\n", c.HQ, c.MQ, c.LQ, c.Dropped)
}

// RunFilter categorizes every hit read from r in one pass. Hits in hq go to
// hqw, and hits in hq or mq go to mqw. Either writer may be nil.
func RunFilter(r io.Reader, lens *LenTable, hqw, mqw io.Writer, args FilterArgs) (Counts, error) {
	h := handle("RunFilter: %w")
	var counts Counts
	if e := args.Fracs.Validate(); e != nil {
		return counts, h(e)
	}

	joined := JoinAll(ParseHits(r), args.QueryGroup, args.SubjectGroup, lens, args.DropMissing, &counts.Dropped)
	e := CategorizeAll(joined, args.Categorizer()).Iterate(func(hit Hit) error {
		counts.Add(hit.Cat)
		if hqw != nil && KeepHQ(hit.Cat) {
			if e := WriteHit(hqw, hit, args.Annotate); e != nil {
				return e
			}
		}
		if mqw != nil && KeepNotLQ(hit.Cat) {
			if e := WriteHit(mqw, hit, args.Annotate); e != nil {
				return e
			}
		}
		return nil
	})
	if e != nil {
		return counts, h(e)
	}
	return counts, nil
}

// Job is one hit table to filter. Lengths come from LenPath (species, seqid,
// length), or from QSizePath and SSizePath (seqid, length) when LenPath is
// empty. Output paths ending in .gz are gzipped; an empty output path is
// skipped.
type Job struct {
	FilterArgs
	Inpath string
	LenPath string
	QSizePath string
	SSizePath string
	HQOutpath string
	MQOutpath string
}

func LoadJobLens(j Job) (*LenTable, error) {
	if j.LenPath != "" {
		return ReadLenTablePath(j.LenPath)
	}
	if j.QSizePath == "" || j.SSizePath == "" {
		return nil, fmt.Errorf("LoadJobLens: job %v has no length table", j.Inpath)
	}
	t, e := ReadSizeTablePath(NewLenTable(), j.QueryGroup, j.QSizePath)
	if e != nil {
		return nil, e
	}
	// A self comparison reads the same size table twice.
	if j.SubjectGroup == j.QueryGroup && j.SSizePath == j.QSizePath {
		return t, nil
	}
	return ReadSizeTablePath(t, j.SubjectGroup, j.SSizePath)
}

func createMaybe(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, nil
	}
	return csvh.CreateMaybeGz(path)
}

func RunFilterPaths(j Job, lens *LenTable) (counts Counts, err error) {
	r, e := csvh.OpenMaybeGz(j.Inpath)
	if e != nil {
		return counts, e
	}
	defer r.Close()

	hqw, e := createMaybe(j.HQOutpath)
	if e != nil {
		return counts, e
	}
	var hqbw *bufio.Writer
	if hqw != nil {
		defer func() { csvh.DeferE(&err, hqw.Close()) }()
		hqbw = bufio.NewWriter(hqw)
		defer func() { csvh.DeferE(&err, hqbw.Flush()) }()
	}

	mqw, e := createMaybe(j.MQOutpath)
	if e != nil {
		return counts, e
	}
	var mqbw *bufio.Writer
	if mqw != nil {
		defer func() { csvh.DeferE(&err, mqw.Close()) }()
		mqbw = bufio.NewWriter(mqw)
		defer func() { csvh.DeferE(&err, mqbw.Flush()) }()
	}

	return RunFilter(bufio.NewReader(r), lens, writerOrNil(hqbw), writerOrNil(mqbw), j.FilterArgs)
}

// writerOrNil keeps a nil *bufio.Writer from becoming a non-nil io.Writer.
func writerOrNil(w *bufio.Writer) io.Writer {
	if w == nil {
		return nil
	}
	return w
}

func RunJob(ctx context.Context, j Job) (Counts, error) {
	if e := ctx.Err(); e != nil {
		return Counts{}, e
	}
	lens, e := LoadJobLens(j)
	if e != nil {
		return Counts{}, e
	}
	counts, e := RunFilterPaths(j, lens)
	if e != nil {
		return counts, fmt.Errorf("RunJob %v: %w", j.Inpath, e)
	}
	log.Printf("%v: %v hq, %v mq, %v lq, %v dropped\n", j.Inpath, counts.HQ, counts.MQ, counts.LQ, counts.Dropped)
	return counts, nil
}

// RunFilterMulti runs jobs concurrently and returns their counts in job
// order. threads <= 0 means no limit.
func RunFilterMulti(ctx context.Context, threads int, jobs ...Job) ([]Counts, error) {
	out := make([]Counts, len(jobs))
	g, ctx2 := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for i, job := range jobs {
		i := i
		job := job
		g.Go(func() error {
			var e error
			out[i], e = RunJob(ctx2, job)
			return e
		})
	}
	err := g.Wait()
	return out, err
}

func ReadJobs(r io.Reader) ([]Job, error) {
	dec := json.NewDecoder(r)
	var jobs []Job
	for {
		var j Job
		e := dec.Decode(&j)
		if e == io.EOF {
			break
		}
		if e != nil {
			return nil, fmt.Errorf("ReadJobs: %w", e)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
