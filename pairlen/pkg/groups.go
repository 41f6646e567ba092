package pairlen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
)

const (
	GroupIDCol = "og_id"
	LengthsCol = "lengths"
)

func ParseLengths(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		l, e := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if e != nil {
			return nil, fmt.Errorf("ParseLengths: %w", e)
		}
		out = append(out, l)
	}
	return out, nil
}

func colIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("missing column %q in header %v: %w", name, header, ErrBadLine)
}

// ReadGroups reads a tab-separated table whose header names an og_id column
// and a lengths column of comma-separated integers.
func ReadGroups(r io.Reader) ([]Group, error) {
	h := handle("ReadGroups: %w")
	cr := csvh.CsvIn(r)

	header, e := cr.Read()
	if e == io.EOF {
		return nil, nil
	}
	if e != nil {
		return nil, h(e)
	}
	idcol, e := colIndex(header, GroupIDCol)
	if e != nil {
		return nil, h(e)
	}
	lencol, e := colIndex(header, LengthsCol)
	if e != nil {
		return nil, h(e)
	}

	var groups []Group
	for l, e := cr.Read(); e != io.EOF; l, e = cr.Read() {
		if e != nil {
			return nil, h(e)
		}
		if len(l) <= idcol || len(l) <= lencol {
			return nil, h(fmt.Errorf("line %v too short: %w", l, ErrBadLine))
		}
		var g Group
		g.ID = l[idcol]
		if g.Lengths, e = ParseLengths(l[lencol]); e != nil {
			return nil, h(fmt.Errorf("group %v: %w", g.ID, e))
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func WriteSummary(w io.Writer, s Summary) error {
	_, e := fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", s.ID, FormatFloat(s.Median), FormatFloat(s.Mad), s.Size)
	return e
}

func WriteSummaries(w io.Writer, ss ...Summary) error {
	for _, s := range ss {
		if e := WriteSummary(w, s); e != nil {
			return e
		}
	}
	return nil
}

func RunStats(ctx context.Context, r io.Reader, w io.Writer, threads int) error {
	h := handle("RunStats: %w")
	groups, e := ReadGroups(r)
	if e != nil {
		return h(e)
	}
	sums, e := SummarizeAll(ctx, threads, groups...)
	if e != nil {
		return h(e)
	}
	if e := WriteSummaries(w, sums...); e != nil {
		return h(e)
	}
	return nil
}

func RunStatsPaths(ctx context.Context, inpath, outpath string, threads int) (err error) {
	r, e := csvh.OpenMaybeGz(inpath)
	if e != nil {
		return e
	}
	defer r.Close()

	w, e := csvh.CreateMaybeGz(outpath)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()
	bw := bufio.NewWriter(w)
	defer func() { csvh.DeferE(&err, bw.Flush()) }()

	return RunStats(ctx, bufio.NewReader(r), bw, threads)
}
