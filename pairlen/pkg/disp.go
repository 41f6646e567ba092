package pairlen

import (
	"context"
	"fmt"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

type Group struct {
	ID string
	Lengths []int64
}

type Summary struct {
	ID string
	Median float64
	Mad float64
	Size int
}

func toFloats(lens []int64) (stats.Float64Data, error) {
	out := make(stats.Float64Data, 0, len(lens))
	for _, l := range lens {
		if e := checkLen(l); e != nil {
			return nil, e
		}
		out = append(out, float64(l))
	}
	return out, nil
}

// Summarize computes the median and the unscaled median absolute deviation of
// lens. The input is not reordered.
func Summarize(lens []int64) (Summary, error) {
	h := handle("Summarize: %w")
	if len(lens) == 0 {
		return Summary{}, h(ErrEmptyInput)
	}

	data, e := toFloats(lens)
	if e != nil {
		return Summary{}, h(e)
	}

	var s Summary
	s.Size = len(data)
	if s.Median, e = stats.Median(data); e != nil {
		return Summary{}, h(e)
	}
	if s.Mad, e = stats.MedianAbsoluteDeviationPopulation(data); e != nil {
		return Summary{}, h(e)
	}
	return s, nil
}

func SummarizeGroup(g Group) (Summary, error) {
	s, e := Summarize(g.Lengths)
	if e != nil {
		return s, fmt.Errorf("group %v: %w", g.ID, e)
	}
	s.ID = g.ID
	return s, nil
}

// SummarizeAll summarizes every group concurrently and returns the summaries
// in input order. threads <= 0 means no limit.
func SummarizeAll(ctx context.Context, threads int, groups ...Group) ([]Summary, error) {
	out := make([]Summary, len(groups))
	g, ctx2 := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for i, grp := range groups {
		i := i
		grp := grp
		g.Go(func() error {
			if e := ctx2.Err(); e != nil {
				return e
			}
			var e error
			out[i], e = SummarizeGroup(grp)
			return e
		})
	}
	if e := g.Wait(); e != nil {
		return nil, e
	}
	return out, nil
}
