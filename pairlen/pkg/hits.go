package pairlen

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jgbaldwinbrown/iter"
	"github.com/jgbaldwinbrown/lscan/pkg"
)

// Standard columns of blast -outfmt 6. Only the first two are interpreted.
var BlastColumns = []string{
	"qseqid", "sseqid", "pident",
	"length", "mismatch", "gapopen",
	"qstart", "qend", "sstart",
	"send", "evalue", "bitscore",
}

// Hit is one row of a hit table. Fields holds every column, untouched, so
// that it can be written back out exactly.
type Hit struct {
	Qseqid string
	Sseqid string
	Fields []string
	Qlen int64
	Slen int64
	Cat Category
}

var tabSplit = lscan.ByByte('\t')

func ParseHit(line []string) (Hit, error) {
	if len(line) < 2 {
		return Hit{}, fmt.Errorf("ParseHit: line %v too short: %w", line, ErrBadLine)
	}
	fields := make([]string, len(line))
	copy(fields, line)
	return Hit{Qseqid: fields[0], Sseqid: fields[1], Fields: fields}, nil
}

// ParseHits streams a tab-separated hit table. Empty lines are skipped.
func ParseHits(r io.Reader) *iter.Iterator[Hit] {
	return &iter.Iterator[Hit]{Iteratef: func(yield func(Hit) error) error {
		s := bufio.NewScanner(r)
		s.Buffer([]byte{}, 1e9)
		var line []string
		for i := 1; s.Scan(); i++ {
			if s.Text() == "" {
				continue
			}
			line = lscan.SplitByFunc(line, s.Text(), tabSplit)
			hit, e := ParseHit(line)
			if e != nil {
				return fmt.Errorf("ParseHits: line %v: %w", i, e)
			}
			if e := yield(hit); e != nil {
				return e
			}
		}
		return s.Err()
	}}
}

// JoinLens resolves the query and subject lengths of h from t.
func JoinLens(h Hit, qgroup, sgroup string, t *LenTable) (Hit, error) {
	var e error
	if h.Qlen, e = t.Lookup(qgroup, h.Qseqid); e != nil {
		return h, fmt.Errorf("JoinLens: query: %w", e)
	}
	if h.Slen, e = t.Lookup(sgroup, h.Sseqid); e != nil {
		return h, fmt.Errorf("JoinLens: subject: %w", e)
	}
	return h, nil
}

// JoinAll resolves lengths for every hit. With dropMissing, hits lacking
// either length are logged and skipped and dropped is incremented; otherwise
// they stop the iteration with ErrMissingLookup.
func JoinAll(it iter.Iter[Hit], qgroup, sgroup string, t *LenTable, dropMissing bool, dropped *int64) *iter.Iterator[Hit] {
	return &iter.Iterator[Hit]{Iteratef: func(yield func(Hit) error) error {
		return it.Iterate(func(h Hit) error {
			j, e := JoinLens(h, qgroup, sgroup, t)
			if e != nil {
				if !dropMissing {
					return e
				}
				log.Printf("dropping hit %v %v: %v\n", h.Qseqid, h.Sseqid, e)
				if dropped != nil {
					*dropped++
				}
				return nil
			}
			return yield(j)
		})
	}}
}

func CategorizeAll(it iter.Iter[Hit], c Categorizer) *iter.Iterator[Hit] {
	return iter.Transform[Hit, Hit](it, func(h Hit) (Hit, error) {
		var e error
		h.Cat, e = c.Categorize(h.Qlen, h.Slen)
		if e != nil {
			return h, fmt.Errorf("hit %v %v: %w", h.Qseqid, h.Sseqid, e)
		}
		return h, nil
	})
}

// FilterCat keeps hits whose category passes keep, in input order.
func FilterCat(it iter.Iter[Hit], keep func(Category) bool) *iter.Iterator[Hit] {
	return &iter.Iterator[Hit]{Iteratef: func(yield func(Hit) error) error {
		return it.Iterate(func(h Hit) error {
			if !keep(h.Cat) {
				return nil
			}
			return yield(h)
		})
	}}
}

func FilterHQ(it iter.Iter[Hit]) *iter.Iterator[Hit] {
	return FilterCat(it, KeepHQ)
}

func FilterNotLQ(it iter.Iter[Hit]) *iter.Iterator[Hit] {
	return FilterCat(it, KeepNotLQ)
}

func FormatHit(h Hit, annotate bool) string {
	if !annotate {
		return strings.Join(h.Fields, "\t")
	}
	return strings.Join(h.Fields, "\t") + "\t" + h.Cat.String()
}

func WriteHit(w io.Writer, h Hit, annotate bool) error {
	_, e := fmt.Fprintln(w, FormatHit(h, annotate))
	return e
}

func WriteHits(w io.Writer, it iter.Iter[Hit], annotate bool) error {
	return it.Iterate(func(h Hit) error {
		return WriteHit(w, h, annotate)
	})
}
