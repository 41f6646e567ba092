package pairlen

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

const groupsIn = `og_id	species	lengths
OG0000001	3	10,10,10
OG0000002	4	1,2,3,4
OG0000003	5	5, 1, 9, 3, 7
OG0000004	1	120
`

const groupsExpect = `OG0000001	10	0	3
OG0000002	2.5	1	4
OG0000003	5	2	5
OG0000004	120	0	1
`

func TestRunStats(t *testing.T) {
	for _, threads := range []int{-1, 1, 3} {
		var b strings.Builder
		e := RunStats(context.Background(), strings.NewReader(groupsIn), &b, threads)
		if e != nil { panic(e) }

		if out := b.String(); out != groupsExpect {
			t.Errorf("threads %v: out %v != expect %v", threads, out, groupsExpect)
		}
	}
}

func TestRunStatsPaths(t *testing.T) {
	dir := t.TempDir()
	inpath := filepath.Join(dir, "og_lengths.tsv.gz")
	writeGz(inpath, groupsIn)
	outpath := filepath.Join(dir, "og_stats.tsv")

	if e := RunStatsPaths(context.Background(), inpath, outpath, 2); e != nil {
		panic(e)
	}
	if out := readMaybeGz(outpath); out != groupsExpect {
		t.Errorf("out %v != expect %v", out, groupsExpect)
	}
}

func TestReadGroupsErrors(t *testing.T) {
	if _, e := ReadGroups(strings.NewReader("id\tlengths\nOG1\t1,2\n")); !errors.Is(e, ErrBadLine) {
		t.Errorf("missing og_id column err %v is not ErrBadLine", e)
	}
	if _, e := ReadGroups(strings.NewReader("og_id\tlengths\nOG1\t1,x\n")); e == nil {
		t.Errorf("bad length did not fail")
	}

	var b strings.Builder
	e := RunStats(context.Background(), strings.NewReader("og_id\tlengths\nOG1\t\n"), &b, 1)
	if !errors.Is(e, ErrEmptyInput) {
		t.Errorf("empty group err %v is not ErrEmptyInput", e)
	}
}

func TestParseLengths(t *testing.T) {
	ls, e := ParseLengths("3,1, 2")
	if e != nil { panic(e) }
	if len(ls) != 3 || ls[0] != 3 || ls[1] != 1 || ls[2] != 2 {
		t.Errorf("ParseLengths %v != [3 1 2]", ls)
	}
}
