package pairlen

import (
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fasttsv"
)

// LenTable holds sequence lengths by group (usually species) and then by
// sequence id.
type LenTable struct {
	Groups map[string]map[string]int64
}

func NewLenTable() *LenTable {
	return &LenTable{Groups: map[string]map[string]int64{}}
}

func (t *LenTable) Add(group, id string, length int64) error {
	if e := checkLen(length); e != nil {
		return fmt.Errorf("LenTable.Add: %v %v: %w", group, id, e)
	}
	g, ok := t.Groups[group]
	if !ok {
		g = map[string]int64{}
		t.Groups[group] = g
	}
	if _, dup := g[id]; dup {
		return fmt.Errorf("LenTable.Add: duplicate id %v in group %v: %w", id, group, ErrBadLine)
	}
	g[id] = length
	return nil
}

func (t *LenTable) Lookup(group, id string) (int64, error) {
	l, ok := t.Groups[group][id]
	if !ok {
		return 0, fmt.Errorf("group %v id %v: %w", group, id, ErrMissingLookup)
	}
	return l, nil
}

func (t *LenTable) Len(group string) int {
	return len(t.Groups[group])
}

func blank(line []string) bool {
	return len(line) == 0 || (len(line) == 1 && line[0] == "")
}

// ReadLenTable reads species, seqid, length rows.
func ReadLenTable(r io.Reader) (*LenTable, error) {
	return AppendLenTable(NewLenTable(), r)
}

func AppendLenTable(t *LenTable, r io.Reader) (*LenTable, error) {
	h := handle("ReadLenTable: %w")
	s := fasttsv.NewScanner(r)
	for i := 1; s.Scan(); i++ {
		line := s.Line()
		if blank(line) {
			continue
		}
		if len(line) < 3 {
			return nil, h(fmt.Errorf("line %v %v: %w", i, line, ErrBadLine))
		}
		var group, id string
		var length int64
		if _, e := csvh.Scan(line, &group, &id, &length); e != nil {
			return nil, h(fmt.Errorf("line %v: %w", i, e))
		}
		if e := t.Add(group, id, length); e != nil {
			return nil, h(e)
		}
	}
	return t, nil
}

// ReadSizeTable reads seqid, length rows belonging to a single group.
func ReadSizeTable(t *LenTable, group string, r io.Reader) (*LenTable, error) {
	h := handle("ReadSizeTable: %w")
	s := fasttsv.NewScanner(r)
	for i := 1; s.Scan(); i++ {
		line := s.Line()
		if blank(line) {
			continue
		}
		if len(line) < 2 {
			return nil, h(fmt.Errorf("line %v %v: %w", i, line, ErrBadLine))
		}
		var id string
		var length int64
		if _, e := csvh.Scan(line, &id, &length); e != nil {
			return nil, h(fmt.Errorf("line %v: %w", i, e))
		}
		if e := t.Add(group, id, length); e != nil {
			return nil, h(e)
		}
	}
	return t, nil
}

func ReadLenTablePath(path string) (*LenTable, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, e
	}
	defer r.Close()
	return ReadLenTable(r)
}

func ReadSizeTablePath(t *LenTable, group, path string) (*LenTable, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, e
	}
	defer r.Close()
	return ReadSizeTable(t, group, r)
}
