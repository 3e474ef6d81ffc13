package token

import (
	"fmt"
	"sort"
	"strconv"
)

// A PosDoc tracks newline offsets in a document so byte offsets can be
// resolved to line/column pairs lazily.
type PosDoc struct {
	d []byte
	n []int
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	p.n = append(p.n, i)
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	case N:
		if N != 0 {
			return di, off - p.n[di-1] - 1
		}
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

func (d *PosDoc) end() *Pos {
	return &Pos{
		I: len(d.d),
		D: d,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
