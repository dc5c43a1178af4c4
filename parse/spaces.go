package parse

import (
	"context"

	"tlog.app/go/errors"

	"github.com/slowlang/arith/ast"
)

type (
	Spaces uint64

	Spacer struct {
		Spaces Spaces
		Of     Parser
	}
)

var (
	Space    = NewSpaces(' ')
	SpaceTab = NewSpaces(' ', '\t')
	SpaceAll = NewSpaces(' ', '\t', '\r', '\n')
)

func NewSpaces(skip ...byte) (ss Spaces) {
	for _, q := range skip {
		if q >= 64 {
			panic("too high char code")
		}

		ss |= 1 << q
	}

	return
}

func (s Spaces) Is(r rune) bool {
	return r >= 0 && r < 64 && s&(1<<r) != 0
}

func (s Spaces) Extract(str string) (rest, match string) {
	return TakeWhile(s.Is, str)
}

// Parse skips spaces. It never fails, x is the skipped run.
func (s Spaces) Parse(ctx context.Context, str string) (rest string, x ast.Node, err error) {
	rest, match := s.Extract(str)

	return rest, match, nil
}

func Spaced(p Parser, ss Spaces) Spacer {
	return Spacer{
		Spaces: ss,
		Of:     p,
	}
}

func SpacedBy(p Parser, skip ...byte) Spacer {
	return Spacer{
		Spaces: NewSpaces(skip...),
		Of:     p,
	}
}

func (p Spacer) Parse(ctx context.Context, s string) (rest string, x ast.Node, err error) {
	vs, _ := p.Spaces.Extract(s)

	rest, x, err = p.Of.Parse(ctx, vs)
	if err != nil {
		return s, nil, errors.Wrap(err, "%T", p.Of)
	}

	return rest, x, nil
}
