package parse

import (
	"context"

	"tlog.app/go/errors"

	"github.com/slowlang/arith/ast"
)

type (
	Op struct{}
)

func (p Op) Parse(ctx context.Context, s string) (rest string, x ast.Node, err error) {
	rest, sym, err := ExtractOperator(s)
	if err != nil {
		return s, nil, err
	}

	op, ok := ast.OpFromSymbol(sym)
	if !ok {
		return s, nil, errors.Wrap(ErrUnknownOperator, "%q", sym)
	}

	return rest, op, nil
}
