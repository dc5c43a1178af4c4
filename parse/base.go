package parse

import (
	"context"

	"tlog.app/go/errors"

	"github.com/slowlang/arith/ast"
)

type (
	// AllOf runs parsers one after another, each on the rest of the previous one.
	// Result is []ast.Node with one value per parser.
	AllOf []Parser
)

func (p AllOf) Parse(ctx context.Context, s string) (rest string, x ast.Node, err error) {
	rest = s

	res := make([]ast.Node, len(p))

	for j, r := range p {
		rest, res[j], err = r.Parse(ctx, rest)
		if err != nil {
			return s, nil, errors.Wrap(err, "%T (%d)", r, j)
		}
	}

	return rest, res, nil
}
