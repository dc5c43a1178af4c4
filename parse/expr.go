package parse

import (
	"context"

	"github.com/slowlang/arith/ast"
)

type (
	Expr struct{}
)

// Parse consumes `<number> <op> <number>` with optional spaces
// between tokens and after the right operand.
// Spaces before the left operand are not skipped.
func (p Expr) Parse(ctx context.Context, s string) (rest string, x ast.Node, err error) {
	r := AllOf{
		Number{},
		Spaced(Op{}, Space),
		Spaced(Number{}, Space),
		Space,
	}

	rest, x, err = r.Parse(ctx, s)
	if err != nil {
		return s, nil, err
	}

	xt := x.([]ast.Node)

	res := ast.Expr{
		Left:  xt[0].(ast.Number),
		Op:    xt[1].(ast.Op),
		Right: xt[2].(ast.Number),
	}

	return rest, res, nil
}
