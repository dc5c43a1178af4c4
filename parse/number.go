package parse

import (
	"context"
	"strconv"

	"tlog.app/go/errors"

	"github.com/slowlang/arith/ast"
)

type (
	Number struct{}
)

// Parse consumes leading ASCII digits as ast.Number.
// Spaces after the digits are left in rest.
func (p Number) Parse(ctx context.Context, s string) (rest string, x ast.Node, err error) {
	rest, digits := ExtractDigits(s)
	if digits == "" {
		return s, nil, ErrNumber
	}

	v, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return s, nil, errors.Wrap(ErrNumber, "%q out of range", digits)
	}

	return rest, ast.Number(v), nil
}
