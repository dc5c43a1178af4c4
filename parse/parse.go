package parse

import (
	"context"
	"fmt"
	"os"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/slowlang/arith/ast"
)

type (
	// Parser consumes a prefix of s.
	// On error x is nil and rest is s.
	Parser interface {
		Parse(ctx context.Context, s string) (rest string, x ast.Node, err error)
	}

	PartialReadError struct {
		End  int
		Rest string
	}
)

var (
	ErrEmptyInput      = errors.New("unexpected end of input")
	ErrNumber          = errors.New("number expected")
	ErrUnknownOperator = errors.New("unknown operator")
)

// ParseFile parses one expression per non-blank line of the file.
func ParseFile(ctx context.Context, name string) ([]ast.Expr, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return ParseLines(ctx, string(text))
}

func ParseLines(ctx context.Context, text string) (res []ast.Expr, err error) {
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if strings.Trim(line, " ") == "" {
			continue
		}

		x, err := Parse(ctx, line)
		if err != nil {
			return nil, errors.Wrap(err, "line %d", n+1)
		}

		res = append(res, x)
	}

	return res, nil
}

// Parse parses text as a whole expression.
// Anything left after it is reported as PartialReadError.
func Parse(ctx context.Context, text string) (ast.Expr, error) {
	rest, x, err := ParsePartial(ctx, text)
	if err != nil {
		return ast.Expr{}, err
	}

	if rest != "" {
		return ast.Expr{}, PartialReadError{
			End:  len(text) - len(rest),
			Rest: rest,
		}
	}

	return x, nil
}

// ParsePartial parses an expression from the beginning of text
// and returns whatever follows it.
func ParsePartial(ctx context.Context, text string) (rest string, x ast.Expr, err error) {
	rest, n, err := Expr{}.Parse(ctx, text)
	if err != nil {
		return text, ast.Expr{}, errors.Wrap(err, "parse expr")
	}

	x = n.(ast.Expr)

	tlog.V("parse").Printw("expr parsed", "expr", x, "rest", rest, "from", loc.Caller(1))

	return rest, x, nil
}

func (e PartialReadError) Error() string {
	return fmt.Sprintf("partial read: unexpected %q at %d", e.Rest, e.End)
}
