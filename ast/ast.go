package ast

import (
	"fmt"

	"tlog.app/go/tlog/tlwire"
)

type (
	Node interface {
	}

	Number int32

	Op int

	Expr struct {
		Left  Number
		Op    Op
		Right Number
	}
)

const (
	_ Op = iota

	Add
	Sub
	Mul
	Div
)

var opSymbols = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
}

// OpFromSymbol returns the operator for a one character symbol.
func OpFromSymbol(s string) (Op, bool) {
	for op, sym := range opSymbols {
		if sym != "" && sym == s {
			return Op(op), true
		}
	}

	return 0, false
}

func (op Op) Valid() bool {
	return op > 0 && int(op) < len(opSymbols)
}

func (op Op) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Op(%d)", int(op))
	}

	return opSymbols[op]
}

func (op Op) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, op.String())
}

func (x Expr) String() string {
	return fmt.Sprintf("%d %v %d", x.Left, x.Op, x.Right)
}
