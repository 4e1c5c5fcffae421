package tac

import (
	"fmt"

	"ezc/internal/expr"
	"ezc/internal/token"
)

// Instruction opcodes understood by the downstream assembler.
const (
	OpAdd  = "add"
	OpSub  = "sub"
	OpMul  = "mul"
	OpDiv  = "div"
	OpInv  = "inv"
	OpIdx  = "idx"
	OpJmp  = "jmp"
	OpJmpT = "jmpt"
	OpJmpF = "jmpf"
)

func arithmeticOpcode(op token.Kind) string {
	switch op {
	case token.Plus:
		return OpAdd
	case token.Minus:
		return OpSub
	case token.Star:
		return OpMul
	case token.Slash:
		return OpDiv
	default:
		// NewArithmetic rejects every other operator.
		panic(fmt.Sprintf("tac: bad arithmetic operator %s", op))
	}
}

// opcodeOf selects the opcode for a composite node.
func opcodeOf(e expr.Expr) string {
	switch n := e.(type) {
	case expr.Arithmetic:
		return arithmeticOpcode(n.Op)
	case expr.Unary:
		return OpInv
	case expr.Index:
		return OpIdx
	default:
		panic(fmt.Sprintf("tac: no opcode for %T", e))
	}
}
