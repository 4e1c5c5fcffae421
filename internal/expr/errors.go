package expr

import (
	"fmt"

	"ezc/internal/token"
	"ezc/internal/types"
)

// CoercionError reports operands that have no common numeric type.
type CoercionError struct {
	Op     token.Kind
	Left   types.Type
	Right  types.Type
	Binary bool
}

func (e *CoercionError) Error() string {
	if e.Binary {
		return fmt.Sprintf("cannot coerce %s and %s for operator %s", e.Left, e.Right, e.Op.Spelling())
	}
	return fmt.Sprintf("cannot apply unary operator %s to %s", e.Op.Spelling(), e.Right)
}

// OperatorError reports an operator that has no node of the requested arity.
type OperatorError struct {
	Op    token.Kind
	Arity int
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("operator %s is not a valid %d-ary expression operator", e.Op.Spelling(), e.Arity)
}

func unknownNode(e Expr) string {
	return fmt.Sprintf("expr: unknown node %T", e)
}
