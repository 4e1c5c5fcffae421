package expr

import (
	"strconv"

	"ezc/internal/token"
	"ezc/internal/types"
)

// Expr is implemented only by the node types of this package.
type Expr interface {
	// Type returns the resolved type of the node.
	Type() types.Type
	// String renders the node as an instruction operand.
	String() string
	exprNode()
}

// Identifier is a named, already declared storage location.
type Identifier struct {
	Name   string
	Typ    types.Type
	Offset uint64 // storage offset within the enclosing frame
}

// Constant is an immediate literal.
type Constant struct {
	Tok token.Token
	Typ types.Type
}

// Temporary is a compiler generated value written by exactly one instruction.
type Temporary struct {
	ID  uint64
	Typ types.Type
}

// Arithmetic is a binary +, -, * or / over numeric operands.
type Arithmetic struct {
	Op    token.Kind
	Typ   types.Type
	Left  Expr
	Right Expr
}

// Unary applies a prefix operator to a numeric operand.
type Unary struct {
	Op      token.Kind
	Typ     types.Type
	Operand Expr
}

// Index reads Array at position Index.
type Index struct {
	Array Identifier
	Index Expr
}

func (Identifier) exprNode() {}
func (Constant) exprNode()   {}
func (Temporary) exprNode()  {}
func (Arithmetic) exprNode() {}
func (Unary) exprNode()      {}
func (Index) exprNode()      {}

func (e Identifier) Type() types.Type { return e.Typ }
func (e Constant) Type() types.Type   { return e.Typ }
func (e Temporary) Type() types.Type  { return e.Typ }
func (e Arithmetic) Type() types.Type { return e.Typ }
func (e Unary) Type() types.Type      { return e.Typ }

// Type of an indexed access is the declared type of the array identifier.
func (e Index) Type() types.Type { return e.Array.Typ }

func (e Identifier) String() string { return e.Name }
func (e Constant) String() string   { return e.Tok.String() }
func (e Temporary) String() string  { return TempName(e.ID) }

// String renders the operand pair "<left> <right>".
func (e Arithmetic) String() string { return e.Left.String() + " " + e.Right.String() }

// String renders only the operand; the operator travels as the opcode.
func (e Unary) String() string { return e.Operand.String() }

// String renders "<index> <array>".
func (e Index) String() string { return e.Index.String() + " " + e.Array.String() }

// TempName formats the operand name of temporary id.
func TempName(id uint64) string {
	return "__t" + strconv.FormatUint(id, 10)
}

// IsAtom reports whether e can appear directly as an instruction operand.
func IsAtom(e Expr) bool {
	switch e.(type) {
	case Identifier, Constant, Temporary:
		return true
	case Arithmetic, Unary, Index:
		return false
	default:
		panic(unknownNode(e))
	}
}
