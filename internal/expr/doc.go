// Package expr holds the typed expression tree consumed by the code generator.
//
// The variant set is closed: Identifier, Constant and Temporary are atoms,
// Arithmetic, Unary and Index are composites. Every composite resolves its
// type when it is constructed, so a tree built through NewArithmetic and
// NewUnary is always well typed. Nodes are immutable values; lowering builds
// new nodes instead of editing old ones.
package expr
