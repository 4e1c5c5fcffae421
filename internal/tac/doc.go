// Package tac lowers expression trees into three-address code.
//
// The output is line oriented text understood by the downstream assembler:
//
//	<TAB><opcode> <operand>...
//
// Operands are identifier names, literal text, or temporaries spelled
// __t<id>. Branch targets are spelled L<id>. A Generator carries no state of
// its own: it writes through an Emitter and draws names from an IDs
// allocator, both owned by the caller. Neither is safe for concurrent use;
// give every compilation unit its own pair.
package tac
