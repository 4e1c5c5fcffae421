package tac

import (
	"fmt"

	"ezc/internal/expr"
	"ezc/internal/trace"
)

// Generator lowers expressions into instructions written to an Emitter.
type Generator struct {
	emit   Emitter
	ids    *IDs
	tracer trace.Tracer
}

// NewGenerator binds a generator to a sink and an id allocator.
func NewGenerator(emit Emitter, ids *IDs) *Generator {
	if ids == nil {
		ids = NewIDs()
	}
	return &Generator{emit: emit, ids: ids, tracer: trace.Nop}
}

// WithTracer reports every emitted instruction to t at node scope.
func (g *Generator) WithTracer(t trace.Tracer) *Generator {
	if t == nil {
		t = trace.Nop
	}
	g.tracer = t
	return g
}

// IDs returns the allocator the generator draws names from.
func (g *Generator) IDs() *IDs { return g.ids }

// Generate reduces the immediate operands of e and rebuilds a node of the
// same shape over them. Atoms are returned unchanged. The array of an Index
// is never reduced.
func (g *Generator) Generate(e expr.Expr) (expr.Expr, error) {
	switch n := e.(type) {
	case expr.Arithmetic:
		left, err := g.Reduce(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := g.Reduce(n.Right)
		if err != nil {
			return nil, err
		}
		return expr.NewArithmetic(n.Op, left, right)
	case expr.Unary:
		operand, err := g.Reduce(n.Operand)
		if err != nil {
			return nil, err
		}
		return expr.NewUnary(n.Op, operand)
	case expr.Index:
		index, err := g.Reduce(n.Index)
		if err != nil {
			return nil, err
		}
		return expr.NewIndex(n.Array, index), nil
	case expr.Identifier, expr.Constant, expr.Temporary:
		return e, nil
	default:
		panic(fmt.Sprintf("tac: unknown expression node %T", e))
	}
}

// Reduce lowers e to an atom. A composite node is generated, stored into a
// fresh temporary by exactly one instruction, and replaced by that
// temporary. Atoms are returned as is and emit nothing.
func (g *Generator) Reduce(e expr.Expr) (expr.Expr, error) {
	if expr.IsAtom(e) {
		return e, nil
	}
	op := opcodeOf(e)
	generated, err := g.Generate(e)
	if err != nil {
		return nil, err
	}
	tmp := expr.Temporary{ID: g.ids.NextTemp(), Typ: generated.Type()}
	if err := g.instr(op + " " + tmp.String() + " " + generated.String()); err != nil {
		return nil, err
	}
	return tmp, nil
}

// Jumping emits the branches that transfer control on the truth of e.
// A label of 0 means the corresponding outcome falls through.
func (g *Generator) Jumping(e expr.Expr, trueLabel, falseLabel uint64) error {
	test := e.String()
	switch {
	case trueLabel == 0 && falseLabel == 0:
		return nil
	case trueLabel == 0:
		return g.instr(OpJmpF + " " + LabelName(falseLabel) + " " + test)
	case falseLabel == 0:
		return g.instr(OpJmpT + " " + LabelName(trueLabel) + " " + test)
	default:
		if err := g.instr(OpJmpT + " " + LabelName(trueLabel) + " " + test); err != nil {
			return err
		}
		return g.instr(OpJmp + " " + LabelName(falseLabel))
	}
}

// EmitLabelLine places label id on its own line as "L<id>:".
func (g *Generator) EmitLabelLine(id uint64) error {
	if err := g.emit.EmitLabel(id); err != nil {
		return err
	}
	return g.emit.WriteLine(":")
}

func (g *Generator) instr(text string) error {
	trace.Point(g.tracer, trace.ScopeNode, "emit", text)
	return g.emit.EmitInstr(text)
}
