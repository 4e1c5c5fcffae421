// Package testkit holds structural checks shared by tests and fuzz
// harnesses.
package testkit

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"ezc/internal/source"
	"ezc/internal/tac"
	"ezc/internal/token"
)

// CheckTokenInvariants runs a minimal set of invariants on a token stream:
// 1) the stream ends with exactly one EOF
// 2) every span belongs to sf and lies within its content
// 3) spans are ordered and do not overlap
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		return fmt.Errorf("token stream does not end with EOF")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if tok.Kind == token.EOF && i != len(tokens)-1 {
			return fmt.Errorf("EOF at index %d before end of stream", i)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d span %v outside content of %d bytes", i, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous token ending at %d", i, sp, prevEnd)
		}
		prevEnd = sp.End
	}
	return nil
}

var valueOps = map[string]bool{
	tac.OpAdd: true, tac.OpSub: true, tac.OpMul: true, tac.OpDiv: true,
	tac.OpInv: true, tac.OpIdx: true,
}

var jumpOps = map[string]bool{tac.OpJmp: true, tac.OpJmpT: true, tac.OpJmpF: true}

// CheckInstructions verifies emitted lines of one unit: instructions are
// tab-indented with a known opcode, every value instruction writes a fresh
// temporary numbered above all earlier ones, and every temporary operand
// was written before it is read. Label lines "L<n>:" are accepted.
func CheckInstructions(lines []string) error {
	defined := make(map[uint64]bool)
	var next uint64
	for i, line := range lines {
		if isLabelLine(line) {
			continue
		}
		body, ok := strings.CutPrefix(line, "\t")
		if !ok {
			return fmt.Errorf("line %d %q is not indented", i+1, line)
		}
		fields := strings.Fields(body)
		if len(fields) < 2 {
			return fmt.Errorf("line %d %q has no operands", i+1, line)
		}
		op := fields[0]
		operands := fields[1:]
		switch {
		case valueOps[op]:
			dest, ok := tempID(operands[0])
			if !ok {
				return fmt.Errorf("line %d %q does not write a temporary", i+1, line)
			}
			if dest < next {
				return fmt.Errorf("line %d reuses or reorders temporary %s", i+1, operands[0])
			}
			if err := checkReads(i, operands[1:], defined); err != nil {
				return err
			}
			defined[dest] = true
			next = dest + 1
		case jumpOps[op]:
			if !strings.HasPrefix(operands[0], "L") {
				return fmt.Errorf("line %d %q jumps to a non-label", i+1, line)
			}
			if err := checkReads(i, operands[1:], defined); err != nil {
				return err
			}
		default:
			return fmt.Errorf("line %d has unknown opcode %q", i+1, op)
		}
	}
	return nil
}

func checkReads(i int, operands []string, defined map[uint64]bool) error {
	for _, operand := range operands {
		if id, ok := tempID(operand); ok && !defined[id] {
			return fmt.Errorf("line %d reads %s before it is written", i+1, operand)
		}
	}
	return nil
}

func tempID(operand string) (uint64, bool) {
	digits, ok := strings.CutPrefix(operand, "__t")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(digits, 10, 64)
	return id, err == nil
}

func isLabelLine(line string) bool {
	digits, ok := strings.CutPrefix(line, "L")
	if !ok {
		return false
	}
	digits, ok = strings.CutSuffix(digits, ":")
	if !ok {
		return false
	}
	_, err := strconv.ParseUint(digits, 10, 64)
	return err == nil
}
