package testkit

import (
	"strings"
	"testing"

	"ezc/internal/lexer"
	"ezc/internal/source"
	"ezc/internal/token"
)

func TestCheckTokenInvariants(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.ez", []byte("let x: [2]i32; x[1] * 2.5;")))
	tokens := lexer.New(file, lexer.Options{}).All()
	if err := CheckTokenInvariants(tokens, file); err != nil {
		t.Fatalf("lexer output must satisfy invariants: %v", err)
	}

	swapped := append([]token.Token(nil), tokens...)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	if err := CheckTokenInvariants(swapped, file); err == nil {
		t.Fatal("out of order spans must be rejected")
	}
	if err := CheckTokenInvariants(tokens[:len(tokens)-1], file); err == nil {
		t.Fatal("missing EOF must be rejected")
	}
}

func TestCheckInstructions(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantErr string
	}{
		{name: "empty"},
		{name: "chain", lines: []string{"\tadd __t0 a b", "\tmul __t1 __t0 c", "\tinv __t2 __t1"}},
		{name: "index", lines: []string{"\tidx __t0 1 v", "\tadd __t1 __t0 ' '"}},
		{name: "jumps", lines: []string{"\tjmpt L1 x", "\tjmp L2", "L1:"}},
		{name: "unindented", lines: []string{"add __t0 a b"}, wantErr: "not indented"},
		{name: "reuse", lines: []string{"\tadd __t1 a b", "\tadd __t0 a b"}, wantErr: "reuses"},
		{name: "read before write", lines: []string{"\tadd __t0 __t3 b"}, wantErr: "before it is written"},
		{name: "unknown", lines: []string{"\tmov __t0 a"}, wantErr: "unknown opcode"},
		{name: "dest", lines: []string{"\tadd a b c"}, wantErr: "does not write"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckInstructions(tt.lines)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("want error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
