package fuzztests

import (
	"testing"

	"ezc/internal/diag"
	"ezc/internal/lexer"
	"ezc/internal/source"
	"ezc/internal/testkit"
)

const maxFuzzInput = 1 << 16

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.ez", clampInput(input)))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if err := testkit.CheckTokenInvariants(lx.All(), file); err != nil {
			t.Fatalf("token invariants: %v\ninput: %q", err, input)
		}
	})
}
