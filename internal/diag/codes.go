package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo             Code = 1000
	LexUnknownChar      Code = 1001
	LexBadNumber        Code = 1002
	LexUnterminatedChar Code = 1003
	LexTokenTooLong     Code = 1004
	LexEmptyChar        Code = 1005

	// syntax
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynExpectSemicolon Code = 2002
	SynExpectIdent     Code = 2003
	SynExpectType      Code = 2004
	SynExpectColon     Code = 2005
	SynUnclosedParen   Code = 2006
	SynUnclosedBrace   Code = 2007
	SynUnclosedBracket Code = 2008
	SynExpectExpr      Code = 2009

	// semantic
	SemaInfo          Code = 3000
	SemaUndeclared    Code = 3001
	SemaNotArray      Code = 3002
	SemaCoercion      Code = 3003
	SemaBadArraySize  Code = 3004
	SemaRedeclared    Code = 3005
	SemaBadOperator   Code = 3006
	SemaFrameTooLarge Code = 3007

	// io
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002

	// project
	ProjInfo        Code = 5000
	ProjBadManifest Code = 5001
	ProjMissingName Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown error",
	LexInfo:             "Lexical information",
	LexUnknownChar:      "Unknown character",
	LexBadNumber:        "Malformed number literal",
	LexUnterminatedChar: "Unterminated char literal",
	LexTokenTooLong:     "Token too long",
	LexEmptyChar:        "Empty char literal",
	SynInfo:             "Syntax information",
	SynUnexpectedToken:  "Unexpected token",
	SynExpectSemicolon:  "Expected semicolon",
	SynExpectIdent:      "Expected identifier",
	SynExpectType:       "Expected type",
	SynExpectColon:      "Expected ':'",
	SynUnclosedParen:    "Unclosed parenthesis",
	SynUnclosedBrace:    "Unclosed block",
	SynUnclosedBracket:  "Unclosed bracket",
	SynExpectExpr:       "Expected expression",
	SemaInfo:            "Semantic information",
	SemaUndeclared:      "Undeclared identifier",
	SemaNotArray:        "Indexed identifier is not an array",
	SemaCoercion:        "Operand types cannot be coerced",
	SemaBadArraySize:    "Invalid array or string size",
	SemaRedeclared:      "Identifier redeclared in the same block",
	SemaBadOperator:     "Operator not supported",
	SemaFrameTooLarge:   "Block frame exceeds addressable size",
	IOLoadFileError:     "I/O load file error",
	IOWriteError:        "I/O write error",
	ProjInfo:            "Project information",
	ProjBadManifest:     "Invalid ez.toml",
	ProjMissingName:     "Package name is missing",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
