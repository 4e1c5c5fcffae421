package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident
	KwLet   // let
	KwTrue  // true
	KwFalse // false

	IntLit
	FloatLit
	CharLit

	Plus  // +
	Minus // -
	Star  // *
	Slash // /
	Tilde // ~

	Colon     // :
	Semicolon // ;
	Comma     // ,
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwLet:     "KwLet",
	KwTrue:    "KwTrue",
	KwFalse:   "KwFalse",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	CharLit:   "CharLit",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Tilde:     "Tilde",
	Colon:     "Colon",
	Semicolon: "Semicolon",
	Comma:     "Comma",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

var kindSpelling = map[Kind]string{
	KwLet:     "let",
	KwTrue:    "true",
	KwFalse:   "false",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Tilde:     "~",
	Colon:     ":",
	Semicolon: ";",
	Comma:     ",",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
}

// Spelling returns how the token is written in source, or a descriptive
// placeholder for kinds without fixed text. Used in diagnostics.
func (k Kind) Spelling() string {
	if s, ok := kindSpelling[k]; ok {
		return "'" + s + "'"
	}
	switch k {
	case Ident:
		return "identifier"
	case IntLit:
		return "integer literal"
	case FloatLit:
		return "float literal"
	case CharLit:
		return "char literal"
	case EOF:
		return "end of file"
	default:
		return k.String()
	}
}
