package token

import "fmt"

// Token represents a single classified unit of source text.
// Line is the 1-based line of the token's first character.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   uint32
}

// IsLiteral reports whether the token is an identifier, string, or number literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Ident, StringLit, NumberLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LParen, RParen, LBrace, RBrace, Comma, Dot, Minus, Plus, Semicolon,
		Slash, Star, Percent, Bang, BangEq, Assign, EqEq, Lt, LtEq, Gt, GtEq:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwAnd, KwAssert, KwClass, KwElse, KwFalse, KwFun, KwFor, KwIf, KwNil,
		KwOr, KwPrint, KwReturn, KwSuper, KwThis, KwTrue, KwVar, KwWhile:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

func (t Token) String() string {
	if t.Lexeme == "" {
		return fmt.Sprintf("%s @%d", t.Kind, t.Line)
	}
	return fmt.Sprintf("%s %q @%d", t.Kind, t.Lexeme, t.Line)
}
