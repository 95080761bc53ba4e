package lexer

import "go/token"

// Kind identifies the lexical class of a token.
type Kind int

const (
	TokenEOF Kind = iota
	TokenIdent
	TokenInt
	TokenString
	TokenComment

	// keywords
	TokenLet
	TokenMatch
	TokenIs
	TokenIf
	TokenTrue
	TokenFalse

	// punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenComma
	TokenSemi
	TokenDot
	TokenUnderscore
	TokenPipe
	TokenFatArrow // =>

	// operators
	TokenAssign // =
	TokenNot    // !
	TokenMinus  // -
	TokenEq     // ==
	TokenNeq    // !=
	TokenLt     // <
	TokenLte    // <=
	TokenGt     // >
	TokenGte    // >=
	TokenAnd    // &&
	TokenOr     // ||
)

var kindNames = map[Kind]string{
	TokenEOF:        "EOF",
	TokenIdent:      "identifier",
	TokenInt:        "integer",
	TokenString:     "string",
	TokenComment:    "comment",
	TokenLet:        "'let'",
	TokenMatch:      "'match'",
	TokenIs:         "'is'",
	TokenIf:         "'if'",
	TokenTrue:       "'true'",
	TokenFalse:      "'false'",
	TokenLParen:     "'('",
	TokenRParen:     "')'",
	TokenLBrace:     "'{'",
	TokenRBrace:     "'}'",
	TokenComma:      "','",
	TokenSemi:       "';'",
	TokenDot:        "'.'",
	TokenUnderscore: "'_'",
	TokenPipe:       "'|'",
	TokenFatArrow:   "'=>'",
	TokenAssign:     "'='",
	TokenNot:        "'!'",
	TokenMinus:      "'-'",
	TokenEq:         "'=='",
	TokenNeq:        "'!='",
	TokenLt:         "'<'",
	TokenLte:        "'<='",
	TokenGt:         "'>'",
	TokenGte:        "'>='",
	TokenAnd:        "'&&'",
	TokenOr:         "'||'",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

var keywords = map[string]Kind{
	"let":   TokenLet,
	"match": TokenMatch,
	"is":    TokenIs,
	"if":    TokenIf,
	"true":  TokenTrue,
	"false": TokenFalse,
}

// Token is one lexical unit with its source position.
type Token struct {
	Kind  Kind
	Value string
	Pos   token.Position
	End   token.Position
}
