package lexer

import (
	"fmt"
	"go/token"
)

// Lexer scans source text and produces tokens. Comments are emitted as
// regular tokens so the parser can collect them for nolint handling.
type Lexer struct {
	filename string
	input    string
	position int
	line     int
	column   int
	tokens   []Token
}

// New returns a new Lexer for the given file contents.
func New(filename, input string) *Lexer {
	return &Lexer{
		filename: filename,
		input:    input,
		line:     1,
		column:   1,
		tokens:   make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens,
// terminated by an EOF token. The first malformed character stops the
// scan with a positional error.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		start := l.pos()
		switch c := l.input[l.position]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()

		case c == '/' && l.peekAt(1) == '/':
			l.lexComment(start)

		case isDigit(c):
			l.lexNumber(start)

		case c == '"':
			if err := l.lexString(start); err != nil {
				return nil, err
			}

		case isIdentStart(c):
			l.lexIdent(start)

		default:
			if err := l.lexOperator(start); err != nil {
				return nil, err
			}
		}
	}

	l.tokens = append(l.tokens, Token{Kind: TokenEOF, Pos: l.pos(), End: l.pos()})
	return l.tokens, nil
}

func (l *Lexer) lexComment(start token.Position) {
	// consume the two slashes, keep the payload
	l.advance()
	l.advance()
	begin := l.position
	for l.position < len(l.input) && l.input[l.position] != '\n' {
		l.advance()
	}
	l.add(TokenComment, l.input[begin:l.position], start)
}

func (l *Lexer) lexNumber(start token.Position) {
	begin := l.position
	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		l.advance()
	}
	l.add(TokenInt, l.input[begin:l.position], start)
}

func (l *Lexer) lexString(start token.Position) error {
	l.advance() // opening quote
	begin := l.position
	for l.position < len(l.input) {
		c := l.input[l.position]
		if c == '\n' {
			break
		}
		if c == '"' {
			value := l.input[begin:l.position]
			l.advance() // closing quote
			l.add(TokenString, value, start)
			return nil
		}
		l.advance()
	}
	return fmt.Errorf("%s: unterminated string literal", start)
}

func (l *Lexer) lexIdent(start token.Position) {
	begin := l.position
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.advance()
	}
	word := l.input[begin:l.position]

	if word == "_" {
		l.add(TokenUnderscore, word, start)
		return
	}
	if kind, ok := keywords[word]; ok {
		l.add(kind, word, start)
		return
	}
	l.add(TokenIdent, word, start)
}

func (l *Lexer) lexOperator(start token.Position) error {
	two := l.peekTwo()
	if kind, ok := twoCharOps[two]; ok {
		l.advance()
		l.advance()
		l.add(kind, two, start)
		return nil
	}

	c := l.input[l.position]
	if kind, ok := oneCharOps[c]; ok {
		l.advance()
		l.add(kind, string(c), start)
		return nil
	}
	return fmt.Errorf("%s: unexpected character %q", start, c)
}

var twoCharOps = map[string]Kind{
	"=>": TokenFatArrow,
	"==": TokenEq,
	"!=": TokenNeq,
	"<=": TokenLte,
	">=": TokenGte,
	"&&": TokenAnd,
	"||": TokenOr,
}

var oneCharOps = map[byte]Kind{
	'(': TokenLParen,
	')': TokenRParen,
	'{': TokenLBrace,
	'}': TokenRBrace,
	',': TokenComma,
	';': TokenSemi,
	'.': TokenDot,
	'|': TokenPipe,
	'=': TokenAssign,
	'!': TokenNot,
	'-': TokenMinus,
	'<': TokenLt,
	'>': TokenGt,
}

func (l *Lexer) add(kind Kind, value string, start token.Position) {
	l.tokens = append(l.tokens, Token{Kind: kind, Value: value, Pos: start, End: l.pos()})
}

func (l *Lexer) pos() token.Position {
	return token.Position{
		Filename: l.filename,
		Offset:   l.position,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() {
	if l.input[l.position] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.position++
}

func (l *Lexer) peekAt(offset int) byte {
	if l.position+offset >= len(l.input) {
		return 0
	}
	return l.input[l.position+offset]
}

func (l *Lexer) peekTwo() string {
	if l.position+2 > len(l.input) {
		return ""
	}
	return l.input[l.position : l.position+2]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
