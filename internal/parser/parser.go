// Package parser builds a mast.File from source text.
//
// The grammar is deliberately small. A file is a sequence of items:
//
//	item    = "let" IDENT "=" expr ";" | expr ";"
//
// Expressions support literals, identifiers, calls, method calls, unary
// and binary operators, parentheses, match expressions, and the pattern
// test form `expr is pattern [if guard]`. Patterns support `_`, bindings,
// literals, variants with optional payload, and or-patterns. An identifier
// in pattern position is a variant when it starts with an upper-case
// letter or carries a payload, and a binding otherwise.
package parser

import (
	"fmt"

	"matchlint/internal/lexer"
	"matchlint/internal/mast"
)

// Parser consumes tokens produced by the lexer and builds a mast.File.
type Parser struct {
	tokens   []lexer.Token
	current  int
	comments []mast.Comment
}

// ParseFile tokenizes and parses one source file.
func ParseFile(filename string, src []byte) (*mast.File, error) {
	tokens, err := lexer.New(filename, string(src)).Tokenize()
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse(filename)
}

// New creates a Parser over a token stream. Comment tokens are filtered
// out of the stream and collected for the resulting file.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: make([]lexer.Token, 0, len(tokens))}
	for _, tok := range tokens {
		if tok.Kind == lexer.TokenComment {
			p.comments = append(p.comments, mast.Comment{Text: tok.Value, Line: tok.Pos.Line})
			continue
		}
		p.tokens = append(p.tokens, tok)
	}
	return p
}

// Parse processes all tokens and builds the file.
func (p *Parser) Parse(filename string) (*mast.File, error) {
	file := &mast.File{Filename: filename, Comments: p.comments}

	for !p.at(lexer.TokenEOF) {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		file.Items = append(file.Items, item)
	}
	return file, nil
}

func (p *Parser) parseItem() (mast.Item, error) {
	start := p.peek().Pos

	if p.at(lexer.TokenLet) {
		p.next()
		name, err := p.expect(lexer.TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenAssign); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(lexer.TokenSemi)
		if err != nil {
			return nil, err
		}
		return &mast.LetItem{
			Name:  name.Value,
			Value: value,
			Span:  mast.Span{Start: start, End: end.End},
		}, nil
	}

	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(lexer.TokenSemi)
	if err != nil {
		return nil, err
	}
	return &mast.ExprItem{X: x, Span: mast.Span{Start: start, End: end.End}}, nil
}

// parseExpr parses a full expression. The pattern test form binds loosest:
// `a == b is P` parses as `(a == b) is P`. A guard is a plain boolean
// expression; a nested `is` inside a guard needs parentheses.
func (p *Parser) parseExpr() (mast.Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if !p.at(lexer.TokenIs) {
		return left, nil
	}
	p.next()

	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	var guard mast.Expr
	if p.at(lexer.TokenIf) {
		p.next()
		guard, err = p.parseOr()
		if err != nil {
			return nil, err
		}
	}
	return mast.IsExpr{Value: left, Pattern: pattern, Guard: guard}, nil
}

func (p *Parser) parseOr() (mast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.TokenOr) {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = mast.BinaryExpr{Op: mast.OpOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (mast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.TokenAnd) {
		p.next()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = mast.BinaryExpr{Op: mast.OpAnd, Left: left, Right: right}
	}
	return left, nil
}

var comparisonOps = map[lexer.Kind]mast.BinaryOp{
	lexer.TokenEq:  mast.OpEq,
	lexer.TokenNeq: mast.OpNeq,
	lexer.TokenLt:  mast.OpLt,
	lexer.TokenLte: mast.OpLte,
	lexer.TokenGt:  mast.OpGt,
	lexer.TokenGte: mast.OpGte,
}

func (p *Parser) parseComparison() (mast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if op, ok := comparisonOps[p.peek().Kind]; ok {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return mast.BinaryExpr{Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseUnary() (mast.Expr, error) {
	switch p.peek().Kind {
	case lexer.TokenNot:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return mast.UnaryExpr{Op: mast.OpNot, Operand: operand}, nil
	case lexer.TokenMinus:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return mast.UnaryExpr{Op: mast.OpNeg, Operand: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any number of
// method calls.
func (p *Parser) parsePostfix() (mast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.at(lexer.TokenDot) {
		p.next()
		name, err := p.expect(lexer.TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenLParen); err != nil {
			return nil, err
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		expr = mast.MethodCallExpr{Recv: expr, Name: name.Value, Args: args}
	}
	return expr, nil
}

func (p *Parser) parsePrimary() (mast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.TokenTrue:
		p.next()
		return mast.Bool(true), nil
	case lexer.TokenFalse:
		p.next()
		return mast.Bool(false), nil
	case lexer.TokenInt:
		p.next()
		return mast.Int(tok.Value), nil
	case lexer.TokenString:
		p.next()
		return mast.Str(tok.Value), nil

	case lexer.TokenIdent:
		p.next()
		if p.at(lexer.TokenLParen) {
			p.next()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return mast.CallExpr{Func: tok.Value, Args: args}, nil
		}
		return mast.IdentExpr{Name: tok.Value}, nil

	case lexer.TokenLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return mast.ParenExpr{Inner: inner}, nil

	case lexer.TokenMatch:
		return p.parseMatch()
	}
	return nil, fmt.Errorf("%s: expected expression, found %s", tok.Pos, tok.Kind)
}

// parseArgs parses a comma separated argument list up to and including
// the closing parenthesis. The opening parenthesis is already consumed.
func (p *Parser) parseArgs() ([]mast.Expr, error) {
	var args []mast.Expr
	if p.at(lexer.TokenRParen) {
		p.next()
		return args, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.at(lexer.TokenComma) {
			p.next()
			continue
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return args, nil
	}
}

func (p *Parser) parseMatch() (mast.Expr, error) {
	start, err := p.expect(lexer.TokenMatch)
	if err != nil {
		return nil, err
	}
	scrutinee, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return nil, err
	}

	var arms []mast.Arm
	for !p.at(lexer.TokenRBrace) {
		arm, err := p.parseArm()
		if err != nil {
			return nil, err
		}
		arms = append(arms, arm)

		// trailing comma allowed
		if p.at(lexer.TokenComma) {
			p.next()
			continue
		}
		break
	}
	end, err := p.expect(lexer.TokenRBrace)
	if err != nil {
		return nil, err
	}

	return &mast.MatchExpr{
		Scrutinee: scrutinee,
		Arms:      arms,
		Span:      mast.Span{Start: start.Pos, End: end.End},
	}, nil
}

func (p *Parser) parseArm() (mast.Arm, error) {
	start := p.peek().Pos

	pattern, err := p.parsePattern()
	if err != nil {
		return mast.Arm{}, err
	}

	var guard mast.Expr
	if p.at(lexer.TokenIf) {
		p.next()
		guard, err = p.parseOr()
		if err != nil {
			return mast.Arm{}, err
		}
	}

	if _, err := p.expect(lexer.TokenFatArrow); err != nil {
		return mast.Arm{}, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return mast.Arm{}, err
	}

	return mast.Arm{
		Pattern: pattern,
		Guard:   guard,
		Body:    body,
		Span:    mast.Span{Start: start, End: p.prev().End},
	}, nil
}

// parsePattern parses an or-pattern: one or more alternatives joined by '|'.
func (p *Parser) parsePattern() (mast.Pattern, error) {
	first, err := p.parseSinglePattern()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.TokenPipe) {
		return first, nil
	}

	alts := []mast.Pattern{first}
	for p.at(lexer.TokenPipe) {
		p.next()
		alt, err := p.parseSinglePattern()
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)
	}
	return mast.OrPattern{Alts: alts}, nil
}

func (p *Parser) parseSinglePattern() (mast.Pattern, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.TokenUnderscore:
		p.next()
		return mast.WildcardPattern{}, nil

	case lexer.TokenTrue:
		p.next()
		return mast.LiteralPattern{Val: mast.BoolValue{Val: true}}, nil
	case lexer.TokenFalse:
		p.next()
		return mast.LiteralPattern{Val: mast.BoolValue{Val: false}}, nil
	case lexer.TokenInt:
		p.next()
		return mast.LiteralPattern{Val: mast.IntValue{Text: tok.Value}}, nil
	case lexer.TokenMinus:
		p.next()
		num, err := p.expect(lexer.TokenInt)
		if err != nil {
			return nil, err
		}
		return mast.LiteralPattern{Val: mast.IntValue{Text: "-" + num.Value}}, nil
	case lexer.TokenString:
		p.next()
		return mast.LiteralPattern{Val: mast.StringValue{Val: tok.Value}}, nil

	case lexer.TokenIdent:
		p.next()
		if p.at(lexer.TokenLParen) {
			p.next()
			args, err := p.parsePatternArgs()
			if err != nil {
				return nil, err
			}
			return mast.VariantPattern{Name: tok.Value, Args: args}, nil
		}
		if isUpper(tok.Value[0]) {
			return mast.VariantPattern{Name: tok.Value}, nil
		}
		return mast.BindingPattern{Name: tok.Value}, nil
	}
	return nil, fmt.Errorf("%s: expected pattern, found %s", tok.Pos, tok.Kind)
}

// parsePatternArgs parses a variant payload up to and including the
// closing parenthesis. The opening parenthesis is already consumed.
// The result is never nil, so `Some()` stays distinct from bare `Some`.
func (p *Parser) parsePatternArgs() ([]mast.Pattern, error) {
	args := make([]mast.Pattern, 0, 1)
	if p.at(lexer.TokenRParen) {
		p.next()
		return args, nil
	}
	for {
		arg, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.at(lexer.TokenComma) {
			p.next()
			continue
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return args, nil
	}
}

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.current]
}

func (p *Parser) prev() lexer.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) next() lexer.Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

func (p *Parser) at(kind lexer.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, fmt.Errorf("%s: expected %s, found %s", tok.Pos, kind, tok.Kind)
	}
	p.next()
	return tok, nil
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
