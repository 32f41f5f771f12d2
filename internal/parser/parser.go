// Package parser implements a Pratt expression parser plus BASIC statement
// dispatch over the token stream produced by internal/lexer.
//
// ParseStatement (see statements.go) reads at most one top-level source
// line per call, matching the specification's one-statement-at-a-time
// pipeline: callers decide whether the returned statement carries a line
// number (insert into the program) or not (run immediately).
package parser

import (
	"fmt"
	"strconv"

	"github.com/basiclang/gobasic/internal/ast"
	"github.com/basiclang/gobasic/internal/lexer"
	"github.com/basiclang/gobasic/internal/token"
)

// Precedence levels, lowest to highest, per the specification's ladder:
// logical < equality < relational < additive < multiplicative < prefix < call.
const (
	_ int = iota
	LOWEST
	LOGICAL
	EQUALITY
	RELATIONAL
	ADDITIVE
	MULTIPLICATIVE
	PREFIX
	CALL
)

var precedences = map[token.Type]int{
	token.OR:       LOGICAL,
	token.AND:      LOGICAL,
	token.XOR:      LOGICAL,
	token.ASSIGN:   EQUALITY,
	token.NOT_EQ:   EQUALITY,
	token.LT:       RELATIONAL,
	token.GT:       RELATIONAL,
	token.LT_EQ:    RELATIONAL,
	token.GT_EQ:    RELATIONAL,
	token.PLUS:     ADDITIVE,
	token.MINUS:    ADDITIVE,
	token.ASTERISK: MULTIPLICATIVE,
	token.SLASH:    MULTIPLICATIVE,
	token.CARET:    MULTIPLICATIVE,
	token.MOD:      MULTIPLICATIVE,
	token.LPAREN:   CALL,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser consumes a single lexer.Lexer and accumulates errors rather than
// stopping at the first one (§4.2); a recovered error still lets later
// statements parse.
type Parser struct {
	l *lexer.Lexer

	curTok  token.Token
	peekTok token.Token

	errors []string

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser positioned at the first token of l's input.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:  p.parseIdentifierOrCall,
		token.INT:    p.parseIntegerLiteral,
		token.FLOAT:  p.parseFloatLiteral,
		token.STRING: p.parseStringLiteral,
		token.MINUS:  p.parsePrefixExpression,
		token.NOT:    p.parsePrefixExpression,
		token.FN:     p.parseFNCall,
		token.LPAREN: p.parseGroupedExpression,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.CARET:    p.parseInfixExpression,
		token.MOD:      p.parseInfixExpression,
		token.AND:      p.parseInfixExpression,
		token.OR:       p.parseInfixExpression,
		token.XOR:      p.parseInfixExpression,
		token.ASSIGN:   p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.LT_EQ:    p.parseInfixExpression,
		token.GT_EQ:    p.parseInfixExpression,
		token.LPAREN:   p.parseCallExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns all parse errors accumulated so far.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) addError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("%s (line %d, column %d)", msg, p.curTok.Pos.Line, p.curTok.Pos.Column))
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.curTok.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peekTok.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekIs(t) {
		p.nextToken()
		return true
	}
	p.addError("expected next token to be %s, got %s (%q)", t, p.peekTok.Type, p.peekTok.Literal)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekTok.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curTok.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseExpression parses an expression with Pratt precedence climbing,
// starting from p.curTok.
func (p *Parser) ParseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curTok.Type]
	if prefix == nil {
		p.addError("no prefix parse function for %s (%q)", p.curTok.Type, p.curTok.Literal)
		return nil
	}
	left := prefix()

	for !p.peekIs(token.COLON) && !p.peekIs(token.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekTok.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	ident := &ast.Identifier{Tok: p.curTok, Value: p.curTok.Literal}
	return ident
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curTok
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addError("could not parse %q as integer", tok.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Tok: tok, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curTok
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addError("could not parse %q as float", tok.Literal)
		return nil
	}
	return &ast.FloatLiteral{Tok: tok, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Tok: p.curTok, Value: p.curTok.Literal}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curTok
	op := tok.Literal
	p.nextToken()
	right := p.ParseExpression(PREFIX)
	return &ast.PrefixExpression{Tok: tok, Operator: op, Right: right}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curTok
	op := tok.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.ParseExpression(precedence)
	return &ast.InfixExpression{Tok: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.curTok
	p.nextToken()
	expr := p.ParseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.GroupedExpression{Tok: tok, Expression: expr}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curTok // '('
	args := p.parseExpressionList(token.RPAREN)
	return &ast.CallExpression{Tok: tok, Callee: callee, Arguments: args}
}

// parseFNCall parses `FN name(arg)` or `FN name()`.
func (p *Parser) parseFNCall() ast.Expression {
	tok := p.curTok // FN
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Tok: p.curTok, Value: p.curTok.Literal}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	var arg ast.Expression
	if !p.peekIs(token.RPAREN) {
		p.nextToken()
		arg = p.ParseExpression(LOWEST)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.FNCallExpression{Tok: tok, Name: name, Arg: arg}
}

// parseExpressionList parses a comma-separated expression list and consumes
// through the closing token end (assumed to currently be the opening token).
func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression
	if p.peekIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.ParseExpression(LOWEST))
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.ParseExpression(LOWEST))
	}
	if !p.expectPeek(end) {
		return list
	}
	return list
}

// parseIndexList parses the optional "(expr, expr, ...)" index suffix on an
// assignment/read target. Returns nil if the token after curTok is not '('.
func (p *Parser) parseIndexList() []ast.Expression {
	if !p.peekIs(token.LPAREN) {
		return nil
	}
	p.nextToken() // consume '('
	return p.parseExpressionList(token.RPAREN)
}
