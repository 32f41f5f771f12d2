package parser

import (
	"strconv"

	"github.com/basiclang/gobasic/internal/ast"
	"github.com/basiclang/gobasic/internal/token"
)

// ParseStatement reads at most one top-level source line: an optional
// leading line number, followed by one or more colon-separated statements.
// It returns a single Statement (possibly a CompoundStatement) with its
// LineNumber set (nil when the line has no number). A line holding only a
// line number yields an EmptyStatement; a line with neither a number nor a
// statement yields nil.
func (p *Parser) ParseStatement() ast.Statement {
	var lineNumber *int
	if p.curIs(token.INT) {
		n, err := strconv.Atoi(p.curTok.Literal)
		if err != nil {
			p.addError("invalid line number %q", p.curTok.Literal)
			return nil
		}
		lineNumber = &n
		p.nextToken()
	}

	if p.curIs(token.EOF) {
		if lineNumber == nil {
			return nil
		}
		empty := &ast.EmptyStatement{}
		empty.SetLineNumber(lineNumber)
		return empty
	}

	subs := []ast.Statement{p.parseSingleStatement()}
	for p.peekIs(token.COLON) {
		p.nextToken() // consume ':'
		p.nextToken() // move to next statement's first token
		subs = append(subs, p.parseSingleStatement())
	}

	if !p.peekIs(token.EOF) {
		p.addError("unexpected token after statement: %s (%q)", p.peekTok.Type, p.peekTok.Literal)
	}

	var result ast.Statement
	if len(subs) == 1 {
		result = subs[0]
	} else {
		result = &ast.CompoundStatement{Subs: subs}
	}
	result.SetLineNumber(lineNumber)
	return result
}

// parseSingleStatement dispatches on p.curTok (the statement's first token)
// and returns with p.curTok left on the statement's last token, so the
// caller can check peekTok for ':' or EOF.
func (p *Parser) parseSingleStatement() ast.Statement {
	switch p.curTok.Type {
	case token.LET:
		return p.parseLetStatement(true)
	case token.IDENT:
		return p.parseLetStatement(false)
	case token.PRINT:
		return p.parsePrintStatement()
	case token.INPUT:
		return p.parseInputStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.NEXT:
		return p.parseNextStatement()
	case token.GOTO:
		return p.parseGotoStatement()
	case token.GOSUB:
		return p.parseGosubStatement()
	case token.RETURN:
		return &ast.ReturnStatement{Base: ast.Base{Tok: p.curTok}}
	case token.ON:
		return p.parseOnStatement()
	case token.REM:
		return &ast.RemStatement{Base: ast.Base{Tok: p.curTok}, Text: p.curTok.Literal}
	case token.DATA:
		return p.parseDataStatement()
	case token.READ:
		return p.parseReadStatement()
	case token.RESTORE:
		return &ast.RestoreStatement{Base: ast.Base{Tok: p.curTok}}
	case token.DEF:
		return p.parseDefStatement()
	case token.DIM:
		return p.parseDimStatement()
	case token.RUN:
		return &ast.RunStatement{Base: ast.Base{Tok: p.curTok}}
	case token.END:
		return &ast.EndStatement{Base: ast.Base{Tok: p.curTok}}
	case token.CONT:
		return &ast.ContStatement{Base: ast.Base{Tok: p.curTok}}
	case token.CLR:
		return &ast.ClrStatement{Base: ast.Base{Tok: p.curTok}}
	case token.LIST:
		return p.parseListStatement()
	case token.LOAD:
		return p.parseLoadStatement()
	case token.SAVE:
		return p.parseSaveStatement()
	case token.NEW:
		return &ast.NewStatement{Base: ast.Base{Tok: p.curTok}}
	case token.STOP:
		return &ast.StopStatement{Base: ast.Base{Tok: p.curTok}}
	case token.GRAPHICS:
		return p.parseGraphicsStatement()
	case token.DRAW:
		return p.parseDrawStatement()
	case token.BOX:
		return p.parseBoxStatement()
	case token.TRON:
		return &ast.TronStatement{Base: ast.Base{Tok: p.curTok}}
	case token.TROFF:
		return &ast.TroffStatement{Base: ast.Base{Tok: p.curTok}}
	}

	p.addError("unexpected token at start of statement: %s (%q)", p.curTok.Type, p.curTok.Literal)
	return &ast.EmptyStatement{Base: ast.Base{Tok: p.curTok}}
}

// parseAssignTarget parses "name" or "name(expr, ...)" with curTok already
// on the identifier.
func (p *Parser) parseAssignTarget() ast.AssignTarget {
	name := &ast.Identifier{Tok: p.curTok, Value: p.curTok.Literal}
	indices := p.parseIndexList()
	return ast.AssignTarget{Name: name, Indices: indices}
}

// parseTargetList parses a comma-separated list of assignment targets,
// assuming curTok is already on the first target's identifier.
func (p *Parser) parseTargetList() []ast.AssignTarget {
	targets := []ast.AssignTarget{p.parseAssignTarget()}
	for p.peekIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		targets = append(targets, p.parseAssignTarget())
	}
	return targets
}

func (p *Parser) parseLetStatement(hasKeyword bool) ast.Statement {
	tok := p.curTok
	if hasKeyword {
		if !p.expectPeek(token.IDENT) {
			return &ast.EmptyStatement{Base: ast.Base{Tok: tok}}
		}
	}
	targets := []ast.AssignTarget{p.parseAssignTarget()}
	for p.peekIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return &ast.LetStatement{Base: ast.Base{Tok: tok}, Targets: targets}
		}
		targets = append(targets, p.parseAssignTarget())
	}
	if !p.expectPeek(token.ASSIGN) {
		return &ast.LetStatement{Base: ast.Base{Tok: tok}, Targets: targets}
	}
	p.nextToken()
	value := p.ParseExpression(LOWEST)
	return &ast.LetStatement{Base: ast.Base{Tok: tok}, Targets: targets, Value: value}
}

func (p *Parser) parsePrintStatement() ast.Statement {
	tok := p.curTok
	var args []ast.Expression
	if !p.peekIs(token.COLON) && !p.peekIs(token.EOF) {
		p.nextToken()
		args = append(args, p.ParseExpression(LOWEST))
		for p.peekIs(token.COMMA) || p.peekIs(token.SEMICOLON) {
			p.nextToken()
			if p.peekIs(token.COLON) || p.peekIs(token.EOF) {
				break
			}
			p.nextToken()
			args = append(args, p.ParseExpression(LOWEST))
		}
	}
	return &ast.PrintStatement{Base: ast.Base{Tok: tok}, Args: args}
}

func (p *Parser) parseInputStatement() ast.Statement {
	tok := p.curTok
	var prompt *ast.StringLiteral
	if p.peekIs(token.STRING) {
		p.nextToken()
		prompt = &ast.StringLiteral{Tok: p.curTok, Value: p.curTok.Literal}
		if p.peekIs(token.SEMICOLON) || p.peekIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.IDENT) {
		return &ast.InputStatement{Base: ast.Base{Tok: tok}, Prompt: prompt}
	}
	targets := p.parseTargetList()
	return &ast.InputStatement{Base: ast.Base{Tok: tok}, Prompt: prompt, Targets: targets}
}

// parseThenElseTarget parses the destination after THEN/ELSE: either a bare
// line number or an inline statement.
func (p *Parser) parseThenElseTarget() (*int, ast.Statement) {
	if p.curIs(token.INT) {
		n, err := strconv.Atoi(p.curTok.Literal)
		if err != nil {
			p.addError("invalid line number %q", p.curTok.Literal)
			return nil, nil
		}
		return &n, nil
	}
	return nil, p.parseSingleStatement()
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curTok
	p.nextToken()
	cond := p.ParseExpression(LOWEST)
	if !p.expectPeek(token.THEN) {
		return &ast.IfStatement{Base: ast.Base{Tok: tok}, Condition: cond}
	}
	p.nextToken()
	thenLine, thenStmt := p.parseThenElseTarget()

	stmt := &ast.IfStatement{Base: ast.Base{Tok: tok}, Condition: cond, ThenLine: thenLine, ThenStmt: thenStmt}
	if p.peekIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		elseLine, elseStmt := p.parseThenElseTarget()
		stmt.ElseLine = elseLine
		stmt.ElseStmt = elseStmt
	}
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(token.IDENT) {
		return &ast.ForStatement{Base: ast.Base{Tok: tok}}
	}
	iter := &ast.Identifier{Tok: p.curTok, Value: p.curTok.Literal}
	if !p.expectPeek(token.ASSIGN) {
		return &ast.ForStatement{Base: ast.Base{Tok: tok}, Iterator: iter}
	}
	p.nextToken()
	from := p.ParseExpression(LOWEST)
	if !p.expectPeek(token.TO) {
		return &ast.ForStatement{Base: ast.Base{Tok: tok}, Iterator: iter, From: from}
	}
	p.nextToken()
	to := p.ParseExpression(LOWEST)

	stmt := &ast.ForStatement{Base: ast.Base{Tok: tok}, Iterator: iter, From: from, To: to}
	if p.peekIs(token.STEP) {
		p.nextToken()
		p.nextToken()
		stmt.Step = p.ParseExpression(LOWEST)
	}
	return stmt
}

func (p *Parser) parseNextStatement() ast.Statement {
	tok := p.curTok
	var iters []*ast.Identifier
	if p.peekIs(token.IDENT) {
		p.nextToken()
		iters = append(iters, &ast.Identifier{Tok: p.curTok, Value: p.curTok.Literal})
		for p.peekIs(token.COMMA) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				break
			}
			iters = append(iters, &ast.Identifier{Tok: p.curTok, Value: p.curTok.Literal})
		}
	}
	return &ast.NextStatement{Base: ast.Base{Tok: tok}, Iterators: iters}
}

func (p *Parser) parseLineNumberOperand() int {
	if !p.expectPeek(token.INT) {
		return 0
	}
	n, err := strconv.Atoi(p.curTok.Literal)
	if err != nil {
		p.addError("invalid line number %q", p.curTok.Literal)
		return 0
	}
	return n
}

func (p *Parser) parseGotoStatement() ast.Statement {
	tok := p.curTok
	target := p.parseLineNumberOperand()
	return &ast.GotoStatement{Base: ast.Base{Tok: tok}, Target: target}
}

func (p *Parser) parseGosubStatement() ast.Statement {
	tok := p.curTok
	target := p.parseLineNumberOperand()
	return &ast.GosubStatement{Base: ast.Base{Tok: tok}, Target: target}
}

func (p *Parser) parseOnStatement() ast.Statement {
	tok := p.curTok
	p.nextToken()
	expr := p.ParseExpression(LOWEST)

	isGosub := false
	if p.peekIs(token.GOSUB) {
		isGosub = true
		p.nextToken()
	} else if !p.expectPeek(token.GOTO) {
		return &ast.OnStatement{Base: ast.Base{Tok: tok}, Expr: expr}
	}

	var targets []int
	targets = append(targets, p.parseLineNumberOperand())
	for p.peekIs(token.COMMA) {
		p.nextToken()
		targets = append(targets, p.parseLineNumberOperand())
	}
	return &ast.OnStatement{Base: ast.Base{Tok: tok}, Expr: expr, IsGosub: isGosub, Targets: targets}
}

func (p *Parser) parseDataStatement() ast.Statement {
	tok := p.curTok
	var values []ast.Expression
	if !p.peekIs(token.COLON) && !p.peekIs(token.EOF) {
		p.nextToken()
		values = append(values, p.parseDataValue())
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			values = append(values, p.parseDataValue())
		}
	}
	return &ast.DataStatement{Base: ast.Base{Tok: tok}, Values: values}
}

// parseDataValue parses one DATA literal: a (possibly signed) number or a
// string, never a general expression.
func (p *Parser) parseDataValue() ast.Expression {
	if p.curIs(token.MINUS) {
		tok := p.curTok
		p.nextToken()
		right := p.parseDataValue()
		return &ast.PrefixExpression{Tok: tok, Operator: "-", Right: right}
	}
	switch p.curTok.Type {
	case token.INT:
		return p.parseIntegerLiteral()
	case token.FLOAT:
		return p.parseFloatLiteral()
	case token.STRING:
		return p.parseStringLiteral()
	default:
		p.addError("invalid DATA value: %s (%q)", p.curTok.Type, p.curTok.Literal)
		return &ast.StringLiteral{Tok: p.curTok}
	}
}

func (p *Parser) parseReadStatement() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(token.IDENT) {
		return &ast.ReadStatement{Base: ast.Base{Tok: tok}}
	}
	return &ast.ReadStatement{Base: ast.Base{Tok: tok}, Targets: p.parseTargetList()}
}

func (p *Parser) parseDefStatement() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(token.FN) {
		return &ast.DefStatement{Base: ast.Base{Tok: tok}}
	}
	if !p.expectPeek(token.IDENT) {
		return &ast.DefStatement{Base: ast.Base{Tok: tok}}
	}
	name := p.curTok.Literal
	if !p.expectPeek(token.LPAREN) {
		return &ast.DefStatement{Base: ast.Base{Tok: tok}, Name: name}
	}
	var param *ast.Identifier
	if !p.peekIs(token.RPAREN) {
		if p.expectPeek(token.IDENT) {
			param = &ast.Identifier{Tok: p.curTok, Value: p.curTok.Literal}
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return &ast.DefStatement{Base: ast.Base{Tok: tok}, Name: name, Param: param}
	}
	if !p.expectPeek(token.ASSIGN) {
		return &ast.DefStatement{Base: ast.Base{Tok: tok}, Name: name, Param: param}
	}
	p.nextToken()
	body := p.ParseExpression(LOWEST)
	return &ast.DefStatement{Base: ast.Base{Tok: tok}, Name: name, Param: param, Body: body}
}

func (p *Parser) parseArrayDecl() ast.ArrayDecl {
	name := &ast.Identifier{Tok: p.curTok, Value: p.curTok.Literal}
	var dims []ast.Expression
	if p.peekIs(token.LPAREN) {
		p.nextToken()
		dims = p.parseExpressionList(token.RPAREN)
	}
	return ast.ArrayDecl{Name: name, Dims: dims}
}

func (p *Parser) parseDimStatement() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(token.IDENT) {
		return &ast.DimStatement{Base: ast.Base{Tok: tok}}
	}
	decls := []ast.ArrayDecl{p.parseArrayDecl()}
	for p.peekIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		decls = append(decls, p.parseArrayDecl())
	}
	return &ast.DimStatement{Base: ast.Base{Tok: tok}, Decls: decls}
}

func (p *Parser) parseListStatement() ast.Statement {
	tok := p.curTok
	stmt := &ast.ListStatement{Base: ast.Base{Tok: tok}}
	if p.peekIs(token.MINUS) {
		p.nextToken()
		p.nextToken()
		stmt.End = p.ParseExpression(LOWEST)
		return stmt
	}
	if p.peekIs(token.INT) || p.peekIs(token.IDENT) {
		p.nextToken()
		stmt.Start = p.ParseExpression(LOWEST)
		if p.peekIs(token.MINUS) {
			p.nextToken()
			if !p.peekIs(token.COLON) && !p.peekIs(token.EOF) {
				p.nextToken()
				stmt.End = p.ParseExpression(LOWEST)
			}
		}
	}
	return stmt
}

func (p *Parser) parseLoadStatement() ast.Statement {
	tok := p.curTok
	p.nextToken()
	return &ast.LoadStatement{Base: ast.Base{Tok: tok}, Filename: p.ParseExpression(LOWEST)}
}

func (p *Parser) parseSaveStatement() ast.Statement {
	tok := p.curTok
	p.nextToken()
	return &ast.SaveStatement{Base: ast.Base{Tok: tok}, Filename: p.ParseExpression(LOWEST)}
}

func (p *Parser) parseGraphicsStatement() ast.Statement {
	tok := p.curTok
	p.nextToken()
	width := p.ParseExpression(LOWEST)
	if !p.expectPeek(token.COMMA) {
		return &ast.GraphicsStatement{Base: ast.Base{Tok: tok}, Width: width}
	}
	p.nextToken()
	height := p.ParseExpression(LOWEST)
	return &ast.GraphicsStatement{Base: ast.Base{Tok: tok}, Width: width, Height: height}
}

func (p *Parser) parseDrawStatement() ast.Statement {
	tok := p.curTok
	p.nextToken()
	color := p.ParseExpression(LOWEST)
	if !p.expectPeek(token.COMMA) {
		return &ast.DrawStatement{Base: ast.Base{Tok: tok}, Color: color}
	}
	p.nextToken()
	x1 := p.ParseExpression(LOWEST)
	if !p.expectPeek(token.COMMA) {
		return &ast.DrawStatement{Base: ast.Base{Tok: tok}, Color: color, X1: x1}
	}
	p.nextToken()
	y1 := p.ParseExpression(LOWEST)

	stmt := &ast.DrawStatement{Base: ast.Base{Tok: tok}, Color: color, X1: x1, Y1: y1}
	if p.peekIs(token.TO) {
		p.nextToken()
		p.nextToken()
		stmt.X2 = p.ParseExpression(LOWEST)
		if !p.expectPeek(token.COMMA) {
			return stmt
		}
		p.nextToken()
		stmt.Y2 = p.ParseExpression(LOWEST)
	}
	return stmt
}

func (p *Parser) parseBoxStatement() ast.Statement {
	tok := p.curTok
	p.nextToken()
	color := p.ParseExpression(LOWEST)
	stmt := &ast.BoxStatement{Base: ast.Base{Tok: tok}, Color: color}
	fields := []*ast.Expression{&stmt.Left, &stmt.Top, &stmt.Width, &stmt.Height}
	for _, f := range fields {
		if !p.expectPeek(token.COMMA) {
			return stmt
		}
		p.nextToken()
		*f = p.ParseExpression(LOWEST)
	}
	return stmt
}
