/*
File    : shark/parser/parser_statements.go

Statement parsing. Statements are terminated by ';' except the
block-form statements (if/while/for/function-decl), which end with
'}' and tolerate an optional trailing ';'.
*/
package parser

import "github.com/danieldeazevedo/shark/lexer"

func (p *Parser) parseStatement() Stmt {
	switch p.curr.Type {
	case lexer.VAR_KEY:
		return p.parseVarDecl()
	case lexer.QUESTION:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.FOR_KEY:
		return p.parseFor()
	case lexer.RETURN_KEY:
		return p.parseReturn()
	case lexer.IDENT_TYPE:
		return p.parseIdentLedStatement()
	default:
		return p.parseExprStatement()
	}
}

// parseBlock parses a `{ ... }` sequence of statements.
func (p *Parser) parseBlock() []Stmt {
	p.expect(lexer.LBRACE, "{")
	var stmts []Stmt
	for !p.at(lexer.RBRACE) {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(lexer.RBRACE, "}")
	return stmts
}

// skipOptionalSemi consumes a trailing ';' after a block-form
// statement, per spec.md §4.2's tolerance for it.
func (p *Parser) skipOptionalSemi() {
	if p.at(lexer.SEMI) {
		p.advance()
	}
}

func (p *Parser) parseVarDecl() Stmt {
	line := p.curr.Line
	p.advance() // consume 'var'
	name := p.expect(lexer.IDENT_TYPE, "identifier").Literal

	typ := ""
	if p.at(lexer.COLON) {
		p.advance()
		typ = p.expect(lexer.IDENT_TYPE, "type name").Literal
	}

	p.expect(lexer.ASSIGN_OP, "=")
	init := p.parseExpression()
	p.expect(lexer.SEMI, ";")
	return &VarDecl{Name: name, Type: typ, Init: init, Line: line}
}

// parseIf parses `? cond { then }` with an optional `otherwise { ... }`
// or chained `otherwise ? cond { ... }`.
func (p *Parser) parseIf() Stmt {
	line := p.curr.Line
	p.advance() // consume '?'
	cond := p.parseExpression()
	then := p.parseBlock()

	stmt := &IfStmt{Cond: cond, Then: then, Line: line}

	if p.at(lexer.OTHERWISE_KEY) {
		p.advance()
		if p.at(lexer.QUESTION) {
			stmt.OtherwiseIf = p.parseIf().(*IfStmt)
			return stmt
		}
		stmt.Otherwise = p.parseBlock()
	}
	p.skipOptionalSemi()
	return stmt
}

func (p *Parser) parseWhile() Stmt {
	line := p.curr.Line
	p.advance() // consume 'while'
	cond := p.parseExpression()
	body := p.parseBlock()
	p.skipOptionalSemi()
	return &WhileStmt{Cond: cond, Body: body, Line: line}
}

func (p *Parser) parseFor() Stmt {
	line := p.curr.Line
	p.advance() // consume 'for'
	name := p.expect(lexer.IDENT_TYPE, "identifier").Literal
	p.expect(lexer.IN_KEY, "in")
	iterable := p.parseExpression()
	body := p.parseBlock()
	p.skipOptionalSemi()
	return &ForStmt{VarName: name, Iterable: iterable, Body: body, Line: line}
}

func (p *Parser) parseReturn() Stmt {
	line := p.curr.Line
	p.advance() // consume 'return'
	if p.at(lexer.SEMI) {
		p.advance()
		return &ReturnStmt{Line: line}
	}
	val := p.parseExpression()
	p.expect(lexer.SEMI, ";")
	return &ReturnStmt{Value: val, Line: line}
}

// parseIdentLedStatement resolves the three things that can start with
// an identifier at statement position: a function declaration
// (`name(params) => ...`), a plain assignment (`name = expr;`), or an
// expression statement (`name(...)` as a call, or any other
// identifier-headed expression).
func (p *Parser) parseIdentLedStatement() Stmt {
	if p.next.Type == lexer.LPAREN {
		if decl, ok := p.tryParseFunctionDecl(); ok {
			return decl
		}
	}
	if p.next.Type == lexer.ASSIGN_OP {
		return p.parseAssign()
	}
	return p.parseExprStatement()
}

func (p *Parser) parseAssign() Stmt {
	line := p.curr.Line
	name := p.curr.Literal
	p.advance() // identifier
	p.advance() // '='
	val := p.parseExpression()
	p.expect(lexer.SEMI, ";")
	return &Assign{Name: name, Value: val, Line: line}
}

func (p *Parser) parseExprStatement() Stmt {
	line := p.curr.Line
	expr := p.parseExpression()
	p.expect(lexer.SEMI, ";")
	return &ExprStmt{Expr: expr, Line: line}
}

// tryParseFunctionDecl speculatively parses `name(params)` and commits
// to a function declaration only if that is followed by `=>` or
// `: type =>`, per spec.md §4.2. On a non-match it restores the parser
// to the checkpoint taken before the speculative parse, so the caller
// can fall back to parsing a call expression instead. This is the
// parser's sole use of backtracking.
func (p *Parser) tryParseFunctionDecl() (*FunctionDecl, bool) {
	cp := p.mark()

	line := p.curr.Line
	name := p.curr.Literal
	p.advance() // identifier
	p.advance() // '('

	var params []Param
	if !p.at(lexer.RPAREN) {
		if !p.at(lexer.IDENT_TYPE) {
			p.restore(cp)
			return nil, false
		}
		params = append(params, p.parseParam())
		for p.at(lexer.COMMA) {
			p.advance()
			if !p.at(lexer.IDENT_TYPE) {
				p.restore(cp)
				return nil, false
			}
			params = append(params, p.parseParam())
		}
	}
	if !p.at(lexer.RPAREN) {
		p.restore(cp)
		return nil, false
	}
	p.advance() // ')'

	returnType := ""
	if p.at(lexer.COLON) {
		p.advance()
		if !p.at(lexer.IDENT_TYPE) {
			p.restore(cp)
			return nil, false
		}
		returnType = p.curr.Literal
		p.advance()
	}

	if !p.at(lexer.ARROW_OP) {
		p.restore(cp)
		return nil, false
	}
	p.advance() // '=>'

	var body []Stmt
	if p.at(lexer.LBRACE) {
		body = p.parseBlock()
	} else {
		// Single-expression form, desugared to `return <expr>;`.
		exprLine := p.curr.Line
		expr := p.parseExpression()
		p.expect(lexer.SEMI, ";")
		body = []Stmt{&ReturnStmt{Value: expr, Line: exprLine}}
	}
	p.skipOptionalSemi()

	return &FunctionDecl{Name: name, Params: params, ReturnType: returnType, Body: body, Line: line}, true
}

// parseParam parses one `name` or `name: type` parameter. Caller
// guarantees curr is an identifier.
func (p *Parser) parseParam() Param {
	name := p.curr.Literal
	p.advance()
	typ := ""
	if p.at(lexer.COLON) {
		p.advance()
		typ = p.expect(lexer.IDENT_TYPE, "type name").Literal
	}
	return Param{Name: name, Type: typ}
}
