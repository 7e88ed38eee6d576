/*
File    : shark/parser/parser_expressions.go

Expression parsing: precedence-climbing recursive descent implementing
the table in spec.md §4.2, lowest to highest:

	or → and → not → comparisons → range → additive → multiplicative →
	exponent → unary → call/index postfix → primary
*/
package parser

import (
	"strconv"

	"github.com/danieldeazevedo/shark/lexer"
)

func (p *Parser) parseExpression() Expr {
	return p.parseOr()
}

func (p *Parser) parseOr() Expr {
	left := p.parseAnd()
	for p.at(lexer.OR_KEY) {
		line := p.curr.Line
		p.advance()
		right := p.parseAnd()
		left = &BinaryExpr{Op: "or", Left: left, Right: right, Line: line}
	}
	return left
}

func (p *Parser) parseAnd() Expr {
	left := p.parseNot()
	for p.at(lexer.AND_KEY) {
		line := p.curr.Line
		p.advance()
		right := p.parseNot()
		left = &BinaryExpr{Op: "and", Left: left, Right: right, Line: line}
	}
	return left
}

// parseNot is right-associative: `not not x` is `not (not x)`.
func (p *Parser) parseNot() Expr {
	if p.at(lexer.NOT_KEY) {
		line := p.curr.Line
		p.advance()
		operand := p.parseNot()
		return &UnaryExpr{Op: "not", Operand: operand, Line: line}
	}
	return p.parseComparison()
}

var comparisonOps = map[lexer.TokenType]string{
	lexer.EQ_OP: "==", lexer.NE_OP: "!=",
	lexer.LT_OP: "<", lexer.GT_OP: ">",
	lexer.LE_OP: "<=", lexer.GE_OP: ">=",
}

// parseComparison is non-associative: only one comparison operator is
// allowed at this level (`a < b < c` is not a chained comparison).
func (p *Parser) parseComparison() Expr {
	left := p.parseRange()
	if op, ok := comparisonOps[p.curr.Type]; ok {
		line := p.curr.Line
		p.advance()
		right := p.parseRange()
		return &BinaryExpr{Op: op, Left: left, Right: right, Line: line}
	}
	return left
}

// parseRange is non-associative, like comparisons: `lo..hi`.
func (p *Parser) parseRange() Expr {
	left := p.parseAdditive()
	if p.at(lexer.RANGE_OP) {
		line := p.curr.Line
		p.advance()
		right := p.parseAdditive()
		return &RangeExpr{Lo: left, Hi: right, Line: line}
	}
	return left
}

func (p *Parser) parseAdditive() Expr {
	left := p.parseMultiplicative()
	for p.at(lexer.PLUS_OP) || p.at(lexer.MINUS_OP) {
		op := string(p.curr.Type)
		line := p.curr.Line
		p.advance()
		right := p.parseMultiplicative()
		left = &BinaryExpr{Op: op, Left: left, Right: right, Line: line}
	}
	return left
}

func (p *Parser) parseMultiplicative() Expr {
	left := p.parseExponent()
	for p.at(lexer.STAR_OP) || p.at(lexer.SLASH_OP) || p.at(lexer.PERCENT_OP) {
		op := string(p.curr.Type)
		line := p.curr.Line
		p.advance()
		right := p.parseExponent()
		left = &BinaryExpr{Op: op, Left: left, Right: right, Line: line}
	}
	return left
}

// parseExponent is right-associative: `2 ** 3 ** 2` is `2 ** (3 ** 2)`.
func (p *Parser) parseExponent() Expr {
	left := p.parseUnary()
	if p.at(lexer.POW_OP) {
		line := p.curr.Line
		p.advance()
		right := p.parseExponent()
		return &BinaryExpr{Op: "**", Left: left, Right: right, Line: line}
	}
	return left
}

func (p *Parser) parseUnary() Expr {
	if p.at(lexer.MINUS_OP) {
		line := p.curr.Line
		p.advance()
		operand := p.parseUnary()
		return &UnaryExpr{Op: "-", Operand: operand, Line: line}
	}
	return p.parsePostfix()
}

// parsePostfix handles call and index chaining: `f(x)(y)[0]`.
func (p *Parser) parsePostfix() Expr {
	expr := p.parsePrimary()
	for {
		switch {
		case p.at(lexer.LPAREN):
			expr = p.parseCallTail(expr)
		case p.at(lexer.LBRACKET):
			line := p.curr.Line
			p.advance()
			idx := p.parseExpression()
			p.expect(lexer.RBRACKET, "]")
			expr = &IndexExpr{Seq: expr, Index: idx, Line: line}
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallTail(callee Expr) Expr {
	line := p.curr.Line
	p.advance() // consume '('
	var args []Expr
	if !p.at(lexer.RPAREN) {
		args = append(args, p.parseExpression())
		for p.at(lexer.COMMA) {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(lexer.RPAREN, ")")
	return &CallExpr{Callee: callee, Args: args, Line: line}
}

func (p *Parser) parsePrimary() Expr {
	line := p.curr.Line
	switch p.curr.Type {
	case lexer.NUMBER_TYPE:
		tok := p.curr
		p.advance()
		if tok.IsFloat {
			f, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				p.fail(line, "well-formed float literal", tok.Literal)
			}
			return &NumberLit{IsFloat: true, FloatVal: f, Line: line}
		}
		i, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.fail(line, "well-formed integer literal", tok.Literal)
		}
		return &NumberLit{IsFloat: false, IntVal: i, Line: line}
	case lexer.STRING_TYPE:
		tok := p.curr
		p.advance()
		return &StringLit{Value: tok.Literal, Line: line}
	case lexer.TRUE_KEY:
		p.advance()
		return &BoolLit{Value: true, Line: line}
	case lexer.FALSE_KEY:
		p.advance()
		return &BoolLit{Value: false, Line: line}
	case lexer.IDENT_TYPE:
		name := p.curr.Literal
		p.advance()
		return &Ident{Name: name, Line: line}
	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(lexer.RPAREN, ")")
		return inner
	case lexer.LBRACKET:
		p.advance()
		var elems []Expr
		if !p.at(lexer.RBRACKET) {
			elems = append(elems, p.parseExpression())
			for p.at(lexer.COMMA) {
				p.advance()
				elems = append(elems, p.parseExpression())
			}
		}
		p.expect(lexer.RBRACKET, "]")
		return &ArrayLit{Elements: elems, Line: line}
	default:
		p.fail(line, "an expression", string(p.curr.Type))
		return nil
	}
}
