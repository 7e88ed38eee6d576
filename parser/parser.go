/*
File    : shark/parser/parser.go

Package parser implements Shark's recursive-descent parser: one-token
lookahead, no backtracking except for the single function-declaration-
vs-call-expression checkpoint described in SPEC_FULL.md §4.2. Unlike its
teacher (go-mix's error-accumulating Pratt parser), this parser aborts
at the first mismatch by panicking with a *ParseError and recovering in
Parse — spec.md §4.2 is explicit that parse errors "abort parsing."
*/
package parser

import (
	"fmt"

	"github.com/danieldeazevedo/shark/lexer"
)

// ParseError reports a single parse failure: the line it occurred on,
// what the parser expected, and what it actually found.
type ParseError struct {
	Line     int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ParseError: expected %s, got %s (line %d)", e.Expected, e.Found, e.Line)
}

// LexError reports a tokenization failure surfaced while parsing is
// pulling tokens from the lexer (the parser has no separate lexing
// pass, so this is where lexical errors actually surface).
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LexError: %s (line %d)", e.Message, e.Line)
}

// Parser holds the token-stream lookahead state for one source text.
type Parser struct {
	lex     *lexer.Lexer
	curr    lexer.Token
	next    lexer.Token
}

// NewParser creates a Parser over src, primed with two tokens of
// lookahead.
func NewParser(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.advance()
	p.advance()
	return p
}

// checkpoint captures enough lexer/parser state to backtrack to this
// exact point. Only used for the function-declaration-vs-call
// disambiguation; lexer.Lexer is a small value type so copying it here
// is cheap and exact.
type checkpoint struct {
	lex  lexer.Lexer
	curr lexer.Token
	next lexer.Token
}

func (p *Parser) mark() checkpoint {
	return checkpoint{lex: *p.lex, curr: p.curr, next: p.next}
}

func (p *Parser) restore(cp checkpoint) {
	lexCopy := cp.lex
	p.lex = &lexCopy
	p.curr = cp.curr
	p.next = cp.next
}

func (p *Parser) advance() {
	p.curr = p.next
	p.next = p.lex.NextToken()
	p.checkLexError(p.next)
}

// checkLexError aborts the parse if tok is a token the lexer could not
// make sense of.
func (p *Parser) checkLexError(tok lexer.Token) {
	switch tok.Type {
	case lexer.UNTERMINATED_STRING:
		panic(&LexError{Line: tok.Line, Message: "unterminated string literal"})
	case lexer.INVALID_TYPE:
		panic(&LexError{Line: tok.Line, Message: fmt.Sprintf("unexpected character %q", tok.Literal)})
	}
}

// fail aborts parsing immediately by panicking with a *ParseError;
// recovered by Parse.
func (p *Parser) fail(line int, expected, found string) {
	panic(&ParseError{Line: line, Expected: expected, Found: found})
}

// expect checks that curr has the given type, advances past it, and
// returns its literal. Aborts the parse otherwise.
func (p *Parser) expect(t lexer.TokenType, what string) lexer.Token {
	if p.curr.Type != t {
		p.fail(p.curr.Line, what, string(p.curr.Type))
	}
	tok := p.curr
	p.advance()
	return tok
}

func (p *Parser) at(t lexer.TokenType) bool {
	return p.curr.Type == t
}

// Parse parses src completely into a Program, or returns the first
// ParseError / LexError encountered.
func Parse(src string) (prog *Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(error); ok {
				err = pe
				prog = nil
				return
			}
			panic(r)
		}
	}()

	p := NewParser(src)
	prog = p.parseProgram()
	return prog, nil
}

func (p *Parser) parseProgram() *Program {
	prog := &Program{}
	for !p.at(lexer.EOF_TYPE) {
		stmt := p.parseStatement()
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog
}
