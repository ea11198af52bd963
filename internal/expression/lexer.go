package expression

import "unicode/utf8"

// Lexer tokenizes infix expression strings.
type Lexer struct {
	input   string
	pos     int  // byte offset of ch
	readPos int  // byte offset after ch
	ch      rune // current rune under examination
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar decodes the next rune and advances the position.
func (l *Lexer) readChar() {
	l.pos = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL signifies EOF
		return
	}
	r, width := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += width
}

// atEOF reports whether the whole input has been consumed.
func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// NextToken returns the next token from the input. Once the input is consumed
// it keeps returning a TokenEOF token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.atEOF() {
		return Token{Type: TokenEOF, Literal: "", Pos: len(l.input)}
	}

	if isSymbol(l.ch) {
		literal := string(l.ch)
		tok := Token{Type: Classify(literal), Literal: literal, Pos: l.pos}
		l.readChar()
		return tok
	}

	return l.readLiteral()
}

// skipWhitespace skips whitespace characters.
func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && isWhitespace(l.ch) {
		l.readChar()
	}
}

// readLiteral reads a run of characters up to the next whitespace or symbol.
func (l *Lexer) readLiteral() Token {
	pos := l.pos
	for !l.atEOF() && !isWhitespace(l.ch) && !isSymbol(l.ch) {
		l.readChar()
	}
	literal := l.input[pos:l.pos]
	return Token{Type: Classify(literal), Literal: literal, Pos: pos}
}

// Tokenize splits an expression into token literals in input order. It does
// not validate the literals.
func Tokenize(expression string) []string {
	var tokens []string
	l := NewLexer(expression)
	for tok := l.NextToken(); tok.Type != TokenEOF; tok = l.NextToken() {
		tokens = append(tokens, tok.Literal)
	}
	return tokens
}

// Lex tokenizes an expression and fails on the first literal that is not a
// number, operator or bracket.
func Lex(expression string) ([]Token, error) {
	var tokens []Token
	l := NewLexer(expression)
	for tok := l.NextToken(); tok.Type != TokenEOF; tok = l.NextToken() {
		if tok.Type == TokenIllegal {
			return nil, NewInvalidTokenError(tok.Pos, tok.Literal)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
