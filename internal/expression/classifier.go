package expression

import "unicode"

// IsDigit reports whether tok is a single decimal digit.
func IsDigit(tok string) bool {
	return len(tok) == 1 && isDigit(rune(tok[0]))
}

// IsNumber reports whether tok is a non-empty run of decimal digits.
func IsNumber(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// IsOperator reports whether tok is one of + - * /.
func IsOperator(tok string) bool {
	return len(tok) == 1 && isOperator(rune(tok[0]))
}

// IsLeftBracket reports whether tok is ( or [.
func IsLeftBracket(tok string) bool {
	return len(tok) == 1 && isLeftBracket(rune(tok[0]))
}

// IsRightBracket reports whether tok is ) or ].
func IsRightBracket(tok string) bool {
	return len(tok) == 1 && isRightBracket(rune(tok[0]))
}

// Classify returns the token type of a literal.
func Classify(tok string) TokenType {
	switch {
	case tok == "":
		return TokenEOF
	case IsNumber(tok):
		return TokenNumber
	case IsOperator(tok):
		return TokenOperator
	case IsLeftBracket(tok):
		return TokenLBracket
	case IsRightBracket(tok):
		return TokenRBracket
	default:
		return TokenIllegal
	}
}

// closingBracket returns the right bracket that closes the given left bracket.
func closingBracket(left string) string {
	switch left {
	case "(":
		return ")"
	case "[":
		return "]"
	default:
		return ""
	}
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isOperator(ch rune) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}

func isLeftBracket(ch rune) bool {
	return ch == '(' || ch == '['
}

func isRightBracket(ch rune) bool {
	return ch == ')' || ch == ']'
}

func isSymbol(ch rune) bool {
	return isOperator(ch) || isLeftBracket(ch) || isRightBracket(ch)
}

// isWhitespace covers every Unicode space, including U+00A0 and U+3000.
func isWhitespace(ch rune) bool {
	return unicode.IsSpace(ch)
}
