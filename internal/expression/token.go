// Package expression provides infix to postfix conversion of arithmetic expressions.
package expression

// TokenType represents the type of a token.
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals
	TokenNumber // unsigned integer literal

	// Operators
	TokenOperator // + - * /

	// Delimiters
	TokenLBracket // ( [
	TokenRBracket // ) ]
)

// String returns the string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenNumber:
		return "NUMBER"
	case TokenOperator:
		return "OPERATOR"
	case TokenLBracket:
		return "LBRACKET"
	case TokenRBracket:
		return "RBRACKET"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token.
type Token struct {
	Type    TokenType `json:"type" yaml:"type"`
	Literal string    `json:"literal" yaml:"literal"`
	Pos     int       `json:"pos" yaml:"pos"` // Position in the input string
}

// MarshalText lets token types render by name in JSON and YAML output.
func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
